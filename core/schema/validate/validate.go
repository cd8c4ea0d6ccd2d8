package validate

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kaptinlin/jsonschema"
)

// Variant names one known manifest schema generation.
type Variant string

const (
	VariantLegacy Variant = "legacy"
	VariantModern Variant = "modern"
)

//go:embed schemas/legacy.schema.json
var legacySchemaJSON []byte

//go:embed schemas/modern.schema.json
var modernSchemaJSON []byte

var (
	compileOnce     sync.Once
	compileErr      error
	compiledByNames map[Variant]*jsonschema.Schema
)

// CheckVariant validates an in-memory payload tree against one variant's
// schema. A nil return means the payload conforms to that variant's shape.
func CheckVariant(payload map[string]any, variant Variant) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	return CheckVariantJSON(data, variant)
}

// CheckVariantJSON validates raw JSON against one variant's schema.
func CheckVariantJSON(data []byte, variant Variant) error {
	schema, err := compiledSchema(variant)
	if err != nil {
		return err
	}
	result := schema.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("schema validation failed: %v", result.Errors)
}

func compiledSchema(variant Variant) (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledByNames, compileErr = compileAll()
	})
	if compileErr != nil {
		return nil, compileErr
	}
	schema, found := compiledByNames[variant]
	if !found {
		return nil, fmt.Errorf("unknown manifest variant %q", string(variant))
	}
	return schema, nil
}

func compileAll() (map[Variant]*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	schemas := make(map[Variant]*jsonschema.Schema, 2)
	for variant, document := range map[Variant][]byte{
		VariantLegacy: legacySchemaJSON,
		VariantModern: modernSchemaJSON,
	} {
		schema, err := compiler.Compile(document)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", string(variant), err)
		}
		schemas[variant] = schema
	}
	return schemas, nil
}
