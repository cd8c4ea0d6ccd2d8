package manifest

import "fmt"

// baseAdapter owns one frozen payload and provides the lookup and coercion
// helpers shared by every variant adapter. Concrete adapters route all field
// extraction through requiredField/optionalField/optionalSequence so that
// missing-field and malformed-field diagnostics stay uniform across variants.
type baseAdapter struct {
	payload RawPayload
}

func newBaseAdapter(payload RawPayload) baseAdapter {
	return baseAdapter{payload: clonePayload(payload)}
}

// lookup returns the stored value with no coercion. The second result
// reports key presence, so present-but-null stays distinguishable from
// absent.
func (adapter baseAdapter) lookup(key string) (any, bool) {
	value, found := adapter.payload[key]
	return value, found
}

// requiredField fails with MissingFieldError when the key is absent and
// MalformedFieldError when the stored value does not coerce to T.
func requiredField[T any](adapter baseAdapter, key, field string) (T, error) {
	value, found := adapter.lookup(key)
	if !found {
		var zero T
		return zero, missingFieldError(field)
	}
	return coerceField[T](field, value)
}

// optionalField returns nil for absent or null keys; a present non-null
// value must still coerce to T.
func optionalField[T any](adapter baseAdapter, key, field string) (*T, error) {
	value, found := adapter.lookup(key)
	if !found || value == nil {
		return nil, nil
	}
	typed, err := coerceField[T](field, value)
	if err != nil {
		return nil, err
	}
	return &typed, nil
}

// optionalSequence returns a nil slice for absent or null keys and a non-nil
// slice (possibly empty) for a declared sequence, preserving element order.
func optionalSequence(adapter baseAdapter, key, field string) ([]AssetDescriptor, error) {
	value, found := adapter.lookup(key)
	if !found || value == nil {
		return nil, nil
	}
	elements, ok := value.([]any)
	if !ok {
		return nil, malformedFieldError(field, "sequence", value)
	}
	descriptors := make([]AssetDescriptor, len(elements))
	for index, element := range elements {
		descriptors[index] = AssetDescriptor(element)
	}
	return descriptors, nil
}

// coerceField is the single coercion chokepoint for typed field access.
func coerceField[T any](field string, value any) (T, error) {
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, malformedFieldError(field, expectedTypeName[T](), value)
	}
	return typed, nil
}

func expectedTypeName[T any]() string {
	var zero T
	switch any(zero).(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "sequence"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", zero)
	}
}
