package manifest

import (
	"fmt"

	coreerrors "github.com/overair/overair/core/errors"
)

const maxValueSummaryBytes = 64

// MissingFieldError reports a required manifest field absent from the payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("manifest field %q is missing", e.Field)
}

// MalformedFieldError reports a manifest field present with the wrong shape.
// Value carries a truncated summary of the offending value for diagnostics.
type MalformedFieldError struct {
	Field    string
	Expected string
	Actual   string
	Value    string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf(
		"manifest field %q is malformed: expected %s, got %s (%s)",
		e.Field, e.Expected, e.Actual, e.Value,
	)
}

// UnrecognizedManifestError reports that no known variant matches the
// payload/hint combination handed to Resolve.
type UnrecognizedManifestError struct {
	Hint   Hint
	Detail string
}

func (e *UnrecognizedManifestError) Error() string {
	if e.Hint != HintNone {
		return fmt.Sprintf("unrecognized manifest: unknown variant hint %q", string(e.Hint))
	}
	return fmt.Sprintf("unrecognized manifest: %s", e.Detail)
}

func missingFieldError(field string) error {
	return coreerrors.Wrap(
		&MissingFieldError{Field: field},
		coreerrors.CategoryMissingField,
		"manifest_field_missing",
		"verify the manifest was produced by a supported server generation",
		false,
	)
}

func malformedFieldError(field, expected string, value any) error {
	return coreerrors.Wrap(
		&MalformedFieldError{
			Field:    field,
			Expected: expected,
			Actual:   typeName(value),
			Value:    valueSummary(value),
		},
		coreerrors.CategoryMalformedField,
		"manifest_field_malformed",
		"verify the manifest was produced by a supported server generation",
		false,
	)
}

func unrecognizedManifestError(hint Hint, detail string) error {
	return coreerrors.Wrap(
		&UnrecognizedManifestError{Hint: hint, Detail: detail},
		coreerrors.CategoryUnrecognizedManifest,
		"manifest_unrecognized",
		"the server may speak a newer manifest protocol than this client",
		false,
	)
}

func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case []any:
		return "sequence"
	case map[string]any:
		return "mapping"
	default:
		return fmt.Sprintf("%T", value)
	}
}

func valueSummary(value any) string {
	summary := fmt.Sprintf("%v", value)
	if len(summary) > maxValueSummaryBytes {
		summary = summary[:maxValueSummaryBytes] + "..."
	}
	return summary
}
