package schema

import (
	"maps"
	"net/url"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Shape maps form field names to their rule chains.
type Shape map[string]*StringSchema

// ObjectSchema validates a set of named string fields. Build it once with
// Shape and reuse it; Validate does not mutate the schema and is safe for
// concurrent use.
type ObjectSchema struct {
	shape  Shape
	fields []string
}

// Object starts an empty object schema.
func Object() *ObjectSchema {
	return &ObjectSchema{shape: Shape{}}
}

// Shape replaces the field mapping. Nil chains are dropped.
func (o *ObjectSchema) Shape(shape Shape) *ObjectSchema {
	o.shape = make(Shape, len(shape))
	for key, chain := range shape {
		if chain != nil {
			o.shape[key] = chain
		}
	}
	o.fields = slices.Sorted(maps.Keys(o.shape))
	return o
}

// Fields returns the declared field names in sorted order.
func (o *ObjectSchema) Fields() []string {
	return slices.Clone(o.fields)
}

// Field returns the rule chain declared for key.
func (o *ObjectSchema) Field(key string) (*StringSchema, bool) {
	chain, ok := o.shape[key]
	return chain, ok
}

// Validate runs every field chain against its value and returns one entry
// per declared field. Valid fields map to an empty string; a missing value
// is validated as an empty string. Keys in values that are not declared are
// ignored.
func (o *ObjectSchema) Validate(values map[string]string) map[string]string {
	result := make(map[string]string, len(o.fields))
	for _, key := range o.fields {
		result[key] = o.shape[key].Validate(values[key])
	}
	return result
}

// ValidateForm is Validate over url.Values, using the first value of each key.
func (o *ObjectSchema) ValidateForm(values url.Values) map[string]string {
	return o.Validate(flatten(values))
}

// Check returns validator.ValidationErrors for the failing fields, ordered
// by field name, or nil when every field is valid.
func (o *ObjectSchema) Check(values map[string]string) error {
	var errs validator.ValidationErrors
	for _, key := range o.fields {
		if verr, failed := o.shape[key].ValidateError(key, values[key]); failed {
			errs.Add(verr)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Valid reports whether a result produced by Validate contains no messages.
func Valid(result map[string]string) bool {
	for _, msg := range result {
		if msg != "" {
			return false
		}
	}
	return true
}

func flatten(values url.Values) map[string]string {
	out := make(map[string]string, len(values))
	for key := range values {
		out[key] = values.Get(key)
	}
	return out
}
