package schema

import (
	"encoding/json"
	"fmt"

	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/datatypeconverter/typeconverter"
)

// Structure kinds a field may declare. Basic means a single scalar; vector and
// array both mean an ordered collection of scalars.
const (
	StructBasic  = "basic"
	StructVector = "vector"
	StructArray  = "array"
)

// Field is one entry of a schema. Position within Schema.Input defines the
// positional mapping to and from raw records.
type Field struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Struct string `json:"struct,omitempty"`
}

// IsBasic reports whether the field holds a single scalar. An omitted struct
// kind means basic.
func (f Field) IsBasic() bool {
	return f.Struct == "" || f.Struct == StructBasic
}

// Schema is the ordered record layout: typed input fields plus the one output
// field the model produces. Immutable once resolved for a request or batch.
type Schema struct {
	Input  []Field `json:"input"`
	Output Field   `json:"output"`
}

// InputNames returns the input field names in schema order.
func (s *Schema) InputNames() []string {
	names := make([]string, len(s.Input))
	for i, f := range s.Input {
		names[i] = f.Name
	}
	return names
}

// Parse deserializes and validates a serialized schema.
func Parse(raw string) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, &errors.SchemaParseError{ErrorMsg: fmt.Sprintf("invalid schema json: %v", err)}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the schema invariants: at least one input field, unique field
// names, known scalar types and structure kinds, and a named output field.
func (s *Schema) Validate() error {
	if len(s.Input) == 0 {
		return &errors.SchemaParseError{ErrorMsg: "schema has no input fields"}
	}
	seen := make(map[string]bool, len(s.Input))
	for _, f := range s.Input {
		if f.Name == "" {
			return &errors.SchemaParseError{ErrorMsg: "schema input field with empty name"}
		}
		if seen[f.Name] {
			return &errors.SchemaParseError{ErrorMsg: fmt.Sprintf("duplicate schema field name %s", f.Name)}
		}
		seen[f.Name] = true
		if err := validateField(f); err != nil {
			return err
		}
	}
	if s.Output.Name == "" {
		return &errors.SchemaParseError{ErrorMsg: "schema has no output field"}
	}
	return validateField(s.Output)
}

func validateField(f Field) error {
	if !typeconverter.IsSupportedType(f.Type) {
		return &errors.SchemaParseError{ErrorMsg: fmt.Sprintf("unsupported type %s for field %s", f.Type, f.Name)}
	}
	switch f.Struct {
	case "", StructBasic, StructVector, StructArray:
		return nil
	}
	return &errors.SchemaParseError{ErrorMsg: fmt.Sprintf("unsupported struct %s for field %s", f.Struct, f.Name)}
}
