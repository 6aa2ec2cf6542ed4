package schema

import (
	"testing"

	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSchemaJSON = `{
	"input": [
		{"name": "f1", "type": "double"},
		{"name": "f2", "type": "string"},
		{"name": "f3", "type": "double", "struct": "vector"}
	],
	"output": {"name": "prediction", "type": "double", "struct": "basic"}
}`

func TestParse_ValidSchema(t *testing.T) {
	sch, err := Parse(validSchemaJSON)

	require.NoError(t, err)
	assert.Len(t, sch.Input, 3)
	assert.Equal(t, "prediction", sch.Output.Name)
	assert.Equal(t, []string{"f1", "f2", "f3"}, sch.InputNames())
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse(`{"input": [`)

	assert.Error(t, err)
	assert.IsType(t, &errors.SchemaParseError{}, err)
}

func TestParse_NoInputFields(t *testing.T) {
	_, err := Parse(`{"input": [], "output": {"name": "p", "type": "double"}}`)

	assert.IsType(t, &errors.SchemaParseError{}, err)
}

func TestParse_DuplicateFieldNames(t *testing.T) {
	_, err := Parse(`{
		"input": [{"name": "a", "type": "double"}, {"name": "a", "type": "string"}],
		"output": {"name": "p", "type": "double"}
	}`)

	assert.IsType(t, &errors.SchemaParseError{}, err)
}

func TestParse_MissingOutput(t *testing.T) {
	_, err := Parse(`{"input": [{"name": "a", "type": "double"}]}`)

	assert.IsType(t, &errors.SchemaParseError{}, err)
}

func TestParse_UnsupportedFieldType(t *testing.T) {
	_, err := Parse(`{
		"input": [{"name": "a", "type": "complex"}],
		"output": {"name": "p", "type": "double"}
	}`)

	assert.IsType(t, &errors.SchemaParseError{}, err)
}

func TestParse_UnsupportedStructKind(t *testing.T) {
	_, err := Parse(`{
		"input": [{"name": "a", "type": "double", "struct": "matrix"}],
		"output": {"name": "p", "type": "double"}
	}`)

	assert.IsType(t, &errors.SchemaParseError{}, err)
}

func TestField_IsBasic(t *testing.T) {
	assert.True(t, Field{Name: "a", Type: "double"}.IsBasic())
	assert.True(t, Field{Name: "a", Type: "double", Struct: StructBasic}.IsBasic())
	assert.False(t, Field{Name: "a", Type: "double", Struct: StructVector}.IsBasic())
	assert.False(t, Field{Name: "a", Type: "double", Struct: StructArray}.IsBasic())
}
