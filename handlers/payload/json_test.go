package payload

import (
	"testing"

	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_SingleRecordWithSchema(t *testing.T) {
	body := []byte(`{
		"schema": {
			"input": [{"name": "a", "type": "double"}, {"name": "b", "type": "string"}],
			"output": {"name": "p", "type": "double"}
		},
		"data": [1.0, "a"]
	}`)

	env, err := ParseJSON(body)

	require.NoError(t, err)
	assert.NotNil(t, env.Schema)
	assert.Equal(t, RawRecord{1.0, "a"}, env.Data)
}

func TestParseJSON_NoSchema(t *testing.T) {
	env, err := ParseJSON([]byte(`{"data": [1, 2, 3]}`))

	require.NoError(t, err)
	assert.Nil(t, env.Schema)
	assert.Len(t, env.Data, 3)
}

func TestParseJSON_MissingData(t *testing.T) {
	_, err := ParseJSON([]byte(`{"schema": null}`))

	assert.IsType(t, &errors.MalformedLineError{}, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := ParseJSON([]byte(`{"data": [1,`))

	assert.IsType(t, &errors.MalformedLineError{}, err)
}

func TestParseLine_MultiRecordEnvelope(t *testing.T) {
	records, err := ParseLine(`{"data": [[1.0, "a"], [2.0, "b"]]}`, 1)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, RawRecord{1.0, "a"}, records[0])
	assert.Equal(t, RawRecord{2.0, "b"}, records[1])
}

func TestParseLine_SingleRecordEnvelope(t *testing.T) {
	records, err := ParseLine(`{"data": [1.0, "a"]}`, 2)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, RawRecord{1.0, "a"}, records[0])
}

// The multi-record shape wins when a line type-matches both interpretations.
func TestParseLine_MultiRecordTakesPrecedence(t *testing.T) {
	records, err := ParseLine(`{"data": [[1.0], [2.0]]}`, 1)

	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestParseLine_NeitherShape(t *testing.T) {
	_, err := ParseLine(`{"data": "scalar"}`, 3)

	assert.IsType(t, &errors.MalformedLineError{}, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestParseLine_InvalidJSONIsFatal(t *testing.T) {
	_, err := ParseLine(`{"data": [[1.0]`, 1)

	assert.IsType(t, &errors.MalformedLineError{}, err)
}

func TestFirstLineEnvelope_CarriesSchema(t *testing.T) {
	env, err := FirstLineEnvelope(`{
		"schema": {
			"input": [{"name": "a", "type": "double"}],
			"output": {"name": "p", "type": "double"}
		},
		"data": [1.0]
	}`)

	require.NoError(t, err)
	assert.NotNil(t, env.Schema)
	assert.Len(t, env.Data, 1)
}

func TestFirstLineEnvelope_MultiRecordFirstLine(t *testing.T) {
	env, err := FirstLineEnvelope(`{"data": [[1.0], [2.0]]}`)

	require.NoError(t, err)
	assert.Nil(t, env.Schema)
	assert.Len(t, env.Data, 2)
}

func TestSplitLines_CRLFAndBlankLines(t *testing.T) {
	lines := SplitLines([]byte("{\"data\": [1]}\r\n\n  \n{\"data\": [2]}\n"))

	assert.Equal(t, []Line{
		{Number: 1, Text: `{"data": [1]}`},
		{Number: 4, Text: `{"data": [2]}`},
	}, lines)
}
