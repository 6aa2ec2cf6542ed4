package schema

import (
	"testing"

	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolverWithConfiguredSchema(raw string) *Resolver {
	appConfigs := &configs.AppConfigs{}
	appConfigs.Configs.ModelSchema = raw
	return NewResolver(appConfigs)
}

func TestResolve_PayloadSchemaWins(t *testing.T) {
	resolver := resolverWithConfiguredSchema(`{
		"input": [{"name": "from_env", "type": "double"}],
		"output": {"name": "p", "type": "double"}
	}`)
	fromPayload, err := Parse(validSchemaJSON)
	require.NoError(t, err)

	sch, err := resolver.Resolve(fromPayload)

	require.NoError(t, err)
	assert.Equal(t, "f1", sch.Input[0].Name)
}

func TestResolve_FallsBackToConfiguredSchema(t *testing.T) {
	resolver := resolverWithConfiguredSchema(validSchemaJSON)

	sch, err := resolver.Resolve(nil)

	require.NoError(t, err)
	assert.Equal(t, "prediction", sch.Output.Name)
}

func TestResolve_NeitherPresent(t *testing.T) {
	resolver := resolverWithConfiguredSchema("")

	_, err := resolver.Resolve(nil)

	assert.IsType(t, &errors.MissingSchemaError{}, err)
}

func TestResolve_ConfiguredSchemaUnparseable(t *testing.T) {
	resolver := resolverWithConfiguredSchema(`{"input": [}`)

	_, err := resolver.Resolve(nil)

	assert.IsType(t, &errors.SchemaParseError{}, err)
}

func TestResolve_InvalidPayloadSchema(t *testing.T) {
	resolver := resolverWithConfiguredSchema(validSchemaJSON)
	bad := &Schema{Input: []Field{{Name: "a", Type: "double"}}}

	_, err := resolver.Resolve(bad)

	assert.IsType(t, &errors.SchemaParseError{}, err)
}
