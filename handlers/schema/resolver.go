package schema

import (
	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/configs"
)

// Resolver determines the effective schema for a request: a schema embedded in
// the payload wins, otherwise the process-wide configured schema is deserialized.
// Stateless beyond the injected read-only config.
type Resolver struct {
	configuredSchema string
}

func NewResolver(configs *configs.AppConfigs) *Resolver {
	return &Resolver{configuredSchema: configs.Configs.ModelSchema}
}

// Resolve applies the payload-over-config precedence. A payload schema is
// validated; the configured schema is parsed and validated. Neither present is a
// terminal MissingSchemaError.
func (r *Resolver) Resolve(fromPayload *Schema) (*Schema, error) {
	if fromPayload != nil {
		if err := fromPayload.Validate(); err != nil {
			return nil, err
		}
		return fromPayload, nil
	}
	if r.configuredSchema == "" {
		return nil, &errors.MissingSchemaError{
			ErrorMsg: "input schema has to be provided either via environment variable or via the request",
		}
	}
	return Parse(r.configuredSchema)
}
