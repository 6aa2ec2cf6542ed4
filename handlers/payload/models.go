package payload

import "github.com/Meesho/BharatMLStack/tabflow/handlers/schema"

// RawRecord is one row of loosely typed values as parsed off the wire, before
// any schema-driven conversion.
type RawRecord []interface{}

// Envelope is the single-record JSON request shape: a flat list of values for
// one record plus an optional embedded schema.
type Envelope struct {
	Schema *schema.Schema `json:"schema,omitempty"`
	Data   RawRecord      `json:"data"`
}

// ListEnvelope is the multi-record JSON-lines shape: one line carrying several
// records at once.
type ListEnvelope struct {
	Schema *schema.Schema `json:"schema,omitempty"`
	Data   []RawRecord    `json:"data"`
}
