package errors

import "fmt"

// InvalidAcceptTypeError is returned when the Accept value, whether it came from
// the request or from the configured default, is not in the supported list.
type InvalidAcceptTypeError struct {
	ErrorMsg string
}

func (m *InvalidAcceptTypeError) Error() string {
	return m.ErrorMsg
}

// MissingSchemaError is returned when neither the request payload nor the process
// configuration carries a data schema.
type MissingSchemaError struct {
	ErrorMsg string
}

func (m *MissingSchemaError) Error() string {
	return m.ErrorMsg
}

// SchemaParseError is returned when a serialized schema cannot be deserialized or
// fails structural validation.
type SchemaParseError struct {
	ErrorMsg string
}

func (m *SchemaParseError) Error() string {
	return m.ErrorMsg
}

// MalformedLineError is returned when a JSON-lines fragment matches neither the
// multi-record nor the single-record envelope shape. It aborts the whole batch.
type MalformedLineError struct {
	Line     int
	ErrorMsg string
}

func (m *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed line %d: %s", m.Line, m.ErrorMsg)
}

// TypeConversionError is returned when a raw value cannot be coerced to the scalar
// type declared by its schema field.
type TypeConversionError struct {
	Field    string
	Value    interface{}
	ErrorMsg string
}

func (m *TypeConversionError) Error() string {
	return fmt.Sprintf("cannot convert value %v for field %s: %s", m.Value, m.Field, m.ErrorMsg)
}

// ExecutorError wraps a failure propagated from the model executor.
type ExecutorError struct {
	ErrorMsg string
}

func (m *ExecutorError) Error() string {
	return m.ErrorMsg
}
