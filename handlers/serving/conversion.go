package serving

import (
	"fmt"

	"github.com/Meesho/BharatMLStack/tabflow/handlers/payload"
	"github.com/Meesho/BharatMLStack/tabflow/handlers/schema"
	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/datatypeconverter/typeconverter"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/executor"
)

// toFrame converts a raw record into the executor's input frame, coercing each
// positional value to the scalar or collection type its schema field declares.
func toFrame(record payload.RawRecord, sch *schema.Schema) (executor.Frame, error) {
	if len(record) != len(sch.Input) {
		return executor.Frame{}, &errors.TypeConversionError{
			Field:    "",
			Value:    len(record),
			ErrorMsg: fmt.Sprintf("record has %d values, schema expects %d", len(record), len(sch.Input)),
		}
	}

	row := make(executor.Row, len(record))
	for i, field := range sch.Input {
		converted, err := convertInputValue(record[i], field)
		if err != nil {
			return executor.Frame{}, err
		}
		row[i] = converted
	}
	return executor.NewFrame(sch.InputNames(), row), nil
}

func convertInputValue(value interface{}, field schema.Field) (interface{}, error) {
	if field.IsBasic() {
		converted, err := typeconverter.ValueToBasicType(value, field.Type)
		if err != nil {
			return nil, &errors.TypeConversionError{Field: field.Name, Value: value, ErrorMsg: err.Error()}
		}
		return converted, nil
	}

	elements, err := elementsOf(value)
	if err != nil {
		return nil, &errors.TypeConversionError{Field: field.Name, Value: value, ErrorMsg: err.Error()}
	}
	converted := make([]interface{}, len(elements))
	for j, el := range elements {
		cv, err := typeconverter.ValueToBasicType(el, field.Type)
		if err != nil {
			return nil, &errors.TypeConversionError{Field: field.Name, Value: el, ErrorMsg: err.Error()}
		}
		converted[j] = cv
	}
	return converted, nil
}

// elementsOf normalizes a collection value to []interface{}. Executors may hand
// back typed slices; JSON decoding hands back []interface{}.
func elementsOf(value interface{}) ([]interface{}, error) {
	switch v := value.(type) {
	case []interface{}:
		return v, nil
	case []float64:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []float32:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []int64:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []int32:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []int:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []string:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	case []bool:
		out := make([]interface{}, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, nil
	}
	return nil, fmt.Errorf("value of type %T is not a collection", value)
}
