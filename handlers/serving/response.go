package serving

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"

	"github.com/Meesho/BharatMLStack/tabflow/handlers/schema"
	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
	"github.com/Meesho/BharatMLStack/tabflow/pkg/datatypeconverter/typeconverter"
)

// ResponseUnit is the rendered prediction for one record: the serialized body
// plus the content type implied by the negotiated accept value.
type ResponseUnit struct {
	Body        string
	ContentType string
}

// jsonlinesStandardOutput wraps a collection prediction for application/jsonlines.
type jsonlinesStandardOutput struct {
	Features []interface{} `json:"features"`
}

// jsonlinesTextOutput wraps a collection prediction for the text variant, the
// elements joined into one space-separated string.
type jsonlinesTextOutput struct {
	Source string `json:"source"`
}

// renderResponse converts the executor's output value and serializes it per the
// negotiated accept format. A basic output field renders as its bare text form;
// vector and array outputs render as a format-appropriate list, element order
// preserved.
func renderResponse(value interface{}, outputField schema.Field, accept string) (*ResponseUnit, error) {
	if outputField.IsBasic() {
		text, err := typeconverter.ValueToString(value, outputField.Type)
		if err != nil {
			return nil, &errors.TypeConversionError{Field: outputField.Name, Value: value, ErrorMsg: err.Error()}
		}
		return &ResponseUnit{Body: text, ContentType: accept}, nil
	}

	elements, err := elementsOf(value)
	if err != nil {
		return nil, &errors.TypeConversionError{Field: outputField.Name, Value: value, ErrorMsg: err.Error()}
	}

	switch accept {
	case MediaTypeJSONLines:
		typed := make([]interface{}, len(elements))
		for i, el := range elements {
			cv, err := typeconverter.ValueToBasicType(el, outputField.Type)
			if err != nil {
				return nil, &errors.TypeConversionError{Field: outputField.Name, Value: el, ErrorMsg: err.Error()}
			}
			typed[i] = cv
		}
		body, err := json.Marshal(jsonlinesStandardOutput{Features: typed})
		if err != nil {
			return nil, err
		}
		return &ResponseUnit{Body: string(body), ContentType: accept}, nil

	case MediaTypeJSONLinesText:
		texts, err := elementTexts(elements, outputField)
		if err != nil {
			return nil, err
		}
		body, err := json.Marshal(jsonlinesTextOutput{Source: strings.Join(texts, " ")})
		if err != nil {
			return nil, err
		}
		return &ResponseUnit{Body: string(body), ContentType: accept}, nil

	default:
		texts, err := elementTexts(elements, outputField)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		writer := csv.NewWriter(&buf)
		if err := writer.Write(texts); err != nil {
			return nil, err
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return nil, err
		}
		return &ResponseUnit{Body: strings.TrimRight(buf.String(), "\n"), ContentType: MediaTypeCSV}, nil
	}
}

func elementTexts(elements []interface{}, outputField schema.Field) ([]string, error) {
	texts := make([]string, len(elements))
	for i, el := range elements {
		text, err := typeconverter.ValueToString(el, outputField.Type)
		if err != nil {
			return nil, &errors.TypeConversionError{Field: outputField.Name, Value: el, ErrorMsg: err.Error()}
		}
		texts[i] = text
	}
	return texts, nil
}
