package payload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/Meesho/BharatMLStack/tabflow/handlers/schema"
	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
)

// ParseCSV parses delimited-text rows into raw records, one per line. The schema
// must already be resolved since this format never embeds one; its input field
// count fixes the expected number of columns.
func ParseCSV(body []byte, sch *schema.Schema) ([]RawRecord, error) {
	reader := csv.NewReader(strings.NewReader(string(body)))
	reader.FieldsPerRecord = len(sch.Input)

	var records []RawRecord
	line := 0
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &errors.MalformedLineError{Line: line, ErrorMsg: err.Error()}
		}
		record := make(RawRecord, len(row))
		for i, v := range row {
			record[i] = v
		}
		records = append(records, record)
	}
	if len(records) == 0 {
		return nil, &errors.MalformedLineError{Line: 1, ErrorMsg: fmt.Sprintf("no rows in delimited input for %d fields", len(sch.Input))}
	}
	return records, nil
}
