package serving

import (
	"encoding/json"

	"github.com/Meesho/BharatMLStack/tabflow/handlers/payload"
	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
)

// ProcessJSONLines handles a newline-delimited JSON batch. The first line fixes
// the schema for the whole batch (embedded schema first, configured schema
// otherwise); every line then contributes its records in encounter order, a
// multi-record line inserting several records at the position it appears. Each
// record runs through the single-record pipeline with the shared schema and
// accept value, and the ordered bodies merge into one response. Any failure
// aborts the whole batch.
func (h *Handler) ProcessJSONLines(body []byte, acceptHeader string) (*ResponseUnit, error) {
	accept, err := h.ResolveAccept(acceptHeader)
	if err != nil {
		return nil, err
	}

	lines := payload.SplitLines(body)
	if len(lines) == 0 {
		return nil, &errors.MalformedLineError{Line: 1, ErrorMsg: "no lines in jsonlines input"}
	}

	// Schema resolution happens once, from line 0. Later lines never contribute
	// schema information.
	firstLine, err := payload.FirstLineEnvelope(lines[0].Text)
	if err != nil {
		return nil, err
	}
	sch, err := h.resolver.Resolve(firstLine.Schema)
	if err != nil {
		return nil, err
	}

	var records []payload.RawRecord
	for _, line := range lines {
		lineRecords, err := payload.ParseLine(line.Text, line.Number)
		if err != nil {
			return nil, err
		}
		records = append(records, lineRecords...)
	}

	units, err := h.processRecords(records, sch, accept)
	if err != nil {
		return nil, err
	}

	// One single-element list per record, merged in order. Headers come from the
	// first unit; all units share them since accept and schema are batch-wide.
	bodies := make([][]string, len(units))
	for i, unit := range units {
		bodies[i] = []string{unit.Body}
	}
	merged, err := json.Marshal(bodies)
	if err != nil {
		return nil, err
	}
	return &ResponseUnit{Body: string(merged), ContentType: units[0].ContentType}, nil
}
