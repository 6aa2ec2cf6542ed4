package payload

import (
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/Meesho/BharatMLStack/tabflow/internal/errors"
)

// ParseJSON parses a single-record JSON envelope.
func ParseJSON(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &errors.MalformedLineError{Line: 1, ErrorMsg: err.Error()}
	}
	if env.Data == nil {
		return nil, &errors.MalformedLineError{Line: 1, ErrorMsg: "missing data field"}
	}
	return &env, nil
}

// ParseLine parses one JSON-lines fragment into its records, in order. The
// multi-record shape is probed first; a structural mismatch (and only that)
// retries the line as a single-record envelope. A line matching neither shape is
// fatal for the whole batch.
func ParseLine(line string, lineNo int) ([]RawRecord, error) {
	var multi ListEnvelope
	err := json.Unmarshal([]byte(line), &multi)
	if err == nil && multi.Data != nil {
		return multi.Data, nil
	}
	if err != nil && !isStructuralMismatch(err) {
		return nil, &errors.MalformedLineError{Line: lineNo, ErrorMsg: err.Error()}
	}

	var single Envelope
	if err := json.Unmarshal([]byte(line), &single); err != nil {
		return nil, &errors.MalformedLineError{Line: lineNo, ErrorMsg: err.Error()}
	}
	if single.Data == nil {
		return nil, &errors.MalformedLineError{Line: lineNo, ErrorMsg: "missing data field"}
	}
	return []RawRecord{single.Data}, nil
}

// FirstLineEnvelope parses line 0 of a JSON-lines batch so its embedded schema,
// if any, can seed schema resolution for the whole batch.
func FirstLineEnvelope(line string) (*ListEnvelope, error) {
	var multi ListEnvelope
	err := json.Unmarshal([]byte(line), &multi)
	if err == nil && multi.Data != nil {
		return &multi, nil
	}
	if err != nil && !isStructuralMismatch(err) {
		return nil, &errors.MalformedLineError{Line: 1, ErrorMsg: err.Error()}
	}

	var single Envelope
	if err := json.Unmarshal([]byte(line), &single); err != nil {
		return nil, &errors.MalformedLineError{Line: 1, ErrorMsg: err.Error()}
	}
	if single.Data == nil {
		return nil, &errors.MalformedLineError{Line: 1, ErrorMsg: "missing data field"}
	}
	return &ListEnvelope{Schema: single.Schema, Data: []RawRecord{single.Data}}, nil
}

// isStructuralMismatch distinguishes a shape mismatch (valid JSON whose data is
// not a list of records) from outright invalid JSON. Only the former may be
// retried as single-record.
func isStructuralMismatch(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return stderrors.As(err, &typeErr)
}

// Line is one non-blank line of a JSON-lines body together with its physical
// line number in the request, so parse errors point at the request text even
// when blank lines precede the failing line.
type Line struct {
	Number int
	Text   string
}

// SplitLines splits a JSON-lines body on newlines, tolerating CRLF endings and
// dropping blank lines while keeping physical line numbers.
func SplitLines(body []byte) []Line {
	var lines []Line
	for i, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, Line{Number: i + 1, Text: trimmed})
		}
	}
	return lines
}
