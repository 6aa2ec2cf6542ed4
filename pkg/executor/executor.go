package executor

import "fmt"

// Row is a positional tuple of schema-typed values for one record.
type Row []interface{}

// Frame carries one row together with the field names that give each position
// meaning. The serving pipeline builds a Frame per record, hands it to the
// Transformer, and reads the output field back from the returned Frame.
type Frame struct {
	Names []string
	Row   Row
}

// NewFrame builds a single-row frame. Names and values are positionally aligned.
func NewFrame(names []string, row Row) Frame {
	return Frame{Names: names, Row: row}
}

// ValueOf returns the value of the named field.
func (f Frame) ValueOf(name string) (interface{}, error) {
	for i, n := range f.Names {
		if n == name {
			if i >= len(f.Row) {
				return nil, fmt.Errorf("field %s has no value in row of length %d", name, len(f.Row))
			}
			return f.Row[i], nil
		}
	}
	return nil, fmt.Errorf("field %s not present in frame", name)
}

// Transformer is the model executor capability. Given a schema-conforming input
// frame it produces a frame that carries the prediction output field. The serving
// pipeline treats it as an opaque, synchronous call; implementations own any model
// runtime specifics.
type Transformer interface {
	Transform(frame Frame) (Frame, error)
}
