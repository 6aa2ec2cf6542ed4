package executor

// Passthrough is a trivial Transformer that appends an output field whose value
// is the first input value. It stands in for a real model runtime in local runs
// and tests; production deployments register their own Transformer at startup.
type Passthrough struct {
	OutputName string
}

func (p *Passthrough) Transform(frame Frame) (Frame, error) {
	out := Frame{
		Names: append(append([]string{}, frame.Names...), p.OutputName),
		Row:   append(append(Row{}, frame.Row...), nil),
	}
	if len(frame.Row) > 0 {
		out.Row[len(out.Row)-1] = frame.Row[0]
	}
	return out, nil
}
