package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTrace indicates the trace file is not valid VCD.
	ErrMalformedTrace = errors.New("malformed trace")
	// ErrStructure indicates the signal tree has no usable grid scope.
	ErrStructure = errors.New("unexpected signal tree structure")
	// ErrNameFormat indicates a grid signal name carries no <hex> index.
	ErrNameFormat = errors.New("malformed cell signal name")
	// ErrIndexRange indicates a decoded cell index lies outside the grid.
	ErrIndexRange = errors.New("cell index out of range")
	// ErrValueFormat indicates a grid signal value is not a binary number.
	ErrValueFormat = errors.New("malformed cell value")
)

// TraceError reports a problem at a specific line of a VCD trace.
type TraceError struct {
	Line int
	Err  error
}

func (e *TraceError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *TraceError) Unwrap() error {
	return e.Err
}

// SignalError reports a problem decoding a single grid signal.
type SignalError struct {
	Signal string
	Err    error
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("signal %q: %v", e.Signal, e.Err)
}

func (e *SignalError) Unwrap() error {
	return e.Err
}
