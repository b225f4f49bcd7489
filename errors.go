package curvepaint

import "fmt"

// CompileError reports that an expression text could not be compiled.
// It is intended to be surfaced to the user as a validation message;
// rendering with a nil expression falls back to a background-only fill.
type CompileError struct {
	Text string // the offending expression text
	Err  error  // underlying parser/compiler error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("curvepaint: compile %q: %v", e.Text, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// EvalError reports that evaluating an expression at a single sample failed,
// e.g. a runtime type error or division by zero inside the expression VM.
// The plotter recovers locally by breaking the current polyline segment.
type EvalError struct {
	X   float64 // sample position at which evaluation failed
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("curvepaint: eval at x=%g: %v", e.X, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// BufferAccessError reports that a pixel buffer was unusable for a fill
// operation (nil surface, nil pixmap, or a buffer whose length does not
// match its dimensions). The fill aborts with nothing drawn.
type BufferAccessError struct {
	Reason string
}

func (e *BufferAccessError) Error() string {
	return "curvepaint: buffer access: " + e.Reason
}
