package visualizer

import "errors"

// Failure kinds for construction and the render loop. All of them are
// fatal: the visualizer never retries a failed operation.
var (
	// ErrResourceRead indicates a shader source could not be read.
	ErrResourceRead = errors.New("visualizer: shader resource unreadable")

	// ErrShaderCompile indicates shader compilation or program linking failed.
	ErrShaderCompile = errors.New("visualizer: shader compilation failed")

	// ErrBufferAllocation indicates vertex or texture storage could not be
	// created.
	ErrBufferAllocation = errors.New("visualizer: buffer allocation failed")

	// ErrRender indicates a window, context, draw or present failure.
	ErrRender = errors.New("visualizer: render failed")
)

// Error wraps a failure with the operation that produced it. Kind is one of
// the sentinel errors above; Err is the underlying cause, if any. Both are
// reachable through errors.Is.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	s := e.Kind.Error() + ": " + e.Op
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}
