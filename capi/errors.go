package capi

import (
	"errors"
	"fmt"

	"github.com/grapht/grapht/internal/engine"
)

// Error is a failure reported by the native boundary: the operation name,
// the handle it acted on, a stable status code and the underlying engine
// error. It is never swallowed; callers branch on Code or errors.Is/As.
type Error struct {
	Op     string
	Handle Handle
	Code   Status
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("capi: %s (handle %d): %s: %v", e.Op, e.Handle, e.Code, e.Err)
	}

	return fmt.Sprintf("capi: %s (handle %d): %s", e.Op, e.Handle, e.Code)
}

// Unwrap exposes the engine error for errors.Is chains.
func (e *Error) Unwrap() error { return e.Err }

// newError builds a boundary error with an explicit code.
func newError(op string, h Handle, code Status, err error) *Error {
	return &Error{Op: op, Handle: h, Code: code, Err: err}
}

// wrapEngine classifies an engine error into the status-code space.
func wrapEngine(op string, h Handle, err error) *Error {
	code := StatusInternal
	switch {
	case errors.Is(err, engine.ErrVertexNotFound):
		code = StatusVertexNotFound
	case errors.Is(err, engine.ErrEdgeNotFound):
		code = StatusEdgeNotFound
	case errors.Is(err, engine.ErrLoopNotAllowed):
		code = StatusLoopNotAllowed
	case errors.Is(err, engine.ErrMultiEdgeNotAllowed):
		code = StatusMultiEdgeNotAllowed
	case errors.Is(err, engine.ErrIllegalArgument), errors.Is(err, engine.ErrNegativeCycle):
		code = StatusIllegalArgument
	case errors.Is(err, engine.ErrUnsupported), errors.Is(err, engine.ErrDisconnected):
		code = StatusUnsupportedOperation
	case errors.Is(err, engine.ErrNoSuchElement):
		code = StatusNoSuchElement
	case errors.Is(err, engine.ErrParse):
		code = StatusImportError
	}

	return newError(op, h, code, err)
}

// CodeOf extracts the status code from an error chain, or StatusInternal if
// the chain holds no boundary error.
func CodeOf(err error) Status {
	var be *Error
	if errors.As(err, &be) {
		return be.Code
	}

	return StatusInternal
}
