package capi

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Handle is an opaque engine-assigned token. It is exchanged by value and
// must never be interpreted by the host; 0 is the null handle.
type Handle uintptr

// handleTable maps live tokens to engine objects. Tokens come from an
// atomic counter starting at 1 so the zero value stays reserved for null.
var handleTable sync.Map

var handleSeq atomic.Uintptr

// traceLog, when set, receives a Debug record per boundary call.
var traceLog *slog.Logger

// SetTraceLogger installs a structured logger for boundary-call tracing.
// Passing nil disables tracing (the default).
func SetTraceLogger(l *slog.Logger) { traceLog = l }

// trace emits one boundary-call record when tracing is enabled.
func trace(op string, h Handle, args ...any) {
	if traceLog == nil {
		return
	}
	attrs := append([]any{slog.String("op", op), slog.Uint64("handle", uint64(h))}, args...)
	traceLog.Debug("capi", attrs...)
}

// register stores obj in the handle table under a fresh token.
func register(obj any) Handle {
	h := Handle(handleSeq.Add(1))
	handleTable.Store(h, obj)

	return h
}

// resolve fetches the object behind h as type T.
func resolve[T any](op string, h Handle) (T, *Error) {
	var zero T
	v, ok := handleTable.Load(h)
	if !ok {
		return zero, newError(op, h, StatusInvalidHandle, nil)
	}
	obj, ok := v.(T)
	if !ok {
		return zero, newError(op, h, StatusIllegalArgument, nil)
	}

	return obj, nil
}

// HandlesDestroy releases the resource behind h. Destroying a handle that
// is not live fails with StatusInvalidHandle; callers wanting idempotent
// release must track it themselves (the handles package does).
func HandlesDestroy(h Handle) error {
	trace("HandlesDestroy", h)
	if _, ok := handleTable.LoadAndDelete(h); !ok {
		return newError("HandlesDestroy", h, StatusInvalidHandle, nil)
	}

	return nil
}

// HandlesAlive reports whether h currently names a live resource.
func HandlesAlive(h Handle) bool {
	_, ok := handleTable.Load(h)
	return ok
}
