// Package capi is the call surface of the native graph engine.
//
// Every operation takes an opaque Handle (the resource it acts on) plus
// primitive integers, doubles, or byte buffers, and returns primitives, new
// Handles, or an *Error carrying a stable status code. Handles are
// engine-assigned tokens, never addresses; the zero Handle is the null
// value. Callers own each returned Handle and must release it exactly once
// through HandlesDestroy (the handles package wraps this contract).
//
// This package is the only place that talks to the engine. Everything above
// it works purely in terms of Handles and status codes, so a different
// engine honoring the same surface can be swapped in without touching the
// host layer.
package capi
