// Package handles wraps raw capi handles into owned references with
// release-once semantics.
//
// A Ref owns exactly one native handle. Release is explicit and idempotent;
// a finalizer backs it up so an abandoned Ref still frees the native
// resource eventually, but correctness must never depend on finalizer
// timing. Once released, every access fails with ErrUseAfterRelease.
// Passing a *Ref lends access; it never duplicates ownership of the
// underlying token.
package handles
