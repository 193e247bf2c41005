package handles

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/grapht/grapht/capi"
)

// ErrUseAfterRelease indicates an operation on a Ref whose native handle
// was already released. This is a programming error and is never recovered
// locally.
var ErrUseAfterRelease = errors.New("handles: use after release")

// ErrNullHandle indicates an attempt to acquire the null handle.
var ErrNullHandle = errors.New("handles: null handle")

// Ref owns one native handle for its lifetime.
type Ref struct {
	h        capi.Handle
	released bool
}

// Acquire takes ownership of h and installs a finalizer as a leak backstop.
// Acquiring the null handle is a programming error.
func Acquire(h capi.Handle) (*Ref, error) {
	if h == 0 {
		return nil, ErrNullHandle
	}
	r := &Ref{h: h}
	runtime.SetFinalizer(r, (*Ref).finalize)

	return r, nil
}

// MustAcquire is Acquire for handles known to be non-null, such as those
// just returned by a successful capi call.
func MustAcquire(h capi.Handle) *Ref {
	r, err := Acquire(h)
	if err != nil {
		panic(err)
	}

	return r
}

// Release frees the native handle. It is idempotent: the first call
// destroys the resource and clears the finalizer, every later call is a
// no-op returning nil.
func (r *Ref) Release() error {
	if r.released {
		return nil
	}
	r.released = true
	runtime.SetFinalizer(r, nil)
	if err := capi.HandlesDestroy(r.h); err != nil {
		return fmt.Errorf("handles: release %d: %w", r.h, err)
	}

	return nil
}

// finalize is the GC backstop; release errors have nowhere to go here.
func (r *Ref) finalize() { _ = r.Release() }

// Released reports whether the native handle was already freed.
func (r *Ref) Released() bool { return r.released }

// Value returns the underlying handle for a boundary call, or
// ErrUseAfterRelease. The caller borrows the handle; it must not outlive
// the Ref.
func (r *Ref) Value() (capi.Handle, error) {
	if r.released {
		return 0, fmt.Errorf("handle %d: %w", r.h, ErrUseAfterRelease)
	}

	return r.h, nil
}

// With lends the handle to fn, failing with ErrUseAfterRelease if the Ref
// was already released.
func (r *Ref) With(fn func(capi.Handle) error) error {
	h, err := r.Value()
	if err != nil {
		return err
	}

	return fn(h)
}
