package graph

import (
	"fmt"

	"github.com/grapht/grapht/capi"
	"github.com/grapht/grapht/handles"
)

// Iterator is the single-pass adapter over a native cursor. Each element is
// fetched and decoded on demand by the fetch function, so raw internal IDs
// never reach the caller. Once exhaustion is observed it is permanent: the
// native cursor is released and any further Next fails with
// ErrIteratorExhausted.
type Iterator[T any] struct {
	ref       *handles.Ref
	fetch     func(capi.Handle) (T, error)
	exhausted bool
}

// NewIterator wraps the native cursor owned by ref. fetch advances the
// cursor one step and decodes the element.
func NewIterator[T any](ref *handles.Ref, fetch func(capi.Handle) (T, error)) *Iterator[T] {
	return &Iterator[T]{ref: ref, fetch: fetch}
}

// HasNext probes the native cursor. Observing the end releases the cursor
// and latches the exhausted state.
func (it *Iterator[T]) HasNext() bool {
	if it.exhausted {
		return false
	}
	h, err := it.ref.Value()
	if err != nil {
		return false
	}
	more, err := capi.ItHasNext(h)
	if err != nil || !more {
		it.finish()
		return false
	}

	return true
}

// Next returns the next decoded element. After exhaustion it always fails
// with ErrIteratorExhausted; it never yields stale data.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.exhausted {
		return zero, fmt.Errorf("next: %w", ErrIteratorExhausted)
	}
	h, err := it.ref.Value()
	if err != nil {
		return zero, err
	}
	more, err := capi.ItHasNext(h)
	if err != nil {
		return zero, fmt.Errorf("next: %w", err)
	}
	if !more {
		it.finish()
		return zero, fmt.Errorf("next: %w", ErrIteratorExhausted)
	}

	return it.fetch(h)
}

// Collect drains the remaining elements into a slice and releases the
// cursor.
func (it *Iterator[T]) Collect() ([]T, error) {
	var out []T
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Release frees the native cursor early. Safe to call at any point and any
// number of times.
func (it *Iterator[T]) Release() error {
	it.exhausted = true
	return it.ref.Release()
}

// finish latches exhaustion and frees the native cursor.
func (it *Iterator[T]) finish() {
	it.exhausted = true
	_ = it.ref.Release()
}
