package engine

import "fmt"

// LongIterator is a forward-only cursor over a fixed sequence of integer IDs.
type LongIterator struct {
	items []int64
	pos   int
}

// NewLongIterator returns a cursor over items. The slice is not copied.
func NewLongIterator(items []int64) *LongIterator {
	return &LongIterator{items: items}
}

// HasNext reports whether another element remains.
func (it *LongIterator) HasNext() bool { return it.pos < len(it.items) }

// Next returns the next element, or ErrNoSuchElement past the end.
func (it *LongIterator) Next() (int64, error) {
	if !it.HasNext() {
		return 0, fmt.Errorf("long iterator: %w", ErrNoSuchElement)
	}
	v := it.items[it.pos]
	it.pos++

	return v, nil
}

// Triple is one imported edge: endpoints in the importer's remapped ID space
// plus a weight (1 when the input carries none).
type Triple struct {
	Source int64
	Target int64
	Weight float64
}

// TripleIterator is a forward-only cursor over imported edge triples.
type TripleIterator struct {
	items []Triple
	pos   int
}

// NewTripleIterator returns a cursor over items. The slice is not copied.
func NewTripleIterator(items []Triple) *TripleIterator {
	return &TripleIterator{items: items}
}

// HasNext reports whether another triple remains.
func (it *TripleIterator) HasNext() bool { return it.pos < len(it.items) }

// Next returns the next triple, or ErrNoSuchElement past the end.
func (it *TripleIterator) Next() (Triple, error) {
	if !it.HasNext() {
		return Triple{}, fmt.Errorf("triple iterator: %w", ErrNoSuchElement)
	}
	t := it.items[it.pos]
	it.pos++

	return t, nil
}

// ObjectIterator is a forward-only cursor over engine-owned objects
// (for example path results). The call surface wraps each yielded object
// into a fresh handle.
type ObjectIterator struct {
	items []any
	pos   int
}

// NewObjectIterator returns a cursor over items. The slice is not copied.
func NewObjectIterator(items []any) *ObjectIterator {
	return &ObjectIterator{items: items}
}

// HasNext reports whether another object remains.
func (it *ObjectIterator) HasNext() bool { return it.pos < len(it.items) }

// Next returns the next object, or ErrNoSuchElement past the end.
func (it *ObjectIterator) Next() (any, error) {
	if !it.HasNext() {
		return nil, fmt.Errorf("object iterator: %w", ErrNoSuchElement)
	}
	o := it.items[it.pos]
	it.pos++

	return o, nil
}
