package capi

import "github.com/grapht/grapht/internal/engine"

// ItHasNext reports whether the iterator behind it has more elements.
func ItHasNext(it Handle) (bool, error) {
	v, e := resolve[any]("ItHasNext", it)
	if e != nil {
		return false, e
	}
	switch cursor := v.(type) {
	case *engine.LongIterator:
		return cursor.HasNext(), nil
	case *engine.TripleIterator:
		return cursor.HasNext(), nil
	case *engine.ObjectIterator:
		return cursor.HasNext(), nil
	default:
		return false, newError("ItHasNext", it, StatusIllegalArgument, nil)
	}
}

// ItNextLong returns the next integer element of a long iterator.
func ItNextLong(it Handle) (int64, error) {
	cursor, e := resolve[*engine.LongIterator]("ItNextLong", it)
	if e != nil {
		return 0, e
	}
	v, err := cursor.Next()
	if err != nil {
		return 0, wrapEngine("ItNextLong", it, err)
	}

	return v, nil
}

// ItNextTriple returns the next (source, target, weight) element of a
// triple iterator.
func ItNextTriple(it Handle) (int64, int64, float64, error) {
	cursor, e := resolve[*engine.TripleIterator]("ItNextTriple", it)
	if e != nil {
		return 0, 0, 0, e
	}
	t, err := cursor.Next()
	if err != nil {
		return 0, 0, 0, wrapEngine("ItNextTriple", it, err)
	}

	return t.Source, t.Target, t.Weight, nil
}

// ItNextObject returns the next element of an object iterator, wrapped in a
// fresh handle owned by the caller.
func ItNextObject(it Handle) (Handle, error) {
	cursor, e := resolve[*engine.ObjectIterator]("ItNextObject", it)
	if e != nil {
		return 0, e
	}
	obj, err := cursor.Next()
	if err != nil {
		return 0, wrapEngine("ItNextObject", it, err)
	}

	return register(obj), nil
}
