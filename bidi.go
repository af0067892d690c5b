package selectiter

// BidiIterator is an Iterator over a cursor that can also step backwards.
type BidiIterator[C BidiCursor[C, R], R, F any] struct {
	Iterator[C, R, F]
}

// NewBidi wraps a bidirectional base so that it dereferences to field.
func NewBidi[C BidiCursor[C, R], R, F any](field Field[R, F], base C) BidiIterator[C, R, F] {
	return BidiIterator[C, R, F]{New(field, base)}
}

func (it BidiIterator[C, R, F]) Rebase(base C) BidiIterator[C, R, F] {
	return BidiIterator[C, R, F]{it.Iterator.Rebase(base)}
}

func (it BidiIterator[C, R, F]) Next() BidiIterator[C, R, F] {
	return it.Rebase(it.base.Next())
}

func (it *BidiIterator[C, R, F]) Inc() BidiIterator[C, R, F] {
	it.base = it.base.Next()
	return *it
}

func (it *BidiIterator[C, R, F]) PostInc() BidiIterator[C, R, F] {
	old := *it
	it.base = it.base.Next()
	return old
}

// Prev returns the iterator moved back by one record.
func (it BidiIterator[C, R, F]) Prev() BidiIterator[C, R, F] {
	return it.Rebase(it.base.Prev())
}

// Dec moves the iterator back in place and returns the new position.
func (it *BidiIterator[C, R, F]) Dec() BidiIterator[C, R, F] {
	it.base = it.base.Prev()
	return *it
}

// PostDec moves the iterator back in place and returns the position before the move.
func (it *BidiIterator[C, R, F]) PostDec() BidiIterator[C, R, F] {
	old := *it
	it.base = it.base.Prev()
	return old
}

func (it BidiIterator[C, R, F]) Equal(o BidiIterator[C, R, F]) bool {
	return it.base.Equal(o.base)
}
