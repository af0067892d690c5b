package selectiter

// RandomIterator is a BidiIterator over a random access cursor.
// It supports offsets, differences and ordering, all delegated to the base cursor.
type RandomIterator[C RandomCursor[C, R], R, F any] struct {
	BidiIterator[C, R, F]
}

// NewRandom wraps a random access base so that it dereferences to field.
func NewRandom[C RandomCursor[C, R], R, F any](field Field[R, F], base C) RandomIterator[C, R, F] {
	return RandomIterator[C, R, F]{NewBidi(field, base)}
}

// RandomAt is At for random access cursors.
func RandomAt[R, F any, C RandomCursor[C, R]](base C, index int) (RandomIterator[C, R, F], error) {
	field, err := FieldAt[R, F](index)
	if err != nil {
		return RandomIterator[C, R, F]{}, err
	}

	return NewRandom(field, base), nil
}

// RandomOf is Of for random access cursors.
func RandomOf[R, F any, C RandomCursor[C, R]](base C) (RandomIterator[C, R, F], error) {
	field, err := FieldOf[R, F]()
	if err != nil {
		return RandomIterator[C, R, F]{}, err
	}

	return NewRandom(field, base), nil
}

func (it RandomIterator[C, R, F]) Rebase(base C) RandomIterator[C, R, F] {
	return RandomIterator[C, R, F]{it.BidiIterator.Rebase(base)}
}

func (it RandomIterator[C, R, F]) Next() RandomIterator[C, R, F] {
	return it.Rebase(it.base.Next())
}

func (it *RandomIterator[C, R, F]) Inc() RandomIterator[C, R, F] {
	it.base = it.base.Next()
	return *it
}

func (it *RandomIterator[C, R, F]) PostInc() RandomIterator[C, R, F] {
	old := *it
	it.base = it.base.Next()
	return old
}

func (it RandomIterator[C, R, F]) Prev() RandomIterator[C, R, F] {
	return it.Rebase(it.base.Prev())
}

func (it *RandomIterator[C, R, F]) Dec() RandomIterator[C, R, F] {
	it.base = it.base.Prev()
	return *it
}

func (it *RandomIterator[C, R, F]) PostDec() RandomIterator[C, R, F] {
	old := *it
	it.base = it.base.Prev()
	return old
}

func (it RandomIterator[C, R, F]) Equal(o RandomIterator[C, R, F]) bool {
	return it.base.Equal(o.base)
}

// Offset returns the iterator n records away; n may be negative.
func (it RandomIterator[C, R, F]) Offset(n int) RandomIterator[C, R, F] {
	return it.Rebase(it.base.Offset(n))
}

// Move offsets the iterator in place by n records and returns the new position.
func (it *RandomIterator[C, R, F]) Move(n int) RandomIterator[C, R, F] {
	it.base = it.base.Offset(n)
	return *it
}

// At returns a pointer to the field of the record n positions away.
func (it RandomIterator[C, R, F]) At(n int) *F {
	return it.Offset(n).Ref()
}

// Sub returns the signed number of records from o to it.
func (it RandomIterator[C, R, F]) Sub(o RandomIterator[C, R, F]) int {
	return it.base.Sub(o.base)
}

// SubBase returns the signed number of records from the raw position c to it.
func (it RandomIterator[C, R, F]) SubBase(c C) int {
	return it.base.Sub(c)
}

// Compare returns -1, 0 or 1 when it is before, at or after o.
func (it RandomIterator[C, R, F]) Compare(o RandomIterator[C, R, F]) int {
	return compareCursors(it.base, o.base)
}

// CompareBase is Compare against a raw position.
func (it RandomIterator[C, R, F]) CompareBase(c C) int {
	return compareCursors(it.base, c)
}

// Less reports whether it is before o.
func (it RandomIterator[C, R, F]) Less(o RandomIterator[C, R, F]) bool {
	return it.Compare(o) < 0
}

// LessBase reports whether it is before the raw position c.
func (it RandomIterator[C, R, F]) LessBase(c C) bool {
	return it.CompareBase(c) < 0
}

// Add returns it offset by n. It is the n + it form of RandomIterator.Offset.
func Add[C RandomCursor[C, R], R, F any](n int, it RandomIterator[C, R, F]) RandomIterator[C, R, F] {
	return it.Rebase(it.base.Offset(n))
}

// BaseSub returns the signed number of records from it to the raw position c.
func BaseSub[C RandomCursor[C, R], R, F any](c C, it RandomIterator[C, R, F]) int {
	return c.Sub(it.base)
}

// BaseCompare orders the raw position c against it.
func BaseCompare[C RandomCursor[C, R], R, F any](c C, it RandomIterator[C, R, F]) int {
	return compareCursors(c, it.base)
}
