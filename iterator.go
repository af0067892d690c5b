package selectiter

import "iter"

// Iterator projects a forward cursor over records of type R onto one field of type F.
// It holds a copy of the base position and never owns the sequence.
type Iterator[C Cursor[C, R], R, F any] struct {
	base  C
	field Field[R, F]
}

// New wraps base so that it dereferences to field.
func New[C Cursor[C, R], R, F any](field Field[R, F], base C) Iterator[C, R, F] {
	return Iterator[C, R, F]{base: base, field: field}
}

// At wraps base so that it dereferences to the field at position index of R.
func At[R, F any, C Cursor[C, R]](base C, index int) (Iterator[C, R, F], error) {
	field, err := FieldAt[R, F](index)
	if err != nil {
		return Iterator[C, R, F]{}, err
	}

	return New(field, base), nil
}

// Of wraps base so that it dereferences to the single field of R with type F.
func Of[R, F any, C Cursor[C, R]](base C) (Iterator[C, R, F], error) {
	field, err := FieldOf[R, F]()
	if err != nil {
		return Iterator[C, R, F]{}, err
	}

	return New(field, base), nil
}

// Base returns the wrapped cursor.
func (it Iterator[C, R, F]) Base() C {
	return it.base
}

// Field returns the selected field.
func (it Iterator[C, R, F]) Field() Field[R, F] {
	return it.field
}

// Rebase returns an iterator over the same field at another position.
func (it Iterator[C, R, F]) Rebase(base C) Iterator[C, R, F] {
	return Iterator[C, R, F]{base: base, field: it.field}
}

// Ref returns a pointer to the selected field of the current record.
func (it Iterator[C, R, F]) Ref() *F {
	return it.field.get(it.base.Record())
}

// Value returns a copy of the selected field of the current record.
func (it Iterator[C, R, F]) Value() F {
	return *it.Ref()
}

// Next returns the iterator advanced by one record.
func (it Iterator[C, R, F]) Next() Iterator[C, R, F] {
	return it.Rebase(it.base.Next())
}

// Inc advances the iterator in place and returns the new position.
func (it *Iterator[C, R, F]) Inc() Iterator[C, R, F] {
	it.base = it.base.Next()
	return *it
}

// PostInc advances the iterator in place and returns the position before the move.
func (it *Iterator[C, R, F]) PostInc() Iterator[C, R, F] {
	old := *it
	it.base = it.base.Next()
	return old
}

// Equal reports whether both iterators are at the same position.
func (it Iterator[C, R, F]) Equal(o Iterator[C, R, F]) bool {
	return it.base.Equal(o.base)
}

// EqualBase reports whether the iterator is at the raw position c.
func (it Iterator[C, R, F]) EqualBase(c C) bool {
	return it.base.Equal(c)
}

// Refs yields a pointer to the field of every record from the iterator up to, not including, end.
func (it Iterator[C, R, F]) Refs(end C) iter.Seq[*F] {
	return func(yield func(*F) bool) {
		for c := it.base; !c.Equal(end); c = c.Next() {
			if !yield(it.field.get(c.Record())) {
				return
			}
		}
	}
}

// Values yields a copy of the field of every record from the iterator up to, not including, end.
func (it Iterator[C, R, F]) Values(end C) iter.Seq[F] {
	return func(yield func(F) bool) {
		for p := range it.Refs(end) {
			if !yield(*p) {
				return
			}
		}
	}
}

// All is like Refs but also yields the distance from the iterator.
func (it Iterator[C, R, F]) All(end C) iter.Seq2[int, *F] {
	return func(yield func(int, *F) bool) {
		i := 0
		for p := range it.Refs(end) {
			if !yield(i, p) {
				return
			}
			i++
		}
	}
}
