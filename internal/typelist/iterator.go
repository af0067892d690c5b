package typelist

// walker steps through a list one element at a time, remembering where it is.
type walker[T any] struct {
	items []T
	pos   int
}

// newWalker creates a walker positioned before the first element.
func newWalker[T any](items []T) *walker[T] {
	return &walker[T]{items: items, pos: -1}
}

// Next advances to the next element and returns it.
func (w *walker[T]) Next() (T, bool) {
	var zeroValue T

	if w.pos+1 >= len(w.items) {
		return zeroValue, false
	}

	w.pos++
	return w.items[w.pos], true
}

// HasNext reports whether elements are left after the current one.
func (w *walker[T]) HasNext() bool {
	return w.pos+1 < len(w.items)
}

// Pos is the position of the element last returned by Next, -1 before the first call.
func (w *walker[T]) Pos() int {
	return w.pos
}
