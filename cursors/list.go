package cursors

import "container/list"

// List is a bidirectional position in a container/list whose elements hold *R.
// The end position has no element; stepping back from it moves to the last element.
type List[R any] struct {
	l *list.List
	e *list.Element
}

// Front returns the position of the first element of l.
func Front[R any](l *list.List) List[R] {
	return List[R]{l: l, e: l.Front()}
}

// EndOf returns the end position of l, one past its last element.
func EndOf[R any](l *list.List) List[R] {
	return List[R]{l: l}
}

// Element is the list element at the position, nil at the end.
func (c List[R]) Element() *list.Element {
	return c.e
}

func (c List[R]) Record() *R {
	return c.e.Value.(*R)
}

func (c List[R]) Next() List[R] {
	return List[R]{l: c.l, e: c.e.Next()}
}

func (c List[R]) Prev() List[R] {
	if c.e == nil {
		return List[R]{l: c.l, e: c.l.Back()}
	}
	return List[R]{l: c.l, e: c.e.Prev()}
}

func (c List[R]) Equal(o List[R]) bool {
	return c.e == o.e
}

// PushBack appends a copy of each record to l and returns l.
func PushBack[R any](l *list.List, records ...R) *list.List {
	for _, r := range records {
		l.PushBack(&r)
	}
	return l
}
