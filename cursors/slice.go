// Package cursors provides base cursors for the selectiter adapters.
//
// Slice and ConstSlice are random access. List is bidirectional. Chain is forward only.
package cursors

// Slice is a random access position in a []R. Records are written through in place.
type Slice[R any] struct {
	s []R
	i int
}

// Begin returns the position of the first record in s.
func Begin[R any](s []R) Slice[R] {
	return Slice[R]{s: s}
}

// End returns the position one past the last record in s.
func End[R any](s []R) Slice[R] {
	return Slice[R]{s: s, i: len(s)}
}

// Index is the position in the slice.
func (c Slice[R]) Index() int {
	return c.i
}

// Record returns the record at the position. It panics at the end, like indexing the slice would.
func (c Slice[R]) Record() *R {
	return &c.s[c.i]
}

func (c Slice[R]) Next() Slice[R] {
	return c.Offset(1)
}

func (c Slice[R]) Prev() Slice[R] {
	return c.Offset(-1)
}

func (c Slice[R]) Offset(n int) Slice[R] {
	return Slice[R]{s: c.s, i: c.i + n}
}

// Sub is only meaningful for positions in the same slice.
func (c Slice[R]) Sub(o Slice[R]) int {
	return c.i - o.i
}

func (c Slice[R]) Equal(o Slice[R]) bool {
	return c.i == o.i
}

// ConstSlice is a read-only random access position in a []R.
// Record returns a copy, so writes never reach the slice.
type ConstSlice[R any] struct {
	Slice[R]
}

// CBegin returns the read-only position of the first record in s.
func CBegin[R any](s []R) ConstSlice[R] {
	return ConstSlice[R]{Begin(s)}
}

// CEnd returns the read-only position one past the last record in s.
func CEnd[R any](s []R) ConstSlice[R] {
	return ConstSlice[R]{End(s)}
}

func (c ConstSlice[R]) Record() *R {
	r := c.s[c.i]
	return &r
}

func (c ConstSlice[R]) Next() ConstSlice[R] {
	return ConstSlice[R]{c.Slice.Next()}
}

func (c ConstSlice[R]) Prev() ConstSlice[R] {
	return ConstSlice[R]{c.Slice.Prev()}
}

func (c ConstSlice[R]) Offset(n int) ConstSlice[R] {
	return ConstSlice[R]{c.Slice.Offset(n)}
}

func (c ConstSlice[R]) Sub(o ConstSlice[R]) int {
	return c.Slice.Sub(o.Slice)
}

func (c ConstSlice[R]) Equal(o ConstSlice[R]) bool {
	return c.Slice.Equal(o.Slice)
}
