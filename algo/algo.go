// Package algo runs sequence algorithms over selectiter adapters.
//
// Every algorithm works on a half-open range [first, last). The constraints are
// satisfied by selectiter.Iterator, BidiIterator and RandomIterator, depending on
// how much movement the algorithm needs.
package algo

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Stepper moves forwards and compares positions.
type Stepper[I any] interface {
	Next() I
	Equal(I) bool
}

// Forward is a Stepper that dereferences to a field of type F.
type Forward[I, F any] interface {
	Stepper[I]
	Ref() *F
}

// Bidirectional is a Forward iterator that can also step backwards.
type Bidirectional[I, F any] interface {
	Forward[I, F]
	Prev() I
}

// RandomAccess is a Bidirectional iterator with constant time offset and difference.
type RandomAccess[I, F any] interface {
	Bidirectional[I, F]
	Offset(n int) I
	Sub(I) int
}

// ForEach calls fn with a pointer to every field in the range.
func ForEach[I Forward[I, F], F any](first, last I, fn func(*F)) {
	for it := first; !it.Equal(last); it = it.Next() {
		fn(it.Ref())
	}
}

// Count returns how many fields in the range satisfy pred.
func Count[I Forward[I, F], F any](first, last I, pred func(F) bool) int {
	n := 0
	for it := first; !it.Equal(last); it = it.Next() {
		if pred(*it.Ref()) {
			n++
		}
	}
	return n
}

// Find returns the first position whose field satisfies pred, or last.
func Find[I Forward[I, F], F any](first, last I, pred func(F) bool) I {
	for it := first; !it.Equal(last); it = it.Next() {
		if pred(*it.Ref()) {
			return it
		}
	}
	return last
}

// Distance counts the steps from first to last.
func Distance[I Stepper[I]](first, last I) int {
	n := 0
	for it := first; !it.Equal(last); it = it.Next() {
		n++
	}
	return n
}

// Reverse reverses the order of the fields in the range.
// Only the selected fields move; the rest of each record stays in place.
func Reverse[F any, I Bidirectional[I, F]](first, last I) {
	for !first.Equal(last) {
		last = last.Prev()
		if first.Equal(last) {
			return
		}

		a, b := first.Ref(), last.Ref()
		*a, *b = *b, *a
		first = first.Next()
	}
}

// IsSorted reports whether the fields in the range are in ascending order.
func IsSorted[F constraints.Ordered, I Forward[I, F]](first, last I) bool {
	if first.Equal(last) {
		return true
	}

	prev := first
	for it := first.Next(); !it.Equal(last); it = it.Next() {
		if *it.Ref() < *prev.Ref() {
			return false
		}
		prev = it
	}
	return true
}

// MinMax returns the positions of the smallest and the largest field.
// Ties resolve to the first smallest and the last largest. An empty range returns last twice.
func MinMax[F constraints.Ordered, I Forward[I, F]](first, last I) (lo, hi I) {
	if first.Equal(last) {
		return last, last
	}

	lo, hi = first, first
	for it := first.Next(); !it.Equal(last); it = it.Next() {
		v := *it.Ref()
		if v < *lo.Ref() {
			lo = it
		}
		if v >= *hi.Ref() {
			hi = it
		}
	}
	return lo, hi
}

// Sort sorts the fields in the range in ascending order.
// Like Reverse, it swaps fields, not whole records.
func Sort[F constraints.Ordered, I RandomAccess[I, F]](first, last I) {
	sort.Sort(fields[I, F]{first: first, n: last.Sub(first)})
}

type fields[I RandomAccess[I, F], F constraints.Ordered] struct {
	first I
	n     int
}

func (s fields[I, F]) Len() int {
	return s.n
}

func (s fields[I, F]) Less(i, j int) bool {
	return *s.first.Offset(i).Ref() < *s.first.Offset(j).Ref()
}

func (s fields[I, F]) Swap(i, j int) {
	a, b := s.first.Offset(i).Ref(), s.first.Offset(j).Ref()
	*a, *b = *b, *a
}

// LowerBound returns the first position in a sorted range whose field is not less than value.
func LowerBound[I RandomAccess[I, F], F constraints.Ordered](first, last I, value F) I {
	return partition(first, last, func(f F) bool { return f < value })
}

// UpperBound returns the first position in a sorted range whose field is greater than value.
func UpperBound[I RandomAccess[I, F], F constraints.Ordered](first, last I, value F) I {
	return partition(first, last, func(f F) bool { return f <= value })
}

// partition returns the first position for which before is false, assuming before
// holds for a prefix of the range.
func partition[I RandomAccess[I, F], F any](first, last I, before func(F) bool) I {
	count := last.Sub(first)
	for count > 0 {
		step := count / 2
		mid := first.Offset(step)
		if before(*mid.Ref()) {
			first = mid.Next()
			count -= step + 1
		} else {
			count = step
		}
	}
	return first
}
