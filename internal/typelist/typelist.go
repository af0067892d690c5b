// Package typelist resolves the positional field types of tuple-like records.
//
// A record type is tuple-like when it is a struct (fields in declaration order),
// an array (Len copies of its element type) or when its pointer implements TupleLike.
// Lists are computed once per type and cached.
package typelist

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	ErrNotTupleLike = errors.New("not a tuple-like type")
	ErrOutOfRange   = errors.New("field index out of range")
	ErrNotFound     = errors.New("type not found")
	ErrAmbiguous    = errors.New("type is ambiguous")
)

// TupleLike is implemented by records that expose their fields positionally.
// Len must not depend on the receiver's value and Addr must return a pointer to field i.
// Both are called on a zero value while the field list is built.
type TupleLike interface {
	Len() int
	Addr(i int) any
}

// Kind tells how the fields of a record are reached.
type Kind int

const (
	// Struct fields are reached through their byte offset.
	Struct Kind = iota
	// Array elements are reached through their byte offset.
	Array
	// Custom records are reached through TupleLike.Addr.
	Custom
)

// List is the ordered field-type list of a record type.
type List struct {
	Type    reflect.Type
	Kind    Kind
	Types   []reflect.Type
	offsets []uintptr
}

var (
	cache         sync.Map // reflect.Type -> *List
	tupleLikeType = reflect.TypeFor[TupleLike]()
)

// Of returns the field list of t.
func Of(t reflect.Type) (*List, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrNotTupleLike)
	}

	if l, ok := cache.Load(t); ok {
		return l.(*List), nil
	}

	l, err := build(t)
	if err != nil {
		return nil, err
	}

	actual, _ := cache.LoadOrStore(t, l)
	return actual.(*List), nil
}

func build(t reflect.Type) (*List, error) {
	if reflect.PointerTo(t).Implements(tupleLikeType) {
		zero := reflect.New(t).Interface().(TupleLike)

		n := zero.Len()
		types := make([]reflect.Type, n)
		for i := range n {
			p := reflect.TypeOf(zero.Addr(i))
			if p == nil || p.Kind() != reflect.Pointer {
				return nil, fmt.Errorf("%w: %s.Addr(%d) returned %v, expected a pointer", ErrNotTupleLike, t, i, p)
			}
			types[i] = p.Elem()
		}

		return &List{Type: t, Kind: Custom, Types: types}, nil
	}

	switch t.Kind() {
	case reflect.Struct:
		l := &List{
			Type:    t,
			Kind:    Struct,
			Types:   make([]reflect.Type, t.NumField()),
			offsets: make([]uintptr, t.NumField()),
		}
		for i := range t.NumField() {
			f := t.Field(i)
			l.Types[i] = f.Type
			l.offsets[i] = f.Offset
		}
		return l, nil
	case reflect.Array:
		l := &List{
			Type:    t,
			Kind:    Array,
			Types:   make([]reflect.Type, t.Len()),
			offsets: make([]uintptr, t.Len()),
		}
		for i := range t.Len() {
			l.Types[i] = t.Elem()
			l.offsets[i] = uintptr(i) * t.Elem().Size()
		}
		return l, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotTupleLike, t)
}

// Len is the arity of the record.
func (l *List) Len() int {
	return len(l.Types)
}

// Field returns the type of field i.
func (l *List) Field(i int) (reflect.Type, error) {
	if i < 0 || i >= len(l.Types) {
		return nil, fmt.Errorf("%w: %d not in [0, %d) for %s", ErrOutOfRange, i, len(l.Types), l.Type)
	}

	return l.Types[i], nil
}

// Offset is the byte offset of field i from the start of the record.
// Only meaningful for Struct and Array lists.
func (l *List) Offset(i int) uintptr {
	return l.offsets[i]
}

// Index returns the position of target in the list.
// The target has to occur exactly once: a duplicate is reported as ErrAmbiguous
// instead of resolving to the first occurrence.
func (l *List) Index(target reflect.Type) (int, error) {
	w := newWalker(l.Types)

	found := -1
	for w.HasNext() {
		t, _ := w.Next()
		if t != target {
			continue
		}

		if found >= 0 {
			return -1, &AmbiguousError{List: l, Target: target, First: found, Second: w.Pos()}
		}
		found = w.Pos()
	}

	if found < 0 {
		return -1, fmt.Errorf("%w: %s in %s", ErrNotFound, target, l)
	}

	return found, nil
}

// Positions returns every position holding target.
func (l *List) Positions(target reflect.Type) []int {
	var positions []int

	w := newWalker(l.Types)
	for w.HasNext() {
		if t, _ := w.Next(); t == target {
			positions = append(positions, w.Pos())
		}
	}

	return positions
}

// String formats the list as (T0, T1, ...).
func (l *List) String() string {
	var b strings.Builder

	b.WriteByte('(')
	for i, t := range l.Types {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.String())
	}
	b.WriteByte(')')

	return b.String()
}

// AmbiguousError reports a type that occurs more than once in a record.
type AmbiguousError struct {
	List   *List
	Target reflect.Type
	First  int
	Second int
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s: %s appears at positions %d and %d of %s", ErrAmbiguous, e.Target, e.First, e.Second, e.List)
}

func (e *AmbiguousError) Is(target error) bool {
	return target == ErrAmbiguous
}
