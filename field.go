package selectiter

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/SLASH2NL/selectiter/internal/typelist"
)

var (
	// ErrNotTupleLike is returned for record types without positional fields.
	ErrNotTupleLike = typelist.ErrNotTupleLike
	// ErrIndexOutOfRange is returned when a position is not below the record's arity.
	ErrIndexOutOfRange = typelist.ErrOutOfRange
	// ErrTypeNotFound is returned when a field type does not occur in the record.
	ErrTypeNotFound = typelist.ErrNotFound
	// ErrAmbiguousType is returned when a field type occurs more than once in the record.
	ErrAmbiguousType = typelist.ErrAmbiguous
	// ErrFieldType is returned when the field at a position is not of the requested type.
	ErrFieldType = errors.New("field type mismatch")
)

// TupleLike lets a record expose its fields positionally when it is neither a struct nor an array.
// It is implemented on the record's pointer type.
type TupleLike = typelist.TupleLike

// Field selects one field of the record type R. The field has type F.
// A Field is resolved once and is immutable afterwards.
type Field[R, F any] struct {
	index int
	get   func(*R) *F
}

// FieldAt resolves the field at position index of R.
func FieldAt[R, F any](index int) (Field[R, F], error) {
	l, err := typelist.Of(reflect.TypeFor[R]())
	if err != nil {
		return Field[R, F]{}, err
	}

	ft, err := l.Field(index)
	if err != nil {
		return Field[R, F]{}, err
	}

	if want := reflect.TypeFor[F](); ft != want {
		return Field[R, F]{}, fmt.Errorf("%w: field %d of %s is %s, not %s", ErrFieldType, index, l.Type, ft, want)
	}

	return newField[R, F](l, index), nil
}

// FieldOf resolves the single field of R whose type is F.
func FieldOf[R, F any]() (Field[R, F], error) {
	l, err := typelist.Of(reflect.TypeFor[R]())
	if err != nil {
		return Field[R, F]{}, err
	}

	index, err := l.Index(reflect.TypeFor[F]())
	if err != nil {
		return Field[R, F]{}, err
	}

	return newField[R, F](l, index), nil
}

// MustFieldAt is like FieldAt but panics if the field can not be resolved.
func MustFieldAt[R, F any](index int) Field[R, F] {
	f, err := FieldAt[R, F](index)
	if err != nil {
		panic(err)
	}

	return f
}

// MustFieldOf is like FieldOf but panics if the field can not be resolved.
func MustFieldOf[R, F any]() Field[R, F] {
	f, err := FieldOf[R, F]()
	if err != nil {
		panic(err)
	}

	return f
}

func newField[R, F any](l *typelist.List, index int) Field[R, F] {
	if l.Kind == typelist.Custom {
		return Field[R, F]{
			index: index,
			get: func(r *R) *F {
				return any(r).(TupleLike).Addr(index).(*F)
			},
		}
	}

	// The field type was checked against F, so the offset addresses an F inside *r.
	offset := l.Offset(index)
	return Field[R, F]{
		index: index,
		get: func(r *R) *F {
			return (*F)(unsafe.Add(unsafe.Pointer(r), offset))
		},
	}
}

// Index is the position of the field in R.
func (f Field[R, F]) Index() int {
	return f.index
}

// Get returns a pointer to the field inside r.
func (f Field[R, F]) Get(r *R) *F {
	return f.get(r)
}

func (f Field[R, F]) String() string {
	return fmt.Sprintf("%s[%d]", reflect.TypeFor[R](), f.index)
}
