package typelist

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type row struct {
	N     int
	Label string
	Flag  bool
}

type twoInts struct {
	A int
	B string
	C int
}

type custom struct {
	id   int
	name string
}

func (c *custom) Len() int { return 2 }

func (c *custom) Addr(i int) any {
	switch i {
	case 0:
		return &c.id
	case 1:
		return &c.name
	}
	return nil
}

type broken struct{}

func (b *broken) Len() int       { return 1 }
func (b *broken) Addr(i int) any { return 3 }

func TestOfStruct(t *testing.T) {
	l, err := Of(reflect.TypeFor[row]())
	require.NoError(t, err)

	require.Equal(t, Struct, l.Kind)
	require.Equal(t, 3, l.Len())
	require.Equal(t, "(int, string, bool)", l.String())
	require.Equal(t, reflect.TypeFor[row]().Field(1).Offset, l.Offset(1))
}

func TestOfArray(t *testing.T) {
	l, err := Of(reflect.TypeFor[[4]int16]())
	require.NoError(t, err)

	require.Equal(t, Array, l.Kind)
	require.Equal(t, 4, l.Len())
	require.Equal(t, uintptr(6), l.Offset(3))
}

func TestOfCustom(t *testing.T) {
	l, err := Of(reflect.TypeFor[custom]())
	require.NoError(t, err)

	require.Equal(t, Custom, l.Kind)
	require.Equal(t, "(int, string)", l.String())
}

func TestOfCached(t *testing.T) {
	a, err := Of(reflect.TypeFor[row]())
	require.NoError(t, err)

	b, err := Of(reflect.TypeFor[row]())
	require.NoError(t, err)

	require.Same(t, a, b)
}

func TestOfNotTupleLike(t *testing.T) {
	cases := []reflect.Type{
		nil,
		reflect.TypeFor[int](),
		reflect.TypeFor[[]int](),
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[broken](),
	}

	for _, c := range cases {
		_, err := Of(c)
		require.ErrorIs(t, err, ErrNotTupleLike, "type %v", c)
	}
}

func TestField(t *testing.T) {
	l, err := Of(reflect.TypeFor[row]())
	require.NoError(t, err)

	ft, err := l.Field(2)
	require.NoError(t, err)
	require.Equal(t, reflect.TypeFor[bool](), ft)

	_, err = l.Field(3)
	require.ErrorIs(t, err, ErrOutOfRange)

	_, err = l.Field(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestIndex(t *testing.T) {
	l, err := Of(reflect.TypeFor[row]())
	require.NoError(t, err)

	cases := []struct {
		name   string
		target reflect.Type
		index  int
		err    error
	}{
		{name: "first", target: reflect.TypeFor[int](), index: 0},
		{name: "middle", target: reflect.TypeFor[string](), index: 1},
		{name: "last", target: reflect.TypeFor[bool](), index: 2},
		{name: "missing", target: reflect.TypeFor[float64](), index: -1, err: ErrNotFound},
		{name: "named types differ", target: reflect.TypeFor[row](), index: -1, err: ErrNotFound},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			index, err := l.Index(c.target)
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, c.index, index)
		})
	}
}

func TestIndexAmbiguous(t *testing.T) {
	l, err := Of(reflect.TypeFor[twoInts]())
	require.NoError(t, err)

	_, err = l.Index(reflect.TypeFor[int]())
	require.ErrorIs(t, err, ErrAmbiguous)

	var amb *AmbiguousError
	require.True(t, errors.As(err, &amb))
	require.Equal(t, 0, amb.First)
	require.Equal(t, 2, amb.Second)
	require.Equal(t, []int{0, 2}, l.Positions(reflect.TypeFor[int]()))

	// The unique type in the same record still resolves.
	index, err := l.Index(reflect.TypeFor[string]())
	require.NoError(t, err)
	require.Equal(t, 1, index)
}

func TestIndexArrayIsAmbiguous(t *testing.T) {
	l, err := Of(reflect.TypeFor[[2]string]())
	require.NoError(t, err)

	_, err = l.Index(reflect.TypeFor[string]())
	require.ErrorIs(t, err, ErrAmbiguous)

	one, err := Of(reflect.TypeFor[[1]string]())
	require.NoError(t, err)

	index, err := one.Index(reflect.TypeFor[string]())
	require.NoError(t, err)
	require.Equal(t, 0, index)
}

func TestWalker(t *testing.T) {
	w := newWalker([]int{4, 2})
	require.Equal(t, -1, w.Pos())
	require.True(t, w.HasNext())

	v, ok := w.Next()
	require.True(t, ok)
	require.Equal(t, 4, v)
	require.Equal(t, 0, w.Pos())

	v, ok = w.Next()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.False(t, w.HasNext())

	_, ok = w.Next()
	require.False(t, ok)
}
