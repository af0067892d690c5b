package selectiter

import (
	"testing"

	"github.com/SLASH2NL/selectiter/tuple"
	"github.com/stretchr/testify/require"
)

type myclass struct {
	x int
}

func (m *myclass) GetValue() int {
	return m.x
}

type record = tuple.T4[int, string, bool, myclass]

type duplicated struct {
	A int
	B string
	C int
}

// person keeps its fields private and exposes them positionally.
type person struct {
	name string
	age  uint8
}

func (p *person) Len() int { return 2 }

func (p *person) Addr(i int) any {
	switch i {
	case 0:
		return &p.name
	case 1:
		return &p.age
	}
	return nil
}

func TestFieldAt(t *testing.T) {
	r := tuple.New4(5, "hi0", true, myclass{x: 1})

	f, err := FieldAt[record, string](1)
	require.NoError(t, err)
	require.Equal(t, 1, f.Index())
	require.Equal(t, "hi0", *f.Get(&r))

	*f.Get(&r) = "changed"
	require.Equal(t, tuple.New4(5, "changed", true, myclass{x: 1}), r)

	m := MustFieldAt[record, myclass](3)
	require.Equal(t, 1, m.Get(&r).GetValue())
}

func TestFieldAtErrors(t *testing.T) {
	_, err := FieldAt[record, int](4)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = FieldAt[record, int](-1)
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = FieldAt[record, string](0)
	require.ErrorIs(t, err, ErrFieldType)

	_, err = FieldAt[int, int](0)
	require.ErrorIs(t, err, ErrNotTupleLike)

	require.Panics(t, func() { MustFieldAt[record, bool](0) })
}

func TestFieldOf(t *testing.T) {
	cases := []struct {
		name  string
		index func() (int, error)
		want  int
		err   error
	}{
		{
			name: "int",
			index: func() (int, error) {
				f, err := FieldOf[record, int]()
				return f.Index(), err
			},
			want: 0,
		},
		{
			name: "struct",
			index: func() (int, error) {
				f, err := FieldOf[record, myclass]()
				return f.Index(), err
			},
			want: 3,
		},
		{
			name: "missing",
			index: func() (int, error) {
				f, err := FieldOf[record, float32]()
				return f.Index(), err
			},
			err: ErrTypeNotFound,
		},
		{
			name: "duplicated",
			index: func() (int, error) {
				f, err := FieldOf[duplicated, int]()
				return f.Index(), err
			},
			err: ErrAmbiguousType,
		},
		{
			name: "unique in record with duplicates",
			index: func() (int, error) {
				f, err := FieldOf[duplicated, string]()
				return f.Index(), err
			},
			want: 1,
		},
		{
			name: "pair",
			index: func() (int, error) {
				f, err := FieldOf[tuple.Pair[string, uint], uint]()
				return f.Index(), err
			},
			want: 1,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			index, err := c.index()
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, c.want, index)
		})
	}

	require.Panics(t, func() { MustFieldOf[duplicated, int]() })
}

func TestFieldTupleLike(t *testing.T) {
	p := person{name: "ada", age: 36}

	age := MustFieldOf[person, uint8]()
	require.Equal(t, 1, age.Index())

	*age.Get(&p) = 37
	require.Equal(t, person{name: "ada", age: 37}, p)

	name := MustFieldAt[person, string](0)
	require.Equal(t, "ada", *name.Get(&p))

	_, err := FieldAt[person, string](1)
	require.ErrorIs(t, err, ErrFieldType)
}

func TestFieldArray(t *testing.T) {
	a := [3]float64{1, 2, 3}

	f := MustFieldAt[[3]float64, float64](2)
	*f.Get(&a) = 30
	require.Equal(t, [3]float64{1, 2, 30}, a)

	_, err := FieldOf[[3]float64, float64]()
	require.ErrorIs(t, err, ErrAmbiguousType)
}

func TestFieldResolutionEquivalence(t *testing.T) {
	byIndex := MustFieldAt[record, bool](2)
	byType := MustFieldOf[record, bool]()

	require.Equal(t, byIndex.Index(), byType.Index())

	r := tuple.New4(5, "hi0", true, myclass{})
	require.Same(t, byIndex.Get(&r), byType.Get(&r))
}
