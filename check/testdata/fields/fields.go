package fields

import (
	"github.com/SLASH2NL/selectiter"
	"github.com/SLASH2NL/selectiter/cursors"
	"github.com/SLASH2NL/selectiter/tuple"
)

type row = tuple.T3[int, string, bool]

type totals struct {
	Sum   int
	Count int
	Label string
}

type person struct {
	name string
}

func (p *person) Len() int { return 1 }

func (p *person) Addr(i int) any { return &p.name }

const labelIndex = 1

var (
	byIndex     = selectiter.MustFieldAt[row, int](0)
	byConst     = selectiter.MustFieldAt[row, string](labelIndex)
	outOfRange  = selectiter.MustFieldAt[row, int](3)
	wrongType   = selectiter.MustFieldAt[row, string](0)
	byType      = selectiter.MustFieldOf[row, bool]()
	missing     = selectiter.MustFieldOf[row, float64]()
	ambiguous   = selectiter.MustFieldOf[totals, int]()
	custom      = selectiter.MustFieldOf[person, int]()
	notTuple    = selectiter.MustFieldAt[int, int](0)
	unambiguous = selectiter.MustFieldOf[totals, string]()
)

func dynamic(i int) {
	_, _ = selectiter.FieldAt[row, int](i)
}

func iterators(rows []row, all []totals) {
	_, _ = selectiter.RandomAt[row, bool](cursors.Begin(rows), 2)
	_, _ = selectiter.Of[totals, string](cursors.Begin(all))
	_, _ = selectiter.RandomOf[row, uint](cursors.Begin(rows))
}
