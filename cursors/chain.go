package cursors

// Chain is a singly linked sequence of records. It can only be walked forwards.
type Chain[R any] struct {
	head *link[R]
	n    int
}

type link[R any] struct {
	value R
	next  *link[R]
}

// NewChain creates a chain holding records in order.
func NewChain[R any](records ...R) *Chain[R] {
	c := &Chain[R]{}
	for i := len(records) - 1; i >= 0; i-- {
		c.PushFront(records[i])
	}
	return c
}

// PushFront inserts r before the first record.
func (c *Chain[R]) PushFront(r R) {
	c.head = &link[R]{value: r, next: c.head}
	c.n++
}

func (c *Chain[R]) Len() int {
	return c.n
}

// Begin returns the position of the first record.
func (c *Chain[R]) Begin() Link[R] {
	return Link[R]{l: c.head}
}

// End returns the position after the last record, which is the zero Link.
func (c *Chain[R]) End() Link[R] {
	return Link[R]{}
}

// Link is a forward position in a Chain.
type Link[R any] struct {
	l *link[R]
}

func (c Link[R]) Record() *R {
	return &c.l.value
}

func (c Link[R]) Next() Link[R] {
	return Link[R]{l: c.l.next}
}

func (c Link[R]) Equal(o Link[R]) bool {
	return c.l == o.l
}
