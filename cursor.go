package selectiter

// Cursor is a forward position in a sequence of records of type R.
// Cursors are values: Next returns the following position and leaves the receiver unchanged.
// The zero value of a cursor type is its default position.
type Cursor[C, R any] interface {
	Next() C
	Equal(C) bool
	// Record returns the record at the position. Writes through the pointer
	// reach the sequence unless the cursor is a read-only view.
	Record() *R
}

// BidiCursor is a Cursor that can also step backwards.
type BidiCursor[C, R any] interface {
	Cursor[C, R]
	Prev() C
}

// RandomCursor is a BidiCursor with constant time offset and difference.
type RandomCursor[C, R any] interface {
	BidiCursor[C, R]
	// Offset returns the position n records away; n may be negative.
	Offset(n int) C
	// Sub returns the signed number of records from o to the receiver.
	Sub(o C) int
}

// compareCursors is the single ordering contract for random access positions.
// Every ordering operation, in either operand order, goes through it.
func compareCursors[C interface{ Sub(C) int }](a, b C) int {
	switch d := a.Sub(b); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}
