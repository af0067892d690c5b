// Package selectiter projects iterators over tuple-like records onto a single field.
//
// A record is tuple-like when its fields can be addressed by position: any struct,
// any array, or a type whose pointer implements TupleLike. A Field is resolved once,
// either by position (FieldAt) or by its unique type (FieldOf), and then wrapped
// around a base cursor:
//
//	rows := []tuple.T3[int, string, bool]{{5, "hi0", true}, {6, "hi1", false}}
//
//	ids := selectiter.NewRandom(selectiter.MustFieldAt[tuple.T3[int, string, bool], int](0), cursors.Begin(rows))
//	for id := range ids.Values(cursors.End(rows)) {
//		fmt.Println(id)
//	}
//
// The adapter keeps the traversal strength of its base: Iterator for a Cursor,
// BidiIterator for a BidiCursor and RandomIterator for a RandomCursor.
// Moving, comparing and measuring distances are delegated to the base cursor and
// may be done against raw cursors as well, so an adapter can be checked directly
// against the end of the underlying sequence.
package selectiter
