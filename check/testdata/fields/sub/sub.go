package sub

import (
	"github.com/SLASH2NL/selectiter"
	"github.com/SLASH2NL/selectiter/tuple"
)

var count = selectiter.MustFieldAt[tuple.Pair[string, int], int](0)
