package cubegame

import (
	"strconv"
	"strings"
)

// Draw is one handful of cubes. A color that was not shown is absent,
// which is not the same as showing zero cubes of it.
//
// The zero value is the empty draw.
type Draw struct {
	counts [numColors]int
	seen   [numColors]bool
}

// Get returns the count shown for c and whether c was shown at all.
func (d Draw) Get(c Color) (n int, ok bool) {
	return d.counts[c], d.seen[c]
}

// With returns d with the count for c set to n, replacing any earlier
// count for c.
func (d Draw) With(c Color, n int) Draw {
	d.counts[c] = n
	d.seen[c] = true
	return d
}

// String formats d as "<count> <Color>" pairs joined by ", ", in Colors
// order.
func (d Draw) String() string {
	var sb strings.Builder
	for _, c := range Colors() {
		n, ok := d.Get(c)
		if !ok {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(n))
		sb.WriteByte(' ')
		sb.WriteString(c.String())
	}
	return sb.String()
}
