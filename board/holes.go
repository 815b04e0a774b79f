package board

// A Range is an inclusive run of cells along one line, First <= Last.
type Range struct {
	First, Last Coordinate
}

func (r Range) String() string {
	return r.First.String() + "-" + r.Last.String()
}

// FindHoles returns the maximal runs of unoccupied cells in the line with
// direction dir and fixed offset, between lo and hi inclusive.
//
// The scan starts at start, which should be the placed cell nearest the
// origin, and walks towards lo and towards hi independently. The walk
// towards lo stops after limit/2 runs and the walk towards hi after
// limit-limit/2 runs, so at most limit ranges come back. A limit of zero
// skips the search. Ranges are returned in increasing position.
func FindHoles(dir BoardDirection, fixed, start, lo, hi int,
	occupied func(Coordinate) bool, limit int) []Range {

	if limit <= 0 || lo > hi {
		return nil
	}
	lowerCap := limit / 2
	upperCap := limit - lowerCap

	var lower []Range
	for v := start - 1; v >= lo && len(lower) < lowerCap; v-- {
		if occupied(At(dir, fixed, v)) {
			continue
		}
		last := v
		for v-1 >= lo && !occupied(At(dir, fixed, v-1)) {
			v--
		}
		lower = append(lower, Range{First: At(dir, fixed, v), Last: At(dir, fixed, last)})
	}

	var upper []Range
	for v := start + 1; v <= hi && len(upper) < upperCap; v++ {
		if occupied(At(dir, fixed, v)) {
			continue
		}
		first := v
		for v+1 <= hi && !occupied(At(dir, fixed, v+1)) {
			v++
		}
		upper = append(upper, Range{First: At(dir, fixed, first), Last: At(dir, fixed, v)})
	}

	holes := make([]Range, 0, len(lower)+len(upper))
	for i := len(lower) - 1; i >= 0; i-- {
		holes = append(holes, lower[i])
	}
	return append(holes, upper...)
}
