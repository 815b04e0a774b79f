package game

import (
	"github.com/linematch/linematch/board"
	"github.com/linematch/linematch/tilemapping"
)

// CheckLine scores one straight line of tiles.
//
// A legal line has no repeated tile and a single matching group: every tile
// shares one color, or every tile shares one shape. It is worth one point a
// tile plus FullMatchBonus when it holds every color or every shape. An
// illegal line reports its Duplicates groups and, when it mixes several
// matching groups, its MultipleMatching groups.
func CheckLine(line board.Board) (int, Violations) {
	dupes := map[tilemapping.Tile][]board.Coordinate{}
	colors := map[tilemapping.Color][]board.Coordinate{}
	shapes := map[tilemapping.Shape][]board.Coordinate{}
	for c, t := range line {
		dupes[t] = append(dupes[t], c)
		colors[t.Color] = append(colors[t.Color], c)
		shapes[t.Shape] = append(shapes[t.Shape], c)
	}

	var dupeGroups [][]board.Coordinate
	for _, g := range dupes {
		if len(g) > 1 {
			dupeGroups = append(dupeGroups, g)
		}
	}

	// A color group that sits inside a shape group is not a separate
	// matching group, and likewise for shapes inside surviving colors.
	var colorGroups [][]board.Coordinate
	for _, g := range colors {
		if !subsetOfAny(g, shapes) {
			colorGroups = append(colorGroups, g)
		}
	}
	survivingColors := map[int][]board.Coordinate{}
	for i, g := range colorGroups {
		survivingColors[i] = g
	}
	var shapeGroups [][]board.Coordinate
	for _, g := range shapes {
		if !subsetOfAny(g, survivingColors) {
			shapeGroups = append(shapeGroups, g)
		}
	}

	v := Violations{}
	if len(colorGroups)+len(shapeGroups) > 1 {
		v.add(&RuleError{Kind: MultipleMatching, Groups: append(colorGroups, shapeGroups...)})
	}
	if len(dupeGroups) > 0 {
		v.add(&RuleError{Kind: Duplicates, Groups: dupeGroups})
	}
	if len(v) > 0 {
		return 0, v
	}

	n := len(line)
	allOneColor := len(colors) == 1
	allOneShape := len(shapes) == 1
	if (allOneShape && n == tilemapping.NumColors) || (allOneColor && n == tilemapping.NumShapes) {
		return n + FullMatchBonus, nil
	}
	return n, nil
}

func subsetOfAny[K comparable](g []board.Coordinate, groups map[K][]board.Coordinate) bool {
	for _, other := range groups {
		if isSubset(g, other) {
			return true
		}
	}
	return false
}

func isSubset(a, b []board.Coordinate) bool {
	if len(a) > len(b) {
		return false
	}
	set := make(map[board.Coordinate]struct{}, len(b))
	for _, c := range b {
		set[c] = struct{}{}
	}
	for _, c := range a {
		if _, ok := set[c]; !ok {
			return false
		}
	}
	return true
}
