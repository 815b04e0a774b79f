package board

import (
	"cmp"
	"fmt"
	"math"
)

type BoardDirection uint8

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

const (
	// HorizontalDirection lines vary in X and keep Y fixed.
	HorizontalDirection BoardDirection = iota
	// VerticalDirection lines vary in Y and keep X fixed.
	VerticalDirection
)

// Perpendicular returns the other direction.
func (bd BoardDirection) Perpendicular() BoardDirection {
	if bd == HorizontalDirection {
		return VerticalDirection
	}
	return HorizontalDirection
}

// A Coordinate is a cell of the unbounded board. The first tile of a game
// goes near the origin.
type Coordinate struct {
	X, Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Along returns the component of c that varies along dir.
func (c Coordinate) Along(dir BoardDirection) int {
	if dir == HorizontalDirection {
		return c.X
	}
	return c.Y
}

// Fixed returns the component of c that stays constant along dir.
func (c Coordinate) Fixed(dir BoardDirection) int {
	return c.Along(dir.Perpendicular())
}

// At builds the coordinate at position v of the line with the given
// direction and fixed offset.
func At(dir BoardDirection, fixed, v int) Coordinate {
	if dir == HorizontalDirection {
		return Coordinate{X: v, Y: fixed}
	}
	return Coordinate{X: fixed, Y: v}
}

// Compare orders coordinates by X, then Y.
func Compare(a, b Coordinate) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// Bounds returns the component-wise minimum and maximum of coords. ok is
// false when coords is empty.
func Bounds(coords []Coordinate) (lo, hi Coordinate, ok bool) {
	if len(coords) == 0 {
		return Coordinate{}, Coordinate{}, false
	}
	lo, hi = coords[0], coords[0]
	for _, c := range coords[1:] {
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return lo, hi, true
}

// NearestToOrigin returns the coordinate closest to (0, 0). The earliest one
// wins a tie.
func NearestToOrigin(coords []Coordinate) (Coordinate, bool) {
	if len(coords) == 0 {
		return Coordinate{}, false
	}
	best := coords[0]
	bestDist := distance(best)
	for _, c := range coords[1:] {
		if d := distance(c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, true
}

func distance(c Coordinate) float64 {
	return math.Hypot(float64(c.X), float64(c.Y))
}

// Adjacent returns the four neighbours of c in lexicographic order.
func Adjacent(c Coordinate) [4]Coordinate {
	return [4]Coordinate{
		{c.X - 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
		{c.X + 1, c.Y},
	}
}

// InBounds reports whether both components of c are strictly inside
// (-limit, limit).
func InBounds(c Coordinate, limit int) bool {
	return -limit < c.X && c.X < limit && -limit < c.Y && c.Y < limit
}
