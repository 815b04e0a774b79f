// Package board holds the placed tiles of a game along with the geometry
// used to validate placements: lines, holes and connectivity.
package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/linematch/linematch/tilemapping"
)

// A Board maps every occupied cell to its tile. Boards only ever grow.
type Board map[Coordinate]tilemapping.Tile

// Copy returns an independent copy of the board.
func (b Board) Copy() Board {
	c := make(Board, len(b))
	for k, v := range b {
		c[k] = v
	}
	return c
}

// Coordinates returns the occupied cells sorted by X, then Y.
func (b Board) Coordinates() []Coordinate {
	coords := lo.Keys(b)
	slices.SortFunc(coords, Compare)
	return coords
}

// Bounds returns the bounding box of the occupied cells.
func (b Board) Bounds() (minC, maxC Coordinate, ok bool) {
	return Bounds(b.Coordinates())
}

// Occupied reports whether c holds a tile.
func (b Board) Occupied(c Coordinate) bool {
	_, ok := b[c]
	return ok
}

// LineThrough returns the maximal run of tiles through c along dir. Tiles
// are looked up in extra first, then on the board. The tile at c itself is
// included if present in either.
func (b Board) LineThrough(c Coordinate, dir BoardDirection, extra Board) Board {
	get := func(at Coordinate) (tilemapping.Tile, bool) {
		if t, ok := extra[at]; ok {
			return t, true
		}
		t, ok := b[at]
		return t, ok
	}
	line := Board{}
	fixed, v := c.Fixed(dir), c.Along(dir)
	if t, ok := get(c); ok {
		line[c] = t
	}
	for i := v + 1; ; i++ {
		at := At(dir, fixed, i)
		t, ok := get(at)
		if !ok {
			break
		}
		line[at] = t
	}
	for i := v - 1; ; i-- {
		at := At(dir, fixed, i)
		t, ok := get(at)
		if !ok {
			break
		}
		line[at] = t
	}
	return line
}

// IsDeadlocked reports whether the board is a completely filled rectangle
// of NumColors by NumShapes cells, in either orientation. No tile can be
// added to such a board without repeating a tile in some line.
func (b Board) IsDeadlocked() bool {
	if len(b) != tilemapping.NumTiles {
		return false
	}
	minC, maxC, _ := b.Bounds()
	dx, dy := maxC.X-minC.X, maxC.Y-minC.Y
	return (dx == tilemapping.NumColors-1 && dy == tilemapping.NumShapes-1) ||
		(dy == tilemapping.NumColors-1 && dx == tilemapping.NumShapes-1)
}

func (b Board) String() string {
	var sb strings.Builder
	for _, c := range b.Coordinates() {
		fmt.Fprintf(&sb, "%v %v\n", c, b[c])
	}
	return sb.String()
}
