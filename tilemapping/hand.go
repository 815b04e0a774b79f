package tilemapping

import (
	"slices"
	"strings"
)

// Hand is a player's ordered set of tiles. Indexes are only meaningful for
// one snapshot of a hand; any removal shifts the tiles after it.
type Hand []Tile

// Copy returns an independent copy of the hand.
func (h Hand) Copy() Hand {
	return slices.Clone(h)
}

// RemoveIndexes removes the tiles at the given indexes, highest index first
// so the lower indexes stay valid while removing. Indexes must be unique and
// in range. The removed tiles are returned in the order they were removed.
func (h *Hand) RemoveIndexes(indexes []int) []Tile {
	sorted := slices.Clone(indexes)
	slices.Sort(sorted)
	removed := make([]Tile, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		idx := sorted[i]
		removed = append(removed, (*h)[idx])
		*h = slices.Delete(*h, idx, idx+1)
	}
	return removed
}

// MaxMatch returns the largest number of distinct tiles in the hand that all
// share one color or all share one shape. A duplicated tile is only counted
// once, so it never matches with itself.
func (h Hand) MaxMatch() int {
	var colorCount [NumColors]int
	var shapeCount [NumShapes]int
	seen := make(map[Tile]struct{}, len(h))
	best := 0
	for _, t := range h {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		colorCount[t.Color]++
		if colorCount[t.Color] > best {
			best = colorCount[t.Color]
		}
		shapeCount[t.Shape]++
		if shapeCount[t.Shape] > best {
			best = shapeCount[t.Shape]
		}
	}
	return best
}

// UniqueIndexes returns the index of the first occurrence of every distinct
// tile, in hand order.
func (h Hand) UniqueIndexes() []int {
	seen := make(map[Tile]struct{}, len(h))
	idxs := make([]int, 0, len(h))
	for i, t := range h {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		idxs = append(idxs, i)
	}
	return idxs
}

func (h Hand) String() string {
	var sb strings.Builder
	for i, t := range h {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}
