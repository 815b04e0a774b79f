package game

import (
	"gonum.org/v1/gonum/stat/combin"

	"github.com/linematch/linematch/tilemapping"
)

// MatchingCombinations returns every set of k distinct tiles of hand that
// share one color or one shape, as sets of hand indexes. A repeated tile is
// represented by its first occurrence. Combinations come out in
// lexicographic index order.
func MatchingCombinations(hand tilemapping.Hand, k int) [][]int {
	if k == 0 {
		return [][]int{{}}
	}
	uniq := hand.UniqueIndexes()
	if k < 0 || k > len(uniq) {
		return nil
	}
	var out [][]int
	for _, positions := range combin.Combinations(len(uniq), k) {
		idxs := make([]int, k)
		for i, p := range positions {
			idxs[i] = uniq[p]
		}
		if isMatchingSet(hand, idxs) {
			out = append(out, idxs)
		}
	}
	return out
}

// isMatchingSet reports whether the tiles at idxs are distinct and share
// one color or one shape.
func isMatchingSet(hand tilemapping.Hand, idxs []int) bool {
	tiles := make([]tilemapping.Tile, len(idxs))
	for i, idx := range idxs {
		tiles[i] = hand[idx]
	}
	return isMatchingTiles(tiles)
}

func isMatchingTiles(tiles []tilemapping.Tile) bool {
	if len(tiles) <= 1 {
		return true
	}
	seen := make(map[tilemapping.Tile]struct{}, len(tiles))
	sameColor, sameShape := true, true
	for _, t := range tiles {
		if _, ok := seen[t]; ok {
			return false
		}
		seen[t] = struct{}{}
		sameColor = sameColor && t.Color == tiles[0].Color
		sameShape = sameShape && t.Shape == tiles[0].Shape
	}
	return sameColor || sameShape
}
