package tilemapping

import (
	"errors"
	"fmt"

	"lukechampine.com/frand"
)

// ErrPoolTooSmall is returned when more tiles are requested than the pool has.
var ErrPoolTooSmall = errors.New("not enough tiles in pool")

// A Pool holds the tiles that have not been drawn yet. Order carries no
// meaning for the game; tiles leave from the end and return to the end.
type Pool struct {
	tiles []Tile
}

// NewPool builds a shuffled pool containing copies of every tile kind.
func NewPool(copies int) *Pool {
	tiles := make([]Tile, 0, copies*NumTiles)
	for _, t := range Tiles() {
		for i := 0; i < copies; i++ {
			tiles = append(tiles, t)
		}
	}
	frand.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return &Pool{tiles: tiles}
}

// PoolFromTiles wraps tiles as a pool as-is, without shuffling. The slice is
// owned by the pool afterwards.
func PoolFromTiles(tiles []Tile) *Pool {
	return &Pool{tiles: tiles}
}

func (p *Pool) Len() int {
	return len(p.tiles)
}

// Peek returns a copy of the tiles still in the pool.
func (p *Pool) Peek() []Tile {
	ret := make([]Tile, len(p.tiles))
	copy(ret, p.tiles)
	return ret
}

// Draw draws exactly n tiles from the end of the pool.
func (p *Pool) Draw(n int) ([]Tile, error) {
	if n > len(p.tiles) {
		return nil, fmt.Errorf("tried to draw %v tiles, pool has %v: %w",
			n, len(p.tiles), ErrPoolTooSmall)
	}
	return p.DrawAtMost(n), nil
}

// DrawAtMost draws at most n tiles from the end of the pool. It can draw
// fewer if there are fewer than n left, or none at all.
func (p *Pool) DrawAtMost(n int) []Tile {
	if n > len(p.tiles) {
		n = len(p.tiles)
	}
	if n <= 0 {
		return nil
	}
	start := len(p.tiles) - n
	drawn := make([]Tile, n)
	copy(drawn, p.tiles[start:])
	p.tiles = p.tiles[:start]
	return drawn
}

// PutBackShuffled appends tiles to the pool and mixes each of them into a
// uniformly random position of the whole pool. Only the appended region is
// walked, so the cost is one swap per returned tile.
func (p *Pool) PutBackShuffled(tiles []Tile) {
	start := len(p.tiles)
	p.tiles = append(p.tiles, tiles...)
	end := len(p.tiles)
	for i := start; i < end; i++ {
		j := frand.Intn(end)
		p.tiles[i], p.tiles[j] = p.tiles[j], p.tiles[i]
	}
}
