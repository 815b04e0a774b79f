package move

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/linematch/linematch/board"
)

var (
	ErrIndexReused      = errors.New("hand index played twice")
	ErrCoordinateReused = errors.New("coordinate played twice")
	ErrNegativeIndex    = errors.New("hand index must not be negative")
)

// A Play puts the tile at Index of the acting hand on Coord.
type Play struct {
	Index int
	Coord board.Coordinate
}

func (p Play) String() string {
	return fmt.Sprintf("%d@%d,%d", p.Index, p.Coord.X, p.Coord.Y)
}

// Plays pairs hand indexes with coordinates one-to-one: no index and no
// coordinate appears twice. The zero value is an empty set of plays. Plays
// are kept sorted by index.
type Plays struct {
	plays []Play
}

// NewPlays builds plays from ps, rejecting any reused index or coordinate.
func NewPlays(ps ...Play) (Plays, error) {
	var p Plays
	for _, play := range ps {
		if err := p.Add(play.Index, play.Coord); err != nil {
			return Plays{}, err
		}
	}
	return p, nil
}

// MustPlays is NewPlays for literals known to be valid. It panics otherwise.
func MustPlays(ps ...Play) Plays {
	p, err := NewPlays(ps...)
	if err != nil {
		panic(err)
	}
	return p
}

// Add pairs index with c. Other copies of p are not affected.
func (p *Plays) Add(index int, c board.Coordinate) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIndex, index)
	}
	for _, play := range p.plays {
		if play.Index == index {
			return fmt.Errorf("%w: %d", ErrIndexReused, index)
		}
		if play.Coord == c {
			return fmt.Errorf("%w: %v", ErrCoordinateReused, c)
		}
	}
	pos, _ := slices.BinarySearchFunc(p.plays, index, func(pl Play, i int) int {
		return pl.Index - i
	})
	p.plays = slices.Insert(slices.Clone(p.plays), pos, Play{Index: index, Coord: c})
	return nil
}

func (p Plays) Len() int {
	return len(p.plays)
}

func (p Plays) IsEmpty() bool {
	return len(p.plays) == 0
}

// All returns a copy of the plays sorted by index.
func (p Plays) All() []Play {
	return slices.Clone(p.plays)
}

// Indexes returns the played hand indexes in increasing order.
func (p Plays) Indexes() []int {
	idxs := make([]int, len(p.plays))
	for i, play := range p.plays {
		idxs[i] = play.Index
	}
	return idxs
}

// Coordinates returns the target coordinates in index order.
func (p Plays) Coordinates() []board.Coordinate {
	coords := make([]board.Coordinate, len(p.plays))
	for i, play := range p.plays {
		coords[i] = play.Coord
	}
	return coords
}

// IndexAt returns the index played at c.
func (p Plays) IndexAt(c board.Coordinate) (int, bool) {
	for _, play := range p.plays {
		if play.Coord == c {
			return play.Index, true
		}
	}
	return 0, false
}

// Covers reports whether some play targets c.
func (p Plays) Covers(c board.Coordinate) bool {
	_, ok := p.IndexAt(c)
	return ok
}

// Partition splits p into the plays that satisfy keep and the rest.
func (p Plays) Partition(keep func(Play) bool) (kept, rest Plays) {
	for _, play := range p.plays {
		if keep(play) {
			kept.plays = append(kept.plays, play)
		} else {
			rest.plays = append(rest.plays, play)
		}
	}
	return kept, rest
}

func (p Plays) String() string {
	parts := make([]string, len(p.plays))
	for i, play := range p.plays {
		parts[i] = play.String()
	}
	return strings.Join(parts, " ")
}

// ParsePlay parses a play written as index@x,y, for example 2@-1,0.
func ParsePlay(s string) (Play, error) {
	idxStr, coordStr, ok := strings.Cut(s, "@")
	if !ok {
		return Play{}, fmt.Errorf("play %q must look like index@x,y", s)
	}
	xStr, yStr, ok := strings.Cut(coordStr, ",")
	if !ok {
		return Play{}, fmt.Errorf("play %q must look like index@x,y", s)
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return Play{}, fmt.Errorf("bad index in %q: %w", s, err)
	}
	x, err := strconv.Atoi(xStr)
	if err != nil {
		return Play{}, fmt.Errorf("bad x in %q: %w", s, err)
	}
	y, err := strconv.Atoi(yStr)
	if err != nil {
		return Play{}, fmt.Errorf("bad y in %q: %w", s, err)
	}
	return Play{Index: idx, Coord: board.Coordinate{X: x, Y: y}}, nil
}

// ParsePlays parses every field with ParsePlay and builds the plays.
func ParsePlays(fields []string) (Plays, error) {
	ps := make([]Play, 0, len(fields))
	for _, f := range fields {
		play, err := ParsePlay(f)
		if err != nil {
			return Plays{}, err
		}
		ps = append(ps, play)
	}
	return NewPlays(ps...)
}
