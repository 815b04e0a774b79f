package bot

import (
	"slices"

	"github.com/samber/lo"

	"github.com/linematch/linematch/board"
	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/game"
	"github.com/linematch/linematch/move"
	"github.com/linematch/linematch/tilemapping"
)

// GenerateOpening returns every max-matching opening of hand, laid out in a
// row that starts at the origin.
func GenerateOpening(limits config.Limits, hand tilemapping.Hand) []*move.Move {
	var moves []*move.Move
	for _, combo := range game.MatchingCombinations(hand, hand.MaxMatch()) {
		plays := move.Plays{}
		for x, idx := range combo {
			if err := plays.Add(idx, board.Coordinate{X: x}); err != nil {
				panic(err)
			}
		}
		pts, v := game.ScoreOpening(limits, hand, plays)
		if len(v) > 0 {
			continue
		}
		moves = append(moves, move.NewScoringMove(plays, pts))
	}
	sortMoves(moves)
	return moves
}

// GenerateMiddle returns every legal play of hand onto b, best first.
//
// Plays are built one tile at a time along a row or column, starting from
// every empty cell close enough to the board for the play to reach it.
// Occupied cells are stepped over, so the tiles never leave holes.
func GenerateMiddle(limits config.Limits, b board.Board, hand tilemapping.Hand) []*move.Move {
	gen := &middleGen{limits: limits, board: b, hand: hand, used: make([]bool, len(hand))}
	for _, dir := range []board.BoardDirection{board.HorizontalDirection, board.VerticalDirection} {
		for _, start := range gen.starts(dir) {
			gen.extend(move.Plays{}, start, dir)
		}
	}
	sortMoves(gen.moves)
	return gen.moves
}

type middleGen struct {
	limits config.Limits
	board  board.Board
	hand   tilemapping.Hand
	used   []bool
	moves  []*move.Move
}

// starts returns the empty cells a play along dir may begin at, in a fixed
// order.
func (g *middleGen) starts(dir board.BoardDirection) []board.Coordinate {
	seen := map[board.Coordinate]bool{}
	for _, c := range g.board.Coordinates() {
		for _, a := range board.Adjacent(c) {
			if g.board.Occupied(a) {
				continue
			}
			for j := range len(g.hand) {
				s := board.At(dir, a.Fixed(dir), a.Along(dir)-j)
				if g.board.Occupied(s) || !board.InBounds(s, g.limits.CoordinateLimit) {
					break
				}
				seen[s] = true
			}
		}
	}
	starts := lo.Keys(seen)
	slices.SortFunc(starts, board.Compare)
	return starts
}

// extend tries every unused hand tile at cell and goes on with the next
// free cell along dir.
func (g *middleGen) extend(plays move.Plays, cell board.Coordinate, dir board.BoardDirection) {
	for i := range g.hand {
		if g.used[i] {
			continue
		}
		next := plays
		if err := next.Add(i, cell); err != nil {
			continue
		}
		if !g.viable(next) {
			continue
		}
		pts, v := game.ScoreMiddle(g.limits, g.board, g.hand, next)
		if len(v) == 0 {
			// A single tile is found in both directions; keep one.
			if next.Len() > 1 || dir == board.HorizontalDirection {
				g.moves = append(g.moves, move.NewScoringMove(next, pts))
			}
		} else if !onlyDisconnected(v) {
			continue
		}
		if next.Len() == len(g.hand) {
			continue
		}
		g.used[i] = true
		g.extend(next, g.nextFree(cell, dir), dir)
		g.used[i] = false
	}
}

// viable reports whether the placed tiles can still be part of one line.
func (g *middleGen) viable(plays move.Plays) bool {
	line := board.Board{}
	for _, p := range plays.All() {
		line[p.Coord] = g.hand[p.Index]
	}
	_, v := game.CheckLine(line)
	return len(v) == 0
}

func (g *middleGen) nextFree(c board.Coordinate, dir board.BoardDirection) board.Coordinate {
	fixed, v := c.Fixed(dir), c.Along(dir)
	for {
		v++
		next := board.At(dir, fixed, v)
		if !g.board.Occupied(next) {
			return next
		}
	}
}

// onlyDisconnected reports whether the play was refused only because it
// does not reach the board yet.
func onlyDisconnected(v game.Violations) bool {
	for _, k := range v.Kinds() {
		if k != game.NotConnected && k != game.NoLegalPlays {
			return false
		}
	}
	return true
}

func sortMoves(moves []*move.Move) {
	slices.SortStableFunc(moves, func(a, b *move.Move) int {
		return b.Score() - a.Score()
	})
}
