package game

import (
	"errors"
	"testing"

	"github.com/matryer/is"

	"github.com/linematch/linematch/board"
	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/move"
	tm "github.com/linematch/linematch/tilemapping"
)

func middleWith(b board.Board, pool []tm.Tile, hands ...tm.Hand) *MiddleState {
	return &MiddleState{
		limits: config.DefaultLimits(),
		pool:   tm.PoolFromTiles(pool),
		board:  b,
		points: make([]int, len(hands)),
		hands:  hands,
	}
}

func TestMiddleAccumulatesAll(t *testing.T) {
	is := is.New(t)
	s := middleWith(board.Board{{X: 0, Y: 0}: tile(tm.Red, tm.X)}, nil,
		tm.Hand{tile(tm.Red, tm.Circle), tile(tm.Blue, tm.X)},
		tm.Hand{tile(tm.Green, tm.X)})

	_, err := s.Play(move.MustPlays(p(0, 0, 0), p(1, 5, 5), p(4, 1, 0)))
	v := violationsOf(t, err)
	is.Equal(v.Kinds(), []ErrorKind{IndexesOutOfBounds, CoordinatesOccupied, NotConnected, NoLegalPlays})
	is.Equal(v.Get(IndexesOutOfBounds).Plays.Indexes(), []int{4})
	is.Equal(v.Get(CoordinatesOccupied).Plays.Coordinates(), []C{{X: 0, Y: 0}})
	is.Equal(v.Get(NotConnected).Plays.Coordinates(), []C{{X: 5, Y: 5}})
	is.True(!s.Consumed())
}

func TestMiddleScores(t *testing.T) {
	testCases := []struct {
		name  string
		board board.Board
		hand  tm.Hand
		plays move.Plays
		score int
	}{
		{
			name:  "extend a row",
			board: board.Board{{X: 0, Y: 0}: tile(tm.Red, tm.X), {X: 1, Y: 0}: tile(tm.Red, tm.Circle)},
			hand:  tm.Hand{tile(tm.Red, tm.Square)},
			plays: move.MustPlays(p(0, 2, 0)),
			score: 3,
		},
		{
			name:  "perpendicular",
			board: board.Board{{X: 0, Y: 0}: tile(tm.Red, tm.X)},
			hand:  tm.Hand{tile(tm.Blue, tm.X)},
			plays: move.MustPlays(p(0, 0, 1)),
			score: 2,
		},
		{
			name: "cross",
			board: board.Board{
				{X: 0, Y: 0}: tile(tm.Red, tm.X),
				{X: 1, Y: 0}: tile(tm.Red, tm.Circle),
				{X: 0, Y: 1}: tile(tm.Blue, tm.X),
			},
			hand:  tm.Hand{tile(tm.Blue, tm.Circle)},
			plays: move.MustPlays(p(0, 1, 1)),
			score: 4,
		},
		{
			name: "two tiles with their crossings",
			board: board.Board{
				{X: 0, Y: 0}: tile(tm.Red, tm.X),
				{X: 1, Y: 0}: tile(tm.Red, tm.Circle),
			},
			hand:  tm.Hand{tile(tm.Green, tm.Circle), tile(tm.Green, tm.X)},
			plays: move.MustPlays(p(0, 1, 1), p(1, 0, 1)),
			score: 6,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			pts, v := ScoreMiddle(config.DefaultLimits(), tc.board, tc.hand, tc.plays)
			is.Equal(len(v), 0)
			is.Equal(pts, tc.score)
		})
	}
}

func TestMiddleFullMatch(t *testing.T) {
	is := is.New(t)
	b := board.Board{}
	shapes := tm.Shapes()
	for i, shape := range shapes[:5] {
		b[C{X: i, Y: 0}] = tile(tm.Red, shape)
	}
	s := middleWith(b, []tm.Tile{tile(tm.Blue, tm.Clover)},
		tm.Hand{tile(tm.Red, tm.X), tile(tm.Green, tm.Diamond)},
		tm.Hand{tile(tm.Green, tm.X)})

	next, err := s.Play(move.MustPlays(p(0, 5, 0)))
	is.NoErr(err)
	ms, ok := next.(*MiddleState)
	is.True(ok)
	view := ms.View()
	is.Equal(view.Points, []int{12, 0})
	is.Equal(view.CurrentPlayer, 1)
	is.Equal(view.PoolLen, 0)
	is.Equal(view.HandLens, []int{2, 1})
	is.Equal(len(view.Board), 6)
}

func TestMiddleHoles(t *testing.T) {
	is := is.New(t)
	b := board.Board{
		{X: 0, Y: 0}: tile(tm.Red, tm.X),
		{X: 1, Y: 0}: tile(tm.Red, tm.Circle),
		{X: 2, Y: 0}: tile(tm.Red, tm.Square),
	}
	hand := tm.Hand{tile(tm.Blue, tm.X), tile(tm.Blue, tm.Square)}
	_, v := ScoreMiddle(config.DefaultLimits(), b, hand, move.MustPlays(p(0, 0, 1), p(1, 2, 1)))
	is.Equal(v.Kinds(), []ErrorKind{Holes})
	is.Equal(v.Get(Holes).Ranges, []board.Range{{First: C{X: 1, Y: 1}, Last: C{X: 1, Y: 1}}})
}

func TestMiddleHoleFilledByBoard(t *testing.T) {
	is := is.New(t)
	b := board.Board{
		{X: 0, Y: 0}: tile(tm.Red, tm.X),
		{X: 1, Y: 0}: tile(tm.Red, tm.Circle),
	}
	hand := tm.Hand{tile(tm.Red, tm.Square), tile(tm.Green, tm.Diamond), tile(tm.Red, tm.Clover)}
	pts, v := ScoreMiddle(config.DefaultLimits(), b, hand, move.MustPlays(p(0, -1, 0), p(2, 2, 0)))
	is.Equal(len(v), 0)
	is.Equal(pts, 4)
}

func TestMiddleDuplicates(t *testing.T) {
	is := is.New(t)
	b := board.Board{
		{X: 0, Y: 0}: tile(tm.Red, tm.X),
		{X: 1, Y: 0}: tile(tm.Red, tm.Circle),
	}
	_, v := ScoreMiddle(config.DefaultLimits(), b, tm.Hand{tile(tm.Red, tm.X)}, move.MustPlays(p(0, 2, 0)))
	is.Equal(v.Kinds(), []ErrorKind{Duplicates})
	is.Equal(v.Get(Duplicates).Groups, [][]C{{{X: 0, Y: 0}, {X: 2, Y: 0}}})
}

func TestMiddleNoLegalLines(t *testing.T) {
	is := is.New(t)
	b := board.Board{{X: 0, Y: 0}: tile(tm.Red, tm.X)}
	hand := tm.Hand{tile(tm.Red, tm.Circle), tile(tm.Blue, tm.X)}
	_, v := ScoreMiddle(config.DefaultLimits(), b, hand, move.MustPlays(p(0, 1, 0), p(1, 0, 1)))
	is.Equal(v.Kinds(), []ErrorKind{NoLegalLines})
}

func TestMiddleEndsOnEmptyHand(t *testing.T) {
	is := is.New(t)
	s := middleWith(board.Board{{X: 0, Y: 0}: tile(tm.Red, tm.X)}, nil,
		tm.Hand{tile(tm.Red, tm.Circle)},
		tm.Hand{tile(tm.Blue, tm.Diamond)})

	next, err := s.Play(move.MustPlays(p(0, 1, 0)))
	is.NoErr(err)
	ts, ok := next.(*TerminalState)
	is.True(ok)
	is.Equal(ts.Phase(), PhaseTerminal)
	is.Equal(ts.Points(), []int{2 + LastPlayBonus, 0})
	is.Equal(ts.Winners(), []int{0})
	is.Equal(ts.PoolLen(), 0)
	h, _ := ts.Hand(1)
	is.Equal(h, tm.Hand{tile(tm.Blue, tm.Diamond)})
	is.True(s.Consumed())
}

func TestMiddleEndsOnDeadlock(t *testing.T) {
	is := is.New(t)
	b := board.Board{}
	for x := 0; x < tm.NumColors; x++ {
		for y := 0; y < tm.NumShapes; y++ {
			b[C{X: x, Y: y}] = tm.Tile{Color: tm.Color(x), Shape: tm.Shape(y)}
		}
	}
	delete(b, C{X: 5, Y: 5})
	s := middleWith(b, []tm.Tile{tile(tm.Green, tm.Circle)},
		tm.Hand{tile(tm.Purple, tm.X), tile(tm.Red, tm.X)},
		tm.Hand{tile(tm.Blue, tm.Diamond)})

	next, err := s.Play(move.MustPlays(p(0, 5, 5)))
	is.NoErr(err)
	ts, ok := next.(*TerminalState)
	is.True(ok)
	is.Equal(ts.Points(), []int{24 + LastPlayBonus, 0})
	is.Equal(len(ts.Board()), tm.NumTiles)
	h, _ := ts.Hand(0)
	is.Equal(h, tm.Hand{tile(tm.Red, tm.X), tile(tm.Green, tm.Circle)})

	view := ts.View()
	is.Equal(len(view.Hands), 2)
}

func TestMiddleConsumed(t *testing.T) {
	is := is.New(t)
	s := middleWith(board.Board{{X: 0, Y: 0}: tile(tm.Red, tm.X)}, []tm.Tile{tile(tm.Green, tm.Clover)},
		tm.Hand{tile(tm.Red, tm.Circle), tile(tm.Blue, tm.Square)},
		tm.Hand{tile(tm.Blue, tm.Diamond)})

	_, err := s.Play(move.MustPlays(p(0, 1, 0)))
	is.NoErr(err)
	is.True(s.Consumed())

	_, err = s.Play(move.MustPlays(p(0, 2, 0)))
	is.True(errors.Is(err, ErrStateConsumed))
	_, err = s.Exchange(move.MustExchanges(0))
	is.True(errors.Is(err, ErrStateConsumed))
	is.Equal(s.View(), MiddleView{})
}

func TestMiddleRejectionLeavesState(t *testing.T) {
	is := is.New(t)
	s := middleWith(board.Board{{X: 0, Y: 0}: tile(tm.Red, tm.X)}, []tm.Tile{tile(tm.Green, tm.Clover)},
		tm.Hand{tile(tm.Red, tm.X)},
		tm.Hand{tile(tm.Blue, tm.Diamond)})
	before := s.View()

	_, err := s.Play(move.MustPlays(p(0, 1, 0)))
	is.True(errors.Is(err, &RuleError{Kind: Duplicates}))
	is.Equal(s.View(), before)
	is.True(!s.Consumed())
}
