package game

import (
	"errors"
	"slices"
	"testing"

	"github.com/matryer/is"

	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/move"
	tm "github.com/linematch/linematch/tilemapping"
)

func p(idx, x, y int) move.Play {
	return move.Play{Index: idx, Coord: C{X: x, Y: y}}
}

func openingWith(t *testing.T, limits config.Limits, hand tm.Hand, pool []tm.Tile) *OpeningState {
	t.Helper()
	s, err := NewOpeningFromHands(limits, pool,
		[]tm.Hand{hand, {tile(tm.Blue, tm.Diamond)}}, 0)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func violationsOf(t *testing.T, err error) Violations {
	t.Helper()
	v, ok := AsViolations(err)
	if !ok {
		t.Fatalf("expected violations, got %v", err)
	}
	return v
}

func TestNewOpeningErrors(t *testing.T) {
	limits := config.DefaultLimits()
	testCases := []struct {
		name  string
		opts  Options
		kinds []ErrorKind
	}{
		{"empty players", Options{0, 3, 6}, []ErrorKind{EmptyPlayers}},
		{"empty pool", Options{1, 0, 1}, []ErrorKind{NotEnoughTiles, EmptyPool}},
		{"empty hands", Options{1, 3, 0}, []ErrorKind{EmptyHands}},
		{"everything empty", Options{0, 0, 0}, []ErrorKind{EmptyPlayers, EmptyPool, EmptyHands}},
		{"not enough tiles", Options{10, 2, 20}, []ErrorKind{NotEnoughTiles}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)
			_, err := NewOpening(limits, tc.opts, nil)
			v := violationsOf(t, err)
			is.Equal(v.Kinds(), tc.kinds)
		})
	}

	is := is.New(t)
	_, err := NewOpening(limits, Options{10, 2, 20}, nil)
	nete := violationsOf(t, err).Get(NotEnoughTiles)
	is.Equal(nete.Requested, 200)
	is.Equal(nete.Available, 72)
}

func TestNewOpeningTooManyTiles(t *testing.T) {
	is := is.New(t)
	limits := config.DefaultLimits()
	limits.TileLimit = 36
	_, err := NewOpening(limits, DefaultOptions(2), nil)
	v := violationsOf(t, err)
	is.Equal(v.Kinds(), []ErrorKind{TooManyTiles})
}

func TestNewOpeningBadLimits(t *testing.T) {
	is := is.New(t)
	limits := config.DefaultLimits()
	limits.CoordinateLimit = 0
	_, err := NewOpening(limits, DefaultOptions(2), nil)
	is.True(err != nil)
	_, ok := AsViolations(err)
	is.True(!ok)
}

func TestNewOpeningSelectorMustPickCandidate(t *testing.T) {
	is := is.New(t)
	_, err := NewOpening(config.DefaultLimits(), DefaultOptions(2), func([]int) int { return -1 })
	v := violationsOf(t, err)
	is.Equal(v.Kinds(), []ErrorKind{CurrentPlayerNotMaxMatching})
	is.Equal(v.Get(CurrentPlayerNotMaxMatching).Player, -1)
}

func TestNewOpeningDeals(t *testing.T) {
	is := is.New(t)
	var offered []int
	s, err := NewOpening(config.DefaultLimits(), DefaultOptions(4), func(c []int) int {
		offered = c
		return c[len(c)-1]
	})
	is.NoErr(err)
	view := s.View()
	is.Equal(view.PoolLen, 3*tm.NumTiles-4*6)
	is.Equal(view.HandLens, []int{6, 6, 6, 6})
	is.Equal(s.NumPlayers(), 4)
	is.Equal(s.Phase(), PhaseOpening)

	best := slices.Max(view.MaxMatches)
	for i := 0; i < 4; i++ {
		h, ok := s.Hand(i)
		is.True(ok)
		is.Equal(h.MaxMatch(), view.MaxMatches[i])
		is.Equal(slices.Contains(offered, i), view.MaxMatches[i] == best)
	}
	is.Equal(view.CurrentPlayer, offered[len(offered)-1])
	_, ok := s.Hand(4)
	is.True(!ok)
}

func TestOpeningPlayExample(t *testing.T) {
	is := is.New(t)
	hand := tm.Hand{tile(tm.Red, tm.X), tile(tm.Red, tm.Square), tile(tm.Red, tm.Circle)}
	pool := []tm.Tile{tile(tm.Green, tm.X), tile(tm.Yellow, tm.Clover), tile(tm.Blue, tm.Circle), tile(tm.Purple, tm.Starburst)}
	s := openingWith(t, config.DefaultLimits(), hand, pool)

	next, err := s.Play(move.MustPlays(p(0, 0, 0), p(1, 0, 1), p(2, 0, 2)))
	is.NoErr(err)
	view := next.View()
	is.Equal(view.Points, []int{3, 0})
	is.Equal(view.CurrentPlayer, 1)
	is.Equal(view.PoolLen, 1)
	is.Equal(view.HandLens, []int{3, 1})
	is.Equal(len(view.Board), 3)
	is.Equal(view.Board[C{X: 0, Y: 1}], tile(tm.Red, tm.Square))

	h, _ := next.Hand(0)
	is.Equal(h, tm.Hand{tile(tm.Yellow, tm.Clover), tile(tm.Blue, tm.Circle), tile(tm.Purple, tm.Starburst)})
}

func TestOpeningNotMaxMatching(t *testing.T) {
	is := is.New(t)
	hand := tm.Hand{tile(tm.Orange, tm.Starburst), tile(tm.Orange, tm.X), tile(tm.Purple, tm.X)}
	s := openingWith(t, config.DefaultLimits(), hand, nil)

	_, err := s.Play(move.MustPlays(p(0, 0, 0)))
	v := violationsOf(t, err)
	is.Equal(v.Kinds(), []ErrorKind{NotMaxMatching})
	is.Equal(v.Get(NotMaxMatching).Combinations, [][]int{{0, 1}, {1, 2}})
	is.True(errors.Is(err, &RuleError{Kind: NotMaxMatching}))
}

func TestOpeningAccumulatesAll(t *testing.T) {
	is := is.New(t)
	hand := tm.Hand{tile(tm.Red, tm.X), tile(tm.Red, tm.Square), tile(tm.Red, tm.Circle)}
	s := openingWith(t, config.DefaultLimits(), hand, nil)

	_, err := s.Play(move.MustPlays(p(0, 1, 0), p(1, 1, 2), p(7, 0, 0)))
	v := violationsOf(t, err)
	is.Equal(v.Kinds(), []ErrorKind{IndexesOutOfBounds, OriginOmitted, NotMaxMatching, Holes})
	is.Equal(v.Get(IndexesOutOfBounds).Plays.Indexes(), []int{7})
	is.Equal(v.Get(NotMaxMatching).Combinations, [][]int{{0, 1, 2}})
	is.Equal(len(v.Get(Holes).Ranges), 1)
	is.Equal(v.Get(Holes).Ranges[0].First, C{X: 1, Y: 1})
	is.Equal(v.Get(Holes).Ranges[0].Last, C{X: 1, Y: 1})
}

func TestOpeningNoLegalPlays(t *testing.T) {
	is := is.New(t)
	hand := tm.Hand{tile(tm.Red, tm.X), tile(tm.Red, tm.Square), tile(tm.Red, tm.Circle)}
	s := openingWith(t, config.DefaultLimits(), hand, nil)

	_, err := s.Play(move.MustPlays(p(5, 0, 0)))
	v := violationsOf(t, err)
	is.Equal(v.Kinds(), []ErrorKind{IndexesOutOfBounds, NotMaxMatching, NoLegalPlays})
}

func TestOpeningEmptyPlays(t *testing.T) {
	is := is.New(t)
	s := openingWith(t, config.DefaultLimits(), tm.Hand{tile(tm.Red, tm.X)}, nil)
	_, err := s.Play(move.Plays{})
	v := violationsOf(t, err)
	is.Equal(v.Kinds(), []ErrorKind{EmptyPlays})
}

func TestOpeningNoLegalLines(t *testing.T) {
	is := is.New(t)
	hand := tm.Hand{tile(tm.Red, tm.X), tile(tm.Red, tm.Square), tile(tm.Red, tm.Circle)}
	s := openingWith(t, config.DefaultLimits(), hand, nil)
	_, err := s.Play(move.MustPlays(p(0, 0, 0), p(1, 1, 1), p(2, 2, 2)))
	v := violationsOf(t, err)
	is.Equal(v.Kinds(), []ErrorKind{NoLegalLines})
}

func TestOpeningCoordinatesOutOfBounds(t *testing.T) {
	is := is.New(t)
	limits := config.DefaultLimits()
	limits.CoordinateLimit = 5
	hand := tm.Hand{tile(tm.Red, tm.X), tile(tm.Red, tm.Square), tile(tm.Red, tm.Circle)}
	s := openingWith(t, limits, hand, nil)
	_, err := s.Play(move.MustPlays(p(0, 0, 0), p(1, 0, 1), p(2, 0, 5)))
	v := violationsOf(t, err)
	is.Equal(v.Kinds(), []ErrorKind{CoordinatesOutOfBounds})
	is.Equal(v.Get(CoordinatesOutOfBounds).Plays.Coordinates(), []C{{X: 0, Y: 5}})
}

func TestOpeningDuplicates(t *testing.T) {
	is := is.New(t)
	hand := tm.Hand{tile(tm.Red, tm.X), tile(tm.Red, tm.X), tile(tm.Red, tm.Circle)}
	s := openingWith(t, config.DefaultLimits(), hand, nil)
	_, err := s.Play(move.MustPlays(p(0, 0, 0), p(1, 1, 0)))
	v := violationsOf(t, err)
	is.Equal(v.Kinds(), []ErrorKind{NotMaxMatching, Duplicates})
	is.Equal(v.Get(NotMaxMatching).Combinations, [][]int{{0, 2}})
	is.Equal(v.Get(Duplicates).Groups, [][]C{{{X: 0, Y: 0}, {X: 1, Y: 0}}})
}

func TestOpeningHolesDisabled(t *testing.T) {
	is := is.New(t)
	limits := config.DefaultLimits()
	limits.HolesLimit = 0
	hand := tm.Hand{tile(tm.Red, tm.X), tile(tm.Red, tm.Square)}
	s := openingWith(t, limits, hand, nil)
	next, err := s.Play(move.MustPlays(p(0, 0, 0), p(1, 0, 2)))
	is.NoErr(err)
	is.Equal(next.View().Points[0], 2)
}

func TestOpeningRejectionIsIdempotent(t *testing.T) {
	is := is.New(t)
	hand := tm.Hand{tile(tm.Red, tm.X), tile(tm.Red, tm.Square), tile(tm.Red, tm.Circle)}
	pool := []tm.Tile{tile(tm.Green, tm.X)}
	s := openingWith(t, config.DefaultLimits(), hand, pool)
	before := s.View()
	plays := move.MustPlays(p(0, 1, 0), p(1, 1, 2), p(7, 0, 0))

	_, err1 := s.Play(plays)
	_, err2 := s.Play(plays)
	is.Equal(violationsOf(t, err1), violationsOf(t, err2))
	is.Equal(s.View(), before)
	h, _ := s.Hand(0)
	is.Equal(h, hand)
	is.True(!s.Consumed())
}

func TestOpeningConsumed(t *testing.T) {
	is := is.New(t)
	hand := tm.Hand{tile(tm.Red, tm.X)}
	s := openingWith(t, config.DefaultLimits(), hand, nil)
	_, err := s.Play(move.MustPlays(p(0, 0, 0)))
	is.NoErr(err)
	is.True(s.Consumed())

	_, err = s.Play(move.MustPlays(p(0, 0, 0)))
	is.True(errors.Is(err, ErrStateConsumed))
	_, err = s.Check(move.MustPlays(p(0, 0, 0)))
	is.True(errors.Is(err, ErrStateConsumed))
	is.Equal(s.View(), OpeningView{})
}
