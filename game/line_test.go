package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matryer/is"

	"github.com/linematch/linematch/board"
	tm "github.com/linematch/linematch/tilemapping"
)

type C = board.Coordinate

func tile(c tm.Color, s tm.Shape) tm.Tile {
	return tm.Tile{Color: c, Shape: s}
}

func TestCheckLineDuplicates(t *testing.T) {
	first := tile(tm.Green, tm.Square)
	second := tile(tm.Green, tm.X)
	third := tile(tm.Green, tm.Circle)
	line := board.Board{
		{X: 0, Y: 0}: first,
		{X: 0, Y: 1}: second,
		{X: 0, Y: 2}: third,
		{X: 0, Y: 3}: second,
		{X: 0, Y: 4}: first,
		{X: 0, Y: 5}: second,
		{X: 0, Y: 6}: third,
	}
	_, v := CheckLine(line)
	want := [][]C{
		{{X: 0, Y: 0}, {X: 0, Y: 4}},
		{{X: 0, Y: 1}, {X: 0, Y: 3}, {X: 0, Y: 5}},
		{{X: 0, Y: 2}, {X: 0, Y: 6}},
	}
	if diff := cmp.Diff(want, v.Get(Duplicates).Groups); diff != "" {
		t.Errorf("duplicates mismatch (-want +got):\n%s", diff)
	}
	if v.Has(MultipleMatching) {
		t.Errorf("unexpected multiple matching: %v", v.Get(MultipleMatching))
	}
}

func TestCheckLineMultipleMatching(t *testing.T) {
	line := board.Board{
		{X: 0, Y: 0}: tile(tm.Green, tm.Square),
		{X: 0, Y: 1}: tile(tm.Red, tm.X),
		{X: 0, Y: 2}: tile(tm.Red, tm.Clover),
		{X: 0, Y: 3}: tile(tm.Yellow, tm.X),
		{X: 0, Y: 4}: tile(tm.Green, tm.X),
		{X: 0, Y: 5}: tile(tm.Blue, tm.Diamond),
	}
	pts, v := CheckLine(line)
	if pts != 0 {
		t.Errorf("expected no points, got %d", pts)
	}
	want := [][]C{
		{{X: 0, Y: 0}, {X: 0, Y: 4}},
		{{X: 0, Y: 1}, {X: 0, Y: 2}},
		{{X: 0, Y: 1}, {X: 0, Y: 3}, {X: 0, Y: 4}},
		{{X: 0, Y: 5}},
	}
	if diff := cmp.Diff(want, v.Get(MultipleMatching).Groups); diff != "" {
		t.Errorf("multiple matching mismatch (-want +got):\n%s", diff)
	}
	if v.Has(Duplicates) {
		t.Errorf("unexpected duplicates: %v", v.Get(Duplicates))
	}
}

func TestCheckLineDuplicatesAndMultipleMatching(t *testing.T) {
	is := is.New(t)
	line := board.Board{
		{X: 0, Y: 0}: tile(tm.Purple, tm.Starburst),
		{X: 0, Y: 1}: tile(tm.Purple, tm.Starburst),
		{X: 0, Y: 2}: tile(tm.Red, tm.X),
	}
	_, v := CheckLine(line)
	is.Equal(v.Kinds(), []ErrorKind{Duplicates, MultipleMatching})
	is.Equal(v.Get(Duplicates).Groups, [][]C{{{X: 0, Y: 0}, {X: 0, Y: 1}}})
	is.Equal(v.Get(MultipleMatching).Groups, [][]C{{{X: 0, Y: 0}, {X: 0, Y: 1}}, {{X: 0, Y: 2}}})
}

func TestCheckLineScores(t *testing.T) {
	is := is.New(t)

	pts, v := CheckLine(board.Board{})
	is.Equal(len(v), 0)
	is.Equal(pts, 0)

	pts, v = CheckLine(board.Board{{X: 3, Y: 3}: tile(tm.Blue, tm.Clover)})
	is.Equal(len(v), 0)
	is.Equal(pts, 1)

	pts, v = CheckLine(board.Board{
		{X: 0, Y: 0}: tile(tm.Orange, tm.Starburst),
		{X: 0, Y: 1}: tile(tm.Blue, tm.Starburst),
		{X: 0, Y: 2}: tile(tm.Purple, tm.Starburst),
	})
	is.Equal(len(v), 0)
	is.Equal(pts, 3)
}

func TestCheckLineFullMatch(t *testing.T) {
	is := is.New(t)
	for _, color := range tm.Colors() {
		line := board.Board{}
		for i, shape := range tm.Shapes() {
			line[C{X: i, Y: 0}] = tile(color, shape)
		}
		pts, v := CheckLine(line)
		is.Equal(len(v), 0)
		is.Equal(pts, tm.NumShapes+FullMatchBonus)
	}
	for _, shape := range tm.Shapes() {
		line := board.Board{}
		for i, color := range tm.Colors() {
			line[C{X: 0, Y: i}] = tile(color, shape)
		}
		pts, v := CheckLine(line)
		is.Equal(len(v), 0)
		is.Equal(pts, tm.NumColors+FullMatchBonus)
	}
}

func TestCheckLinePartialColorLine(t *testing.T) {
	is := is.New(t)
	line := board.Board{}
	shapes := tm.Shapes()
	for i, shape := range shapes[:5] {
		line[C{X: i, Y: 0}] = tile(tm.Yellow, shape)
	}
	pts, v := CheckLine(line)
	is.Equal(len(v), 0)
	is.Equal(pts, 5)
}
