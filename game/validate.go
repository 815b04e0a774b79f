package game

import (
	"github.com/linematch/linematch/board"
	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/move"
	"github.com/linematch/linematch/tilemapping"
)

// Origin is the cell every opening play has to cover.
var Origin = board.Coordinate{}

// ScoreOpening checks plays as the opening play of hand and returns the
// points it earns. Every broken rule is reported together; the only checks
// skipped are those that have nothing left to look at.
func ScoreOpening(limits config.Limits, hand tilemapping.Hand, plays move.Plays) (int, Violations) {
	v := Violations{}
	if plays.IsEmpty() {
		v.add(&RuleError{Kind: EmptyPlays})
		return 0, v
	}

	legal, badIndexes := partitionIndexes(plays, len(hand))
	if !badIndexes.IsEmpty() {
		v.add(&RuleError{Kind: IndexesOutOfBounds, Plays: badIndexes, HandLen: len(hand)})
	}

	inBounds, outOfBounds := partitionBounds(plays, limits.CoordinateLimit)
	if !outOfBounds.IsEmpty() {
		v.add(&RuleError{Kind: CoordinatesOutOfBounds, Plays: outOfBounds})
	}

	candidates, _ := partitionIndexes(inBounds, len(hand))
	if !candidates.IsEmpty() && !candidates.Covers(Origin) {
		v.add(&RuleError{Kind: OriginOmitted})
	}

	maxMatch := hand.MaxMatch()
	if legal.Len() != maxMatch || !isMatchingSet(hand, legal.Indexes()) {
		v.add(&RuleError{
			Kind:         NotMaxMatching,
			Combinations: MatchingCombinations(hand, maxMatch),
		})
	}

	if candidates.IsEmpty() {
		v.add(&RuleError{Kind: NoLegalPlays})
		return 0, v
	}

	coords := candidates.Coordinates()
	dir, ok := lineDirection(coords)
	if !ok {
		v.add(&RuleError{Kind: NoLegalLines})
		return 0, v
	}

	line := placed(hand, candidates)
	addHoles(v, limits, dir, coords, line.Occupied)

	pts, lineErrs := CheckLine(line)
	v.merge(lineErrs)
	if len(v) > 0 {
		return 0, v
	}
	return pts, nil
}

// ScoreMiddle checks plays as a play of hand onto b and returns the points
// it earns: the line the tiles are placed in plus every line crossing it
// through a placed tile. Lines of a single tile score nothing.
func ScoreMiddle(limits config.Limits, b board.Board, hand tilemapping.Hand, plays move.Plays) (int, Violations) {
	v := Violations{}
	if plays.IsEmpty() {
		v.add(&RuleError{Kind: EmptyPlays})
		return 0, v
	}

	_, badIndexes := partitionIndexes(plays, len(hand))
	if !badIndexes.IsEmpty() {
		v.add(&RuleError{Kind: IndexesOutOfBounds, Plays: badIndexes, HandLen: len(hand)})
	}

	inBounds, outOfBounds := partitionBounds(plays, limits.CoordinateLimit)
	if !outOfBounds.IsEmpty() {
		v.add(&RuleError{Kind: CoordinatesOutOfBounds, Plays: outOfBounds})
	}

	unoccupied, occupied := inBounds.Partition(func(p move.Play) bool { return !b.Occupied(p.Coord) })
	if !occupied.IsEmpty() {
		v.add(&RuleError{Kind: CoordinatesOccupied, Plays: occupied})
	}

	connectedCoords, _ := board.PartitionConnected(b, unoccupied.Coordinates())
	isConnected := make(map[board.Coordinate]bool, len(connectedCoords))
	for _, c := range connectedCoords {
		isConnected[c] = true
	}
	connected, notConnected := unoccupied.Partition(func(p move.Play) bool { return isConnected[p.Coord] })
	if !notConnected.IsEmpty() {
		v.add(&RuleError{Kind: NotConnected, Plays: notConnected})
	}

	candidates, _ := partitionIndexes(connected, len(hand))
	if candidates.IsEmpty() {
		v.add(&RuleError{Kind: NoLegalPlays})
		return 0, v
	}

	coords := candidates.Coordinates()
	dir, ok := lineDirection(coords)
	if !ok {
		v.add(&RuleError{Kind: NoLegalLines})
		return 0, v
	}

	extra := placed(hand, candidates)
	addHoles(v, limits, dir, coords, func(c board.Coordinate) bool {
		return b.Occupied(c) || extra.Occupied(c)
	})

	lines := []board.Board{b.LineThrough(coords[0], dir, extra)}
	for _, c := range coords {
		lines = append(lines, b.LineThrough(c, dir.Perpendicular(), board.Board{c: extra[c]}))
	}

	total := 0
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		pts, lineErrs := CheckLine(line)
		v.merge(lineErrs)
		total += pts
	}
	if len(v) > 0 {
		return 0, v
	}
	return total, nil
}

func partitionIndexes(plays move.Plays, handLen int) (legal, illegal move.Plays) {
	return plays.Partition(func(p move.Play) bool { return p.Index < handLen })
}

func partitionBounds(plays move.Plays, limit int) (in, out move.Plays) {
	return plays.Partition(func(p move.Play) bool { return board.InBounds(p.Coord, limit) })
}

// lineDirection returns the direction of the line coords lie on. A single
// cell counts as horizontal.
func lineDirection(coords []board.Coordinate) (board.BoardDirection, bool) {
	lo, hi, ok := board.Bounds(coords)
	switch {
	case !ok:
		return 0, false
	case lo.Y == hi.Y:
		return board.HorizontalDirection, true
	case lo.X == hi.X:
		return board.VerticalDirection, true
	}
	return 0, false
}

// placed maps every play to the hand tile it puts down.
func placed(hand tilemapping.Hand, plays move.Plays) board.Board {
	line := make(board.Board, plays.Len())
	for _, p := range plays.All() {
		line[p.Coord] = hand[p.Index]
	}
	return line
}

func addHoles(v Violations, limits config.Limits, dir board.BoardDirection,
	coords []board.Coordinate, occupied func(board.Coordinate) bool) {

	lo, hi, _ := board.Bounds(coords)
	start, _ := board.NearestToOrigin(coords)
	holes := board.FindHoles(dir, start.Fixed(dir), start.Along(dir),
		lo.Along(dir), hi.Along(dir), occupied, limits.HolesLimit)
	if len(holes) > 0 {
		v.add(&RuleError{Kind: Holes, Ranges: holes})
	}
}
