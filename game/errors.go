package game

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/linematch/linematch/board"
	"github.com/linematch/linematch/move"
)

// ErrStateConsumed is returned when a state that already advanced the game
// is used again.
var ErrStateConsumed = errors.New("game state has already been consumed")

// ErrorKind names one broken rule.
type ErrorKind uint8

const (
	EmptyPlays ErrorKind = iota
	IndexesOutOfBounds
	CoordinatesOutOfBounds
	CoordinatesOccupied
	NotConnected
	OriginOmitted
	NotMaxMatching
	NoLegalPlays
	NoLegalLines
	Holes
	Duplicates
	MultipleMatching
	HasEnded
	EmptyExchanges
	NoLegalTiles
	NotEnoughTiles

	// Kinds only reported while setting up a game.
	EmptyPlayers
	EmptyPool
	EmptyHands
	TooManyTiles
	CurrentPlayerNotMaxMatching
)

var kindNames = map[ErrorKind]string{
	EmptyPlays:                  "empty plays",
	IndexesOutOfBounds:          "indexes out of bounds",
	CoordinatesOutOfBounds:      "coordinates out of bounds",
	CoordinatesOccupied:         "coordinates occupied",
	NotConnected:                "not connected",
	OriginOmitted:               "origin omitted",
	NotMaxMatching:              "not max matching",
	NoLegalPlays:                "no legal plays",
	NoLegalLines:                "no legal lines",
	Holes:                       "holes",
	Duplicates:                  "duplicates",
	MultipleMatching:            "multiple matching",
	HasEnded:                    "has ended",
	EmptyExchanges:              "empty exchanges",
	NoLegalTiles:                "no legal tiles",
	NotEnoughTiles:              "not enough tiles",
	EmptyPlayers:                "empty players",
	EmptyPool:                   "empty pool",
	EmptyHands:                  "empty hands",
	TooManyTiles:                "too many tiles",
	CurrentPlayerNotMaxMatching: "current player not max matching",
}

func (k ErrorKind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// A RuleError is one broken rule together with what broke it. Only the
// fields that make sense for Kind are set.
type RuleError struct {
	Kind ErrorKind
	// Plays that broke the rule: bad indexes, bad or occupied coordinates,
	// or placements that do not reach the board.
	Plays move.Plays
	// Indexes are exchange indexes past the end of the hand, or the
	// players the first player had to be chosen from.
	Indexes []int
	// Combinations are the hand index sets an opening play must use.
	Combinations [][]int
	// Ranges are the gaps of a line.
	Ranges []board.Range
	// Groups are sets of line cells holding equal tiles, or the matching
	// groups of a line that mixes more than one.
	Groups [][]board.Coordinate
	// Requested and Available are tile counts. Player is the selected
	// first player.
	Requested int
	Available int
	HandLen   int
	Player    int
}

func (e *RuleError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	switch {
	case !e.Plays.IsEmpty():
		fmt.Fprintf(&sb, ": %v", e.Plays)
	case len(e.Combinations) > 0:
		fmt.Fprintf(&sb, ": expected one of %v", e.Combinations)
	case len(e.Ranges) > 0:
		fmt.Fprintf(&sb, ": %v", e.Ranges)
	case len(e.Groups) > 0:
		fmt.Fprintf(&sb, ": %v", e.Groups)
	case len(e.Indexes) > 0:
		fmt.Fprintf(&sb, ": %v", e.Indexes)
	}
	if e.Requested > 0 || e.Available > 0 {
		fmt.Fprintf(&sb, " (requested %d, available %d)", e.Requested, e.Available)
	}
	return sb.String()
}

// Is makes errors.Is match on kind.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Kind == e.Kind
}

// Violations is every rule an action broke, keyed by kind. A nil or empty
// Violations means nothing was broken.
type Violations map[ErrorKind]*RuleError

// add records e, merging its payload into an earlier error of the same
// kind. Several lines of one play can each report duplicates.
func (v Violations) add(e *RuleError) {
	normalize(e)
	prev, ok := v[e.Kind]
	if !ok {
		v[e.Kind] = e
		return
	}
	prev.Groups = mergeGroups(prev.Groups, e.Groups)
	prev.Ranges = lo.Uniq(append(prev.Ranges, e.Ranges...))
	slices.SortFunc(prev.Ranges, compareRanges)
	prev.Combinations = append(prev.Combinations, e.Combinations...)
	prev.Indexes = append(prev.Indexes, e.Indexes...)
}

// merge adds every error of other to v.
func (v Violations) merge(other Violations) {
	for _, k := range other.Kinds() {
		v.add(other[k])
	}
}

func (v Violations) Has(k ErrorKind) bool {
	_, ok := v[k]
	return ok
}

func (v Violations) Get(k ErrorKind) *RuleError {
	return v[k]
}

// Kinds returns the broken rules in declaration order.
func (v Violations) Kinds() []ErrorKind {
	kinds := lo.Keys(v)
	slices.Sort(kinds)
	return kinds
}

func (v Violations) Error() string {
	msgs := lo.Map(v.Kinds(), func(k ErrorKind, _ int) string {
		return v[k].Error()
	})
	return strings.Join(msgs, "; ")
}

// Unwrap exposes every RuleError to errors.Is and errors.As.
func (v Violations) Unwrap() []error {
	return lo.Map(v.Kinds(), func(k ErrorKind, _ int) error {
		return v[k]
	})
}

// orNil returns v as an error, or nil when nothing was broken.
func (v Violations) orNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// AsViolations extracts the Violations from err, if any.
func AsViolations(err error) (Violations, bool) {
	var v Violations
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

func normalize(e *RuleError) {
	for _, g := range e.Groups {
		slices.SortFunc(g, board.Compare)
	}
	slices.SortFunc(e.Groups, compareGroups)
	slices.SortFunc(e.Ranges, compareRanges)
}

func mergeGroups(a, b [][]board.Coordinate) [][]board.Coordinate {
	out := slices.Clone(a)
	for _, g := range b {
		if !slices.ContainsFunc(out, func(o []board.Coordinate) bool { return slices.Equal(o, g) }) {
			out = append(out, g)
		}
	}
	slices.SortFunc(out, compareGroups)
	return out
}

func compareGroups(a, b []board.Coordinate) int {
	return slices.CompareFunc(a, b, board.Compare)
}

func compareRanges(a, b board.Range) int {
	if c := board.Compare(a.First, b.First); c != 0 {
		return c
	}
	return board.Compare(a.Last, b.Last)
}
