package game

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/move"
	"github.com/linematch/linematch/tilemapping"
)

// OpeningState is the game before the first play. The board is empty and
// nobody has scored.
type OpeningState struct {
	limits        config.Limits
	pool          *tilemapping.Pool
	hands         []tilemapping.Hand
	maxMatches    []int
	currentPlayer int
	consumed      bool
}

// NewOpening deals a new game. The opening player is chosen by selector
// among the players whose hands hold the largest max-match; a nil selector
// picks at random. All problems with the setup are reported together.
func NewOpening(limits config.Limits, opts Options, selector FirstPlayerSelector) (*OpeningState, error) {
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}
	if selector == nil {
		selector = RandomFirstPlayer
	}

	v := Violations{}
	if opts.Players <= 0 {
		v.add(&RuleError{Kind: EmptyPlayers})
	}
	if opts.Copies <= 0 {
		v.add(&RuleError{Kind: EmptyPool})
	}
	if opts.HandLen <= 0 {
		v.add(&RuleError{Kind: EmptyHands})
	}
	requested := max(opts.Players, 0) * max(opts.HandLen, 0)
	available := max(opts.Copies, 0) * tilemapping.NumTiles
	if requested > available {
		v.add(&RuleError{Kind: NotEnoughTiles, Requested: requested, Available: available})
	}
	if available > limits.TileLimit {
		v.add(&RuleError{Kind: TooManyTiles, Requested: available, Available: limits.TileLimit})
	}
	if len(v) > 0 {
		return nil, v
	}

	pool := tilemapping.NewPool(opts.Copies)
	hands := make([]tilemapping.Hand, opts.Players, max(opts.Players, limits.PlayerCapacity))
	maxMatches := make([]int, opts.Players)
	best := 0
	for i := range hands {
		hand := make(tilemapping.Hand, 0, max(opts.HandLen, limits.HandCapacity))
		hands[i] = append(hand, pool.DrawAtMost(opts.HandLen)...)
		maxMatches[i] = hands[i].MaxMatch()
		best = max(best, maxMatches[i])
	}
	var candidates []int
	for i, m := range maxMatches {
		if m == best {
			candidates = append(candidates, i)
		}
	}

	first := selector(slices.Clone(candidates))
	if !slices.Contains(candidates, first) {
		v.add(&RuleError{Kind: CurrentPlayerNotMaxMatching, Player: first, Indexes: candidates})
		return nil, v
	}

	log.Debug().Int("players", opts.Players).Int("pool", pool.Len()).
		Ints("max-matches", maxMatches).Int("first", first).Msg("dealt-new-game")

	return &OpeningState{
		limits:        limits,
		pool:          pool,
		hands:         hands,
		maxMatches:    maxMatches,
		currentPlayer: first,
	}, nil
}

// NewOpeningFromHands builds an opening state from known hands and pool,
// for setting up positions. The first player is taken as given.
func NewOpeningFromHands(limits config.Limits, pool []tilemapping.Tile,
	hands []tilemapping.Hand, first int) (*OpeningState, error) {

	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}
	if len(hands) == 0 {
		return nil, Violations{EmptyPlayers: &RuleError{Kind: EmptyPlayers}}
	}
	if first < 0 || first >= len(hands) {
		return nil, fmt.Errorf("first player %d out of range", first)
	}
	s := &OpeningState{
		limits:        limits,
		pool:          tilemapping.PoolFromTiles(slices.Clone(pool)),
		hands:         make([]tilemapping.Hand, len(hands)),
		maxMatches:    make([]int, len(hands)),
		currentPlayer: first,
	}
	for i, h := range hands {
		s.hands[i] = h.Copy()
		s.maxMatches[i] = h.MaxMatch()
	}
	return s, nil
}

func (s *OpeningState) Phase() Phase    { return PhaseOpening }
func (s *OpeningState) Consumed() bool  { return s.consumed }
func (s *OpeningState) NumPlayers() int { return len(s.hands) }

func (s *OpeningState) CurrentPlayer() int {
	return s.currentPlayer
}

func (s *OpeningState) Limits() config.Limits {
	return s.limits
}

// Hand returns a copy of the hand of player.
func (s *OpeningState) Hand(player int) (tilemapping.Hand, bool) {
	if player < 0 || player >= len(s.hands) {
		return nil, false
	}
	return s.hands[player].Copy(), true
}

// Check validates plays for the current player without changing anything.
func (s *OpeningState) Check(plays move.Plays) (int, error) {
	if s.consumed {
		return 0, ErrStateConsumed
	}
	pts, v := ScoreOpening(s.limits, s.hands[s.currentPlayer], plays)
	return pts, v.orNil()
}

// Play makes the opening play for the current player. On success the
// played tiles go on the board at their coordinates, the hand is refilled
// from the pool, the player scores and the turn passes on. s is consumed.
func (s *OpeningState) Play(plays move.Plays) (*MiddleState, error) {
	pts, err := s.Check(plays)
	if err != nil {
		return nil, err
	}

	player := s.currentPlayer
	b := placed(s.hands[player], plays)
	hand := &s.hands[player]
	removed := hand.RemoveIndexes(plays.Indexes())
	*hand = append(*hand, s.pool.DrawAtMost(len(removed))...)

	points := make([]int, len(s.hands))
	points[player] = pts

	log.Debug().Int("player", player).Int("score", pts).
		Str("plays", plays.String()).Msg("opening-play")

	next := &MiddleState{
		limits:        s.limits,
		pool:          s.pool,
		board:         b,
		points:        points,
		hands:         s.hands,
		currentPlayer: advance(player, len(s.hands)),
	}
	s.consume()
	return next, nil
}

func (s *OpeningState) consume() {
	s.consumed = true
	s.pool = nil
	s.hands = nil
	s.maxMatches = nil
}
