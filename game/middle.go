package game

import (
	"maps"

	"github.com/rs/zerolog/log"

	"github.com/linematch/linematch/board"
	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/move"
	"github.com/linematch/linematch/tilemapping"
)

// MiddleState is the game between the opening play and the end.
type MiddleState struct {
	limits        config.Limits
	pool          *tilemapping.Pool
	board         board.Board
	points        []int
	hands         []tilemapping.Hand
	currentPlayer int
	consumed      bool
}

func (s *MiddleState) Phase() Phase    { return PhaseMiddle }
func (s *MiddleState) Consumed() bool  { return s.consumed }
func (s *MiddleState) NumPlayers() int { return len(s.hands) }

func (s *MiddleState) CurrentPlayer() int {
	return s.currentPlayer
}

func (s *MiddleState) Limits() config.Limits {
	return s.limits
}

// Board returns a copy of the board.
func (s *MiddleState) Board() board.Board {
	return s.board.Copy()
}

func (s *MiddleState) PoolLen() int {
	if s.pool == nil {
		return 0
	}
	return s.pool.Len()
}

// Hand returns a copy of the hand of player.
func (s *MiddleState) Hand(player int) (tilemapping.Hand, bool) {
	if player < 0 || player >= len(s.hands) {
		return nil, false
	}
	return s.hands[player].Copy(), true
}

// Check validates plays for the current player without changing anything.
func (s *MiddleState) Check(plays move.Plays) (int, error) {
	if s.consumed {
		return 0, ErrStateConsumed
	}
	pts, v := ScoreMiddle(s.limits, s.board, s.hands[s.currentPlayer], plays)
	return pts, v.orNil()
}

// Play places tiles for the current player. The result is a *MiddleState,
// or a *TerminalState when the play empties the player's hand or fills the
// board to a deadlock; the ending play earns LastPlayBonus on top. s is
// consumed on success.
func (s *MiddleState) Play(plays move.Plays) (State, error) {
	pts, err := s.Check(plays)
	if err != nil {
		return nil, err
	}

	player := s.currentPlayer
	maps.Copy(s.board, placed(s.hands[player], plays))
	hand := &s.hands[player]
	removed := hand.RemoveIndexes(plays.Indexes())
	*hand = append(*hand, s.pool.DrawAtMost(len(removed))...)

	if s.hasEnded(player) {
		s.points[player] += pts + LastPlayBonus
		log.Debug().Int("player", player).Int("score", pts).
			Str("plays", plays.String()).Ints("points", s.points).Msg("final-play")
		next := &TerminalState{
			board:   s.board,
			points:  s.points,
			hands:   s.hands,
			poolLen: s.pool.Len(),
		}
		s.consume()
		return next, nil
	}

	s.points[player] += pts
	log.Debug().Int("player", player).Int("score", pts).
		Str("plays", plays.String()).Int("pool", s.pool.Len()).Msg("middle-play")
	next := &MiddleState{
		limits:        s.limits,
		pool:          s.pool,
		board:         s.board,
		points:        s.points,
		hands:         s.hands,
		currentPlayer: advance(player, len(s.hands)),
	}
	s.consume()
	return next, nil
}

// hasEnded reports whether the game is over after player acted.
func (s *MiddleState) hasEnded(player int) bool {
	return len(s.hands[player]) == 0 || s.board.IsDeadlocked()
}

func (s *MiddleState) consume() {
	s.consumed = true
	s.pool = nil
	s.board = nil
	s.points = nil
	s.hands = nil
}
