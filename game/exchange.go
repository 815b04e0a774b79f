package game

import (
	"github.com/rs/zerolog/log"

	"github.com/linematch/linematch/move"
)

// CheckExchange validates an exchange for the current player without
// changing anything.
func (s *MiddleState) CheckExchange(ex move.Exchanges) error {
	if s.consumed {
		return ErrStateConsumed
	}
	v := Violations{}
	if s.hasEnded(s.currentPlayer) {
		v.add(&RuleError{Kind: HasEnded})
	}
	if ex.IsEmpty() {
		v.add(&RuleError{Kind: EmptyExchanges})
		return v
	}

	handLen := len(s.hands[s.currentPlayer])
	legal, illegal := ex.Partition(handLen)
	if !illegal.IsEmpty() {
		v.add(&RuleError{Kind: IndexesOutOfBounds, Indexes: illegal.Indexes(), HandLen: handLen})
	}
	if legal.IsEmpty() {
		v.add(&RuleError{Kind: NoLegalTiles})
	} else if legal.Len() > s.pool.Len() {
		v.add(&RuleError{Kind: NotEnoughTiles, Requested: legal.Len(), Available: s.pool.Len()})
	}
	return v.orNil()
}

// Exchange swaps tiles of the current player's hand with tiles from the
// pool. Replacements are drawn before the returned tiles go back, so a
// player never draws back a tile they just gave up. Points do not change
// and the turn passes on. s is consumed on success.
func (s *MiddleState) Exchange(ex move.Exchanges) (*MiddleState, error) {
	if err := s.CheckExchange(ex); err != nil {
		return nil, err
	}

	player := s.currentPlayer
	hand := &s.hands[player]
	returned := hand.RemoveIndexes(ex.Indexes())
	*hand = append(*hand, s.pool.DrawAtMost(len(returned))...)
	s.pool.PutBackShuffled(returned)

	log.Debug().Int("player", player).Int("tiles", len(returned)).
		Int("pool", s.pool.Len()).Msg("exchange")

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
