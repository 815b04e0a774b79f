package game

import (
	"slices"

	"github.com/linematch/linematch/board"
	"github.com/linematch/linematch/tilemapping"
)

// TerminalState is a finished game. Nothing can be played on it.
type TerminalState struct {
	board  board.Board
	points []int
	hands  []tilemapping.Hand
	// poolLen is the number of tiles nobody drew.
	poolLen int
}

func (s *TerminalState) Phase() Phase    { return PhaseTerminal }
func (s *TerminalState) Consumed() bool  { return false }
func (s *TerminalState) NumPlayers() int { return len(s.hands) }

// Board returns a copy of the final board.
func (s *TerminalState) Board() board.Board {
	return s.board.Copy()
}

// Points returns a copy of the final scores.
func (s *TerminalState) Points() []int {
	return slices.Clone(s.points)
}

// Hand returns a copy of the final hand of player.
func (s *TerminalState) Hand(player int) (tilemapping.Hand, bool) {
	if player < 0 || player >= len(s.hands) {
		return nil, false
	}
	return s.hands[player].Copy(), true
}

func (s *TerminalState) PoolLen() int {
	return s.poolLen
}

// Winners returns the players with the highest score.
func (s *TerminalState) Winners() []int {
	best := slices.Max(s.points)
	var winners []int
	for i, p := range s.points {
		if p == best {
			winners = append(winners, i)
		}
	}
	return winners
}
