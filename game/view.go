package game

import (
	"slices"

	"github.com/linematch/linematch/board"
	"github.com/linematch/linematch/tilemapping"
)

// OpeningView is what every player may see before the opening play.
type OpeningView struct {
	PoolLen       int
	HandLens      []int
	MaxMatches    []int
	CurrentPlayer int
}

// MiddleView is what every player may see during the middle turns.
type MiddleView struct {
	PoolLen       int
	Board         board.Board
	Points        []int
	HandLens      []int
	CurrentPlayer int
}

// TerminalView is the public outcome of a finished game. Hands are no
// longer secret once the game is over.
type TerminalView struct {
	Board  board.Board
	Points []int
	Hands  []tilemapping.Hand
}

func handLens(hands []tilemapping.Hand) []int {
	lens := make([]int, len(hands))
	for i, h := range hands {
		lens[i] = len(h)
	}
	return lens
}

// View returns the public view. A consumed state has an empty view.
func (s *OpeningState) View() OpeningView {
	if s.consumed {
		return OpeningView{}
	}
	return OpeningView{
		PoolLen:       s.pool.Len(),
		HandLens:      handLens(s.hands),
		MaxMatches:    slices.Clone(s.maxMatches),
		CurrentPlayer: s.currentPlayer,
	}
}

// View returns the public view. A consumed state has an empty view.
func (s *MiddleState) View() MiddleView {
	if s.consumed {
		return MiddleView{}
	}
	return MiddleView{
		PoolLen:       s.pool.Len(),
		Board:         s.board.Copy(),
		Points:        slices.Clone(s.points),
		HandLens:      handLens(s.hands),
		CurrentPlayer: s.currentPlayer,
	}
}

func (s *TerminalState) View() TerminalView {
	hands := make([]tilemapping.Hand, len(s.hands))
	for i, h := range s.hands {
		hands[i] = h.Copy()
	}
	return TerminalView{
		Board:  s.board.Copy(),
		Points: slices.Clone(s.points),
		Hands:  hands,
	}
}
