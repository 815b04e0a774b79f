// Package game implements the rules of the line matching tile game: the
// opening play, the middle turns of plays and exchanges, and the end of the
// game. Each phase is its own state type; an accepted action consumes the
// state it was applied to and returns the next one, while a rejected action
// leaves the state untouched and reports every rule it broke.
package game

import (
	"fmt"
)

// Phase is the part of the game a state belongs to.
type Phase uint8

const (
	PhaseOpening Phase = iota
	PhaseMiddle
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseOpening:
		return "opening"
	case PhaseMiddle:
		return "middle"
	case PhaseTerminal:
		return "terminal"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// State is implemented by *OpeningState, *MiddleState and *TerminalState.
type State interface {
	Phase() Phase
	// Consumed reports whether the state already led to another one.
	Consumed() bool
	NumPlayers() int
}

// advance returns the seat after player.
func advance(player, players int) int {
	return (player + 1) % players
}
