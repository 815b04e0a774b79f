// Package move describes what a player can do on a turn: place tiles or
// exchange them.
package move

import "fmt"

// MoveType is a type of move; a play or an exchange.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypeExchange
)

func (t MoveType) String() string {
	switch t {
	case MoveTypePlay:
		return "Play"
	case MoveTypeExchange:
		return "Exchange"
	}
	return "UNHANDLED"
}

// Move is what a player submits on a middle turn. It is either a play or an
// exchange, never both.
type Move struct {
	action    MoveType
	plays     Plays
	exchanges Exchanges
	// score is only known once a move has been validated.
	score int
}

// NewPlayMove creates a placing move.
func NewPlayMove(p Plays) *Move {
	return &Move{action: MoveTypePlay, plays: p}
}

// NewScoringMove creates a placing move with a known score.
func NewScoringMove(p Plays, score int) *Move {
	return &Move{action: MoveTypePlay, plays: p, score: score}
}

// NewExchangeMove creates an exchange.
func NewExchangeMove(e Exchanges) *Move {
	return &Move{action: MoveTypeExchange, exchanges: e}
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) Plays() Plays {
	return m.plays
}

func (m *Move) Exchanges() Exchanges {
	return m.exchanges
}

func (m *Move) Score() int {
	return m.score
}

// TilesPlayed returns the number of tiles placed or exchanged.
func (m *Move) TilesPlayed() int {
	if m.action == MoveTypeExchange {
		return m.exchanges.Len()
	}
	return m.plays.Len()
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypePlay:
		return m.plays.String()
	case MoveTypeExchange:
		return fmt.Sprintf("(exch %v)", m.exchanges)
	}
	return "UNHANDLED"
}

func (m *Move) String() string {
	return fmt.Sprintf("<action: %v %v score: %v>", m.action, m.ShortDescription(), m.score)
}
