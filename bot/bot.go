// Package bot is a computer player. It plays the highest scoring legal play
// it can find and exchanges when it has none.
package bot

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/linematch/linematch/board"
	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/game"
	"github.com/linematch/linematch/move"
	"github.com/linematch/linematch/tilemapping"
	"github.com/linematch/linematch/turnplayer"
)

var (
	// ErrNoMoves means the bot can neither play nor exchange.
	ErrNoMoves = errors.New("no legal play and nothing to exchange")
	// ErrRejected means the game refused a move the bot thought legal.
	ErrRejected = errors.New("bot move rejected")
)

// BestOpening picks the best opening play of hand.
func BestOpening(limits config.Limits, hand tilemapping.Hand) (*move.Move, error) {
	m := pickTop(GenerateOpening(limits, hand))
	if m == nil {
		return nil, ErrNoMoves
	}
	return m, nil
}

// BestMove picks the best middle turn move: the top scoring play, or an
// exchange of the tiles outside the hand's best matching set when there is
// no play. poolLen bounds the exchange.
func BestMove(limits config.Limits, b board.Board, hand tilemapping.Hand, poolLen int) (*move.Move, error) {
	if m := pickTop(GenerateMiddle(limits, b, hand)); m != nil {
		return m, nil
	}
	idxs := exchangeIndexes(hand)
	if len(idxs) > poolLen {
		idxs = idxs[:poolLen]
	}
	if len(idxs) == 0 {
		return nil, ErrNoMoves
	}
	return move.NewExchangeMove(move.MustExchanges(idxs...)), nil
}

// pickTop returns one of the highest scoring moves at random. moves must be
// sorted best first.
func pickTop(moves []*move.Move) *move.Move {
	if len(moves) == 0 {
		return nil
	}
	n := 1
	for n < len(moves) && moves[n].Score() == moves[0].Score() {
		n++
	}
	return moves[frand.Intn(n)]
}

// exchangeIndexes returns the hand indexes outside the first best matching
// set, or the whole hand when every tile belongs to it.
func exchangeIndexes(hand tilemapping.Hand) []int {
	keep := map[int]bool{}
	if combos := game.MatchingCombinations(hand, hand.MaxMatch()); len(combos) > 0 {
		for _, i := range combos[0] {
			keep[i] = true
		}
	}
	var idxs []int
	for i := range hand {
		if !keep[i] {
			idxs = append(idxs, i)
		}
	}
	if len(idxs) == 0 {
		for i := range hand {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

var _ turnplayer.Player = (*Player)(nil)

// Player plays a seat with BestOpening and BestMove.
type Player struct {
	name    string
	limits  config.Limits
	hand    tilemapping.Hand
	board   board.Board
	poolLen int
	final   *game.TerminalView
}

func NewPlayer(name string, limits config.Limits) *Player {
	return &Player{name: name, limits: limits}
}

// Final is the last view the player was sent, once the game is over.
func (p *Player) Final() *game.TerminalView {
	return p.final
}

func (p *Player) OpeningGet(ctx context.Context) (move.Plays, error) {
	m, err := BestOpening(p.limits, p.hand)
	if err != nil {
		return move.Plays{}, err
	}
	log.Debug().Str("bot", p.name).Str("move", m.ShortDescription()).Msg("generated-opening")
	return m.Plays(), nil
}

func (p *Player) OpeningRejected(ctx context.Context, view game.OpeningView, hand tilemapping.Hand,
	plays move.Plays, errs game.Violations) error {
	return fmt.Errorf("%w: %v: %w", ErrRejected, plays, errs)
}

func (p *Player) OpeningUpdate(ctx context.Context, view game.OpeningView, hand tilemapping.Hand) error {
	p.hand = hand
	p.poolLen = view.PoolLen
	return nil
}

func (p *Player) MiddleGet(ctx context.Context) (*move.Move, error) {
	m, err := BestMove(p.limits, p.board, p.hand, p.poolLen)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("bot", p.name).Str("move", m.ShortDescription()).Msg("generated-move")
	return m, nil
}

func (p *Player) MiddlePlayRejected(ctx context.Context, view game.MiddleView, hand tilemapping.Hand,
	plays move.Plays, errs game.Violations) error {
	return fmt.Errorf("%w: %v: %w", ErrRejected, plays, errs)
}

func (p *Player) MiddleExchangeRejected(ctx context.Context, view game.MiddleView, hand tilemapping.Hand,
	ex move.Exchanges, errs game.Violations) error {
	return fmt.Errorf("%w: exch %v: %w", ErrRejected, ex, errs)
}

func (p *Player) MiddleUpdate(ctx context.Context, view game.MiddleView, hand tilemapping.Hand) error {
	p.hand = hand
	p.board = view.Board
	p.poolLen = view.PoolLen
	return nil
}

func (p *Player) TerminalUpdate(ctx context.Context, view game.TerminalView) error {
	p.final = &view
	return nil
}
