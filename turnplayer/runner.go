// Package turnplayer drives a game between players: it shows every player
// the state of the game, asks the current player for input until the input
// is accepted, and moves on until the game ends.
package turnplayer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/linematch/linematch/game"
	"github.com/linematch/linematch/move"
)

var (
	ErrTurnLimit      = errors.New("turn limit reached")
	ErrPlayerMismatch = errors.New("number of players does not match the game")
)

// Runner plays one game to the end.
type Runner struct {
	players []Player
	// MaxTurns stops a game that goes on for too long. Zero means no limit.
	MaxTurns int

	turns int
}

func NewRunner(players []Player) *Runner {
	return &Runner{players: players}
}

// Turns is the number of accepted actions so far.
func (r *Runner) Turns() int {
	return r.turns
}

// Run plays the game from its opening to the end and returns the final
// state. The game stops at the first error from a player or from ctx.
func (r *Runner) Run(ctx context.Context, s *game.OpeningState) (*game.TerminalState, error) {
	if s.NumPlayers() != len(r.players) {
		return nil, fmt.Errorf("%w: game has %d, runner has %d",
			ErrPlayerMismatch, s.NumPlayers(), len(r.players))
	}
	if err := r.sendOpening(ctx, s); err != nil {
		return nil, err
	}
	ms, err := r.openingInput(ctx, s)
	if err != nil {
		return nil, err
	}
	r.turns = 1

	for {
		if err := r.sendMiddle(ctx, ms); err != nil {
			return nil, err
		}
		if r.MaxTurns > 0 && r.turns >= r.MaxTurns {
			return nil, fmt.Errorf("%w: %d turns", ErrTurnLimit, r.turns)
		}
		next, err := r.middleInput(ctx, ms)
		if err != nil {
			return nil, err
		}
		r.turns++
		switch st := next.(type) {
		case *game.MiddleState:
			ms = st
		case *game.TerminalState:
			log.Debug().Int("turns", r.turns).Ints("points", st.Points()).Msg("game-over")
			return st, r.sendTerminal(ctx, st)
		default:
			return nil, fmt.Errorf("unexpected state %T", next)
		}
	}
}

// openingInput asks the current player until its opening play is accepted.
func (r *Runner) openingInput(ctx context.Context, s *game.OpeningState) (*game.MiddleState, error) {
	player := s.CurrentPlayer()
	p := r.players[player]
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plays, err := p.OpeningGet(ctx)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", player, err)
		}
		next, err := s.Play(plays)
		if err == nil {
			return next, nil
		}
		v, ok := game.AsViolations(err)
		if !ok {
			return nil, err
		}
		log.Debug().Int("player", player).Err(err).Msg("opening-rejected")
		hand, _ := s.Hand(player)
		if err := p.OpeningRejected(ctx, s.View(), hand, plays, v); err != nil {
			return nil, fmt.Errorf("player %d: %w", player, err)
		}
	}
}

// middleInput asks the current player until its play or exchange is
// accepted.
func (r *Runner) middleInput(ctx context.Context, s *game.MiddleState) (game.State, error) {
	player := s.CurrentPlayer()
	p := r.players[player]
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := p.MiddleGet(ctx)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", player, err)
		}

		var next game.State
		switch m.Action() {
		case move.MoveTypePlay:
			next, err = s.Play(m.Plays())
		case move.MoveTypeExchange:
			next, err = s.Exchange(m.Exchanges())
		default:
			return nil, fmt.Errorf("player %d: unknown move type %v", player, m.Action())
		}
		if err == nil {
			return next, nil
		}
		v, ok := game.AsViolations(err)
		if !ok {
			return nil, err
		}

		log.Debug().Int("player", player).Str("move", m.ShortDescription()).Err(err).Msg("middle-rejected")
		hand, _ := s.Hand(player)
		if m.Action() == move.MoveTypePlay {
			err = p.MiddlePlayRejected(ctx, s.View(), hand, m.Plays(), v)
		} else {
			err = p.MiddleExchangeRejected(ctx, s.View(), hand, m.Exchanges(), v)
		}
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", player, err)
		}
	}
}

// broadcast calls send for every player at once and returns every failure.
func (r *Runner) broadcast(ctx context.Context, send func(ctx context.Context, player int, p Player) error) error {
	errs := make([]error, len(r.players))
	var g errgroup.Group
	for i, p := range r.players {
		g.Go(func() error {
			if err := send(ctx, i, p); err != nil {
				errs[i] = fmt.Errorf("player %d: %w", i, err)
			}
			return nil
		})
	}
	g.Wait()
	return errors.Join(errs...)
}

// Each player gets its own copy of the view, since players may hold on to
// it.
func (r *Runner) sendOpening(ctx context.Context, s *game.OpeningState) error {
	return r.broadcast(ctx, func(ctx context.Context, player int, p Player) error {
		hand, _ := s.Hand(player)
		return p.OpeningUpdate(ctx, s.View(), hand)
	})
}

func (r *Runner) sendMiddle(ctx context.Context, s *game.MiddleState) error {
	return r.broadcast(ctx, func(ctx context.Context, player int, p Player) error {
		hand, _ := s.Hand(player)
		return p.MiddleUpdate(ctx, s.View(), hand)
	})
}

func (r *Runner) sendTerminal(ctx context.Context, s *game.TerminalState) error {
	return r.broadcast(ctx, func(ctx context.Context, _ int, p Player) error {
		return p.TerminalUpdate(ctx, s.View())
	})
}
