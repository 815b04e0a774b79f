// Package automatic plays computer vs computer games, for testing the bot
// and collecting statistics about the game.
package automatic

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/linematch/linematch/bot"
	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/game"
	"github.com/linematch/linematch/tilemapping"
	"github.com/linematch/linematch/turnplayer"
)

// DefaultMaxTurns stops games in which the bots keep exchanging.
const DefaultMaxTurns = 1000

var ErrTilesNotConserved = errors.New("tiles not conserved")

// GameRunner plays games between bots.
type GameRunner struct {
	limits   config.Limits
	opts     turnplayer.GameOptions
	MaxTurns int
}

// NewGameRunner builds a runner with the limits and game options of cfg.
func NewGameRunner(cfg *config.Config) (*GameRunner, error) {
	limits := cfg.Limits()
	if err := limits.Validate(); err != nil {
		return nil, err
	}
	r := &GameRunner{limits: limits, MaxTurns: DefaultMaxTurns}
	r.opts.SetDefaults(cfg)
	return r, nil
}

// Result is the outcome of one game.
type Result struct {
	GameID string
	First  int
	Turns  int
	Points []int
	// Stalled is why the game stopped early, when no bot could move or the
	// turn limit was hit. Points is nil then.
	Stalled error
}

// Winners returns the seats with the highest score.
func (res *Result) Winners() []int {
	if res.Stalled != nil || len(res.Points) == 0 {
		return nil
	}
	best := res.Points[0]
	for _, p := range res.Points {
		best = max(best, p)
	}
	var winners []int
	for i, p := range res.Points {
		if p == best {
			winners = append(winners, i)
		}
	}
	return winners
}

// csvLine is the game log line for res.
func (res *Result) csvLine(players int) string {
	fields := []string{res.GameID}
	for i := range players {
		if res.Stalled != nil {
			fields = append(fields, "")
		} else {
			fields = append(fields, strconv.Itoa(res.Points[i]))
		}
	}
	outcome := "final"
	if res.Stalled != nil {
		outcome = "stalled"
	}
	fields = append(fields, strconv.Itoa(res.First), strconv.Itoa(res.Turns), outcome)
	return strings.Join(fields, ",") + "\n"
}

// PlayGame deals a new game and plays it out between bots.
func (r *GameRunner) PlayGame(ctx context.Context, gameID string) (*Result, error) {
	s, err := game.NewOpening(r.limits, r.opts.Options, r.opts.FirstPlayer)
	if err != nil {
		return nil, err
	}
	res := &Result{GameID: gameID, First: s.CurrentPlayer()}

	players := make([]turnplayer.Player, s.NumPlayers())
	for i := range players {
		players[i] = bot.NewPlayer(fmt.Sprintf("%s-p%d", gameID, i), r.limits)
	}
	runner := turnplayer.NewRunner(players)
	runner.MaxTurns = r.MaxTurns

	final, err := runner.Run(ctx, s)
	res.Turns = runner.Turns()
	switch {
	case errors.Is(err, bot.ErrNoMoves), errors.Is(err, turnplayer.ErrTurnLimit):
		log.Debug().Str("game", gameID).Err(err).Int("turns", res.Turns).Msg("game-stalled")
		res.Stalled = err
		return res, nil
	case err != nil:
		return nil, fmt.Errorf("game %s: %w", gameID, err)
	}

	if err := checkConservation(final, r.opts.Copies*tilemapping.NumTiles); err != nil {
		return nil, fmt.Errorf("game %s: %w", gameID, err)
	}
	res.Points = final.Points()
	log.Debug().Str("game", gameID).Ints("points", res.Points).Int("turns", res.Turns).Msg("game-over")
	return res, nil
}

// checkConservation makes sure no tile appeared or vanished during the game.
func checkConservation(final *game.TerminalState, total int) error {
	n := len(final.Board()) + final.PoolLen()
	for i := range final.NumPlayers() {
		h, _ := final.Hand(i)
		n += len(h)
	}
	if n != total {
		return fmt.Errorf("%w: counted %d, dealt %d", ErrTilesNotConserved, n, total)
	}
	return nil
}
