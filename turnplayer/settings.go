package turnplayer

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/game"
)

// GameOptions are the table settings new games are dealt with.
type GameOptions struct {
	game.Options
	// FirstPlayer picks the opening player. Nil picks at random.
	FirstPlayer game.FirstPlayerSelector
	// firstPlayerName is kept for display.
	firstPlayerName string
}

// SetDefaults fills every unset option from cfg.
func (opts *GameOptions) SetDefaults(cfg *config.Config) {
	if opts.Players == 0 {
		opts.Players = cfg.GetInt(config.ConfigPlayers)
		log.Info().Msgf("using default player count %v", opts.Players)
	}
	if opts.Copies == 0 {
		opts.Copies = cfg.GetInt(config.ConfigCopies)
	}
	if opts.HandLen == 0 {
		opts.HandLen = cfg.GetInt(config.ConfigHandLen)
	}
	if opts.FirstPlayer == nil {
		opts.FirstPlayer = game.RandomFirstPlayer
		opts.firstPlayerName = "random"
	}
}

// Set changes one option by name.
func (opts *GameOptions) Set(name, value string) error {
	if name == "first" {
		switch value {
		case "random":
			opts.FirstPlayer = game.RandomFirstPlayer
		case "lowest":
			opts.FirstPlayer = game.LowestFirstPlayer
		default:
			return fmt.Errorf("%v is not a first player rule; valid options: 'random', 'lowest'", value)
		}
		opts.firstPlayerName = value
		return nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%v must be a number: %w", name, err)
	}
	if n <= 0 {
		return fmt.Errorf("%v must be positive, got %d", name, n)
	}
	switch name {
	case config.ConfigPlayers:
		opts.Players = n
	case config.ConfigCopies:
		opts.Copies = n
	case config.ConfigHandLen:
		opts.HandLen = n
	default:
		return fmt.Errorf("%v is not a game option", name)
	}
	return nil
}

func (opts *GameOptions) ToDisplayString() string {
	first := opts.firstPlayerName
	if first == "" {
		first = "random"
	}
	return fmt.Sprintf("players: %d, copies: %d, hand-len: %d, first: %s",
		opts.Players, opts.Copies, opts.HandLen, first)
}
