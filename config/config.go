package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDebug            = "debug"
	ConfigConfigFile       = "config"
	ConfigPlayers          = "players"
	ConfigCopies           = "copies"
	ConfigHandLen          = "hand-len"
	ConfigPlayerCapacity   = "player-capacity"
	ConfigHandCapacity     = "hand-capacity"
	ConfigTileLimit        = "tile-limit"
	ConfigCoordinateLimit  = "coordinate-limit"
	ConfigHolesLimit       = "holes-limit"
	ConfigAutoplayThreads  = "autoplay-threads"
	ConfigAutoplayGames    = "autoplay-games"
	ConfigCPUProfile       = "cpu-profile"
	defaultPlayerCapacity  = 4
	defaultHandCapacity    = 6
	defaultTileLimit       = 10_000
	defaultCoordinateLimit = 10_000
	defaultHolesLimit      = 100
	// MinTileLimit is the smallest tile limit that can hold one copy of
	// every tile kind.
	MinTileLimit = 36
)

// Limits are the tunables a game is built with. They are fixed for the
// life of a game.
type Limits struct {
	// PlayerCapacity and HandCapacity are allocation hints only.
	PlayerCapacity int
	HandCapacity   int
	// TileLimit bounds the number of tiles in circulation.
	TileLimit int
	// CoordinateLimit bounds |x| and |y| of every placed tile.
	CoordinateLimit int
	// HolesLimit caps the hole ranges reported for one line. Zero turns
	// hole detection off.
	HolesLimit int
}

// DefaultLimits returns the limits used when nothing is configured.
func DefaultLimits() Limits {
	return Limits{
		PlayerCapacity:  defaultPlayerCapacity,
		HandCapacity:    defaultHandCapacity,
		TileLimit:       defaultTileLimit,
		CoordinateLimit: defaultCoordinateLimit,
		HolesLimit:      defaultHolesLimit,
	}
}

// Validate reports every problem with the limits at once.
func (l Limits) Validate() error {
	var errs []error
	if l.PlayerCapacity < 0 {
		errs = append(errs, fmt.Errorf("player capacity must not be negative, got %d", l.PlayerCapacity))
	}
	if l.HandCapacity < 0 {
		errs = append(errs, fmt.Errorf("hand capacity must not be negative, got %d", l.HandCapacity))
	}
	if l.TileLimit < MinTileLimit {
		errs = append(errs, fmt.Errorf("tile limit must be at least %d, got %d", MinTileLimit, l.TileLimit))
	}
	if l.CoordinateLimit <= 0 {
		errs = append(errs, fmt.Errorf("coordinate limit must be positive, got %d", l.CoordinateLimit))
	} else if math.MaxInt/l.CoordinateLimit < l.TileLimit {
		errs = append(errs, fmt.Errorf("coordinate limit %d times tile limit %d overflows",
			l.CoordinateLimit, l.TileLimit))
	}
	if l.HolesLimit < 0 {
		errs = append(errs, fmt.Errorf("holes limit must not be negative, got %d", l.HolesLimit))
	}
	return errors.Join(errs...)
}

// Config holds the settings of the binaries. Values come from flags, then
// LINEMATCH_* environment variables, then an optional config file.
type Config struct {
	*viper.Viper
	args []string
}

// Load parses args and fills the config.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()

	fs := pflag.NewFlagSet("linematch", pflag.ContinueOnError)
	// A shell command may follow the flags and carries its own options.
	fs.SetInterspersed(false)
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigConfigFile, "", "path to a yaml config file")
	fs.Int(ConfigPlayers, 2, "number of players in a new game")
	fs.Int(ConfigCopies, 3, "copies of every tile kind in the pool")
	fs.Int(ConfigHandLen, 6, "number of tiles dealt to every hand")
	fs.Int(ConfigPlayerCapacity, defaultPlayerCapacity, "players to allocate for")
	fs.Int(ConfigHandCapacity, defaultHandCapacity, "hand tiles to allocate for")
	fs.Int(ConfigTileLimit, defaultTileLimit, "maximum tiles in circulation")
	fs.Int(ConfigCoordinateLimit, defaultCoordinateLimit, "maximum coordinate magnitude")
	fs.Int(ConfigHolesLimit, defaultHolesLimit, "maximum holes reported per line, 0 disables")
	fs.Int(ConfigAutoplayThreads, 4, "games played at once by autoplay")
	fs.Int(ConfigAutoplayGames, 100, "games played by autoplay")
	fs.String(ConfigCPUProfile, "", "write a cpu profile to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.SetEnvPrefix("linematch")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	if path := c.GetString(ConfigConfigFile); path != "" {
		c.SetConfigFile(path)
		if err := c.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %v: %w", path, err)
		}
		log.Debug().Str("path", path).Msg("read config file")
	}
	return nil
}

// Args returns the arguments left over after the flags.
func (c *Config) Args() []string {
	return c.args
}

// Limits builds the game limits from the loaded settings.
func (c *Config) Limits() Limits {
	return Limits{
		PlayerCapacity:  c.GetInt(ConfigPlayerCapacity),
		HandCapacity:    c.GetInt(ConfigHandCapacity),
		TileLimit:       c.GetInt(ConfigTileLimit),
		CoordinateLimit: c.GetInt(ConfigCoordinateLimit),
		HolesLimit:      c.GetInt(ConfigHolesLimit),
	}
}

// SanitizedSettings returns every setting keyed by name, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
