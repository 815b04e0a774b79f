package shell

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/linematch/linematch/automatic"
	"github.com/linematch/linematch/bot"
	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/game"
	"github.com/linematch/linematch/move"
	"github.com/linematch/linematch/tilemapping"
	"github.com/linematch/linematch/turnplayer"
)

const (
	defaultGenPlays     = 10
	defaultAutoplayFile = "/tmp/linematch_autoplay.txt"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func intOption(options map[string]string, key string, defaultI int) (int, error) {
	v, ok := options[key]
	if !ok {
		return defaultI, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("option %v: %w", key, err)
	}
	return n, nil
}

// rejected turns the violations in err into one line per broken rule.
func rejected(err error) error {
	v, ok := game.AsViolations(err)
	if !ok {
		return err
	}
	var sb strings.Builder
	sb.WriteString("move rejected:")
	for _, k := range v.Kinds() {
		sb.WriteString("\n  - " + v.Get(k).Error())
	}
	return errors.New(sb.String())
}

// onTurn returns the player to act and their hand.
func (sc *ShellController) onTurn() (int, tilemapping.Hand, error) {
	switch s := sc.state.(type) {
	case *game.OpeningState:
		p := s.CurrentPlayer()
		h, _ := s.Hand(p)
		return p, h, nil
	case *game.MiddleState:
		p := s.CurrentPlayer()
		h, _ := s.Hand(p)
		return p, h, nil
	case *game.TerminalState:
		return 0, nil, errGameOver
	}
	return 0, nil, errNoGame
}

func (sc *ShellController) handOf(player int) (tilemapping.Hand, error) {
	var h tilemapping.Hand
	var ok bool
	switch s := sc.state.(type) {
	case *game.OpeningState:
		h, ok = s.Hand(player)
	case *game.MiddleState:
		h, ok = s.Hand(player)
	case *game.TerminalState:
		h, ok = s.Hand(player)
	default:
		return nil, errNoGame
	}
	if !ok {
		return nil, fmt.Errorf("there is no player %d", player)
	}
	return h, nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		if sc.gitVersion != "" {
			writeln("linematch "+sc.gitVersion, sc.out)
		}
		usage(sc.out)
		return nil, nil
	}
	usageTopic(sc.out, cmd.args[0])
	return nil, nil
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	s, err := game.NewOpening(sc.limits, sc.options.Options, sc.options.FirstPlayer)
	if err != nil {
		return nil, rejected(err)
	}
	sc.state = s
	sc.curGenPlays = nil
	log.Debug().Str("options", sc.options.ToDisplayString()).Msg("new game")
	return sc.show(cmd)
}

func (sc *ShellController) set(cmd *shellcmd) (*Response, error) {
	switch len(cmd.args) {
	case 0:
		return msg(sc.options.ToDisplayString()), nil
	case 2:
		if err := sc.options.Set(cmd.args[0], cmd.args[1]); err != nil {
			return nil, err
		}
		return msg(sc.options.ToDisplayString()), nil
	}
	return nil, errors.New("usage: set <option> <value>")
}

func (sc *ShellController) hand(cmd *shellcmd) (*Response, error) {
	var player int
	if len(cmd.args) > 0 {
		p, err := strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, fmt.Errorf("player must be a number: %w", err)
		}
		player = p
	} else {
		p, _, err := sc.onTurn()
		if err != nil {
			return nil, err
		}
		player = p
	}
	h, err := sc.handOf(player)
	if err != nil {
		return nil, err
	}
	return msg(handText(h)), nil
}

func handText(h tilemapping.Hand) string {
	var sb strings.Builder
	for i, t := range h {
		fmt.Fprintf(&sb, "%d: %v\n", i, t)
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	switch s := sc.state.(type) {
	case *game.OpeningState:
		v := s.View()
		fmt.Fprintf(&sb, "Opening, player %d to play\n", v.CurrentPlayer)
		fmt.Fprintf(&sb, "Pool: %d\nHand sizes: %v\nBest matches: %v", v.PoolLen, v.HandLens, v.MaxMatches)
	case *game.MiddleState:
		v := s.View()
		sb.WriteString(v.Board.String())
		fmt.Fprintf(&sb, "Points: %v\nPool: %d\nHand sizes: %v\nPlayer %d to play",
			v.Points, v.PoolLen, v.HandLens, v.CurrentPlayer)
	case *game.TerminalState:
		v := s.View()
		sb.WriteString(v.Board.String())
		fmt.Fprintf(&sb, "Game over\nPoints: %v\nWinners: %v", v.Points, s.Winners())
	default:
		return nil, errNoGame
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 1 && strings.HasPrefix(cmd.args[0], "#") {
		n, err := strconv.Atoi(cmd.args[0][1:])
		if err != nil || n < 1 || n > len(sc.curGenPlays) {
			return nil, fmt.Errorf("%v is not one of the generated plays", cmd.args[0])
		}
		return sc.commit(sc.curGenPlays[n-1])
	}
	m, err := turnplayer.ParseMove(cmd.args)
	if err != nil {
		return nil, err
	}
	return sc.commit(m)
}

// commit applies m for the player on turn. A rejected move leaves the game
// as it was.
func (sc *ShellController) commit(m *move.Move) (*Response, error) {
	player, _, err := sc.onTurn()
	if err != nil {
		return nil, err
	}
	var next game.State
	switch s := sc.state.(type) {
	case *game.OpeningState:
		if m.Action() == move.MoveTypeExchange {
			return nil, errors.New("the opening play cannot be an exchange")
		}
		next, err = s.Play(m.Plays())
	case *game.MiddleState:
		if m.Action() == move.MoveTypeExchange {
			next, err = s.Exchange(m.Exchanges())
		} else {
			next, err = s.Play(m.Plays())
		}
	}
	if err != nil {
		return nil, rejected(err)
	}
	sc.state = next
	sc.curGenPlays = nil
	sc.showMessage(fmt.Sprintf("Player %d: %v", player, m.ShortDescription()))
	return sc.show(nil)
}

func (sc *ShellController) generate() ([]*move.Move, error) {
	_, hand, err := sc.onTurn()
	if err != nil {
		return nil, err
	}
	switch s := sc.state.(type) {
	case *game.OpeningState:
		return bot.GenerateOpening(sc.limits, hand), nil
	case *game.MiddleState:
		return bot.GenerateMiddle(sc.limits, s.Board(), hand), nil
	}
	return nil, errNoGame
}

func (sc *ShellController) gen(cmd *shellcmd) (*Response, error) {
	n := defaultGenPlays
	if len(cmd.args) > 0 {
		var err error
		n, err = strconv.Atoi(cmd.args[0])
		if err != nil {
			return nil, fmt.Errorf("number of plays: %w", err)
		}
		if n < 1 {
			return nil, errors.New("number of plays must be positive")
		}
	}
	moves, err := sc.generate()
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return msg("No plays; exchange instead."), nil
	}
	sc.curGenPlays = moves[:min(n, len(moves))]
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-4s%-40s%6s\n", "#", "Plays", "Score")
	for i, m := range sc.curGenPlays {
		fmt.Fprintf(&sb, "%-4d%-40s%6d\n", i+1, m.ShortDescription(), m.Score())
	}
	return msg(strings.TrimSuffix(sb.String(), "\n")), nil
}

func (sc *ShellController) bot(cmd *shellcmd) (*Response, error) {
	_, hand, err := sc.onTurn()
	if err != nil {
		return nil, err
	}
	var m *move.Move
	switch s := sc.state.(type) {
	case *game.OpeningState:
		m, err = bot.BestOpening(sc.limits, hand)
	case *game.MiddleState:
		m, err = bot.BestMove(sc.limits, s.Board(), hand, s.PoolLen())
	}
	if err != nil {
		return nil, err
	}
	return sc.commit(m)
}

func (sc *ShellController) autoplay(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 && cmd.args[0] == "stop" {
		if automatic.IsPlaying.Value() == 0 || sc.gameRunnerCancel == nil {
			return nil, errors.New("no games are being played")
		}
		sc.gameRunnerCancel()
		return msg("Stopping games..."), nil
	}
	if automatic.IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played; use autoplay stop")
	}
	games, err := intOption(cmd.options, "games", sc.config.GetInt(config.ConfigAutoplayGames))
	if err != nil {
		return nil, err
	}
	threads, err := intOption(cmd.options, "threads", sc.config.GetInt(config.ConfigAutoplayThreads))
	if err != nil {
		return nil, err
	}
	file := defaultAutoplayFile
	if f, ok := cmd.options["file"]; ok {
		file = f
	}
	sc.config.Set(config.ConfigPlayers, sc.options.Players)
	sc.config.Set(config.ConfigCopies, sc.options.Copies)
	sc.config.Set(config.ConfigHandLen, sc.options.HandLen)

	ctx, cancel := context.WithCancel(context.Background())
	sc.gameRunnerCancel = cancel
	if sc.foreground {
		defer cancel()
		sum, err := automatic.StartCompVCompGames(ctx, sc.config, games, threads, file)
		if err != nil {
			return nil, err
		}
		return msg(summaryText(sum, file)), nil
	}
	go func() {
		defer cancel()
		sum, err := automatic.StartCompVCompGames(ctx, sc.config, games, threads, file)
		if err != nil {
			log.Err(err).Msg("autoplay")
			return
		}
		log.Info().Msg(summaryText(sum, file))
	}()
	return msg(fmt.Sprintf("Playing %d games in the background, writing to %v", games, file)), nil
}

func summaryText(sum *automatic.Summary, file string) string {
	return fmt.Sprintf("Played %d games (%d stalled), wins %v, mean points %v; log in %v",
		sum.Games, sum.Stalled, sum.Wins, sum.MeanPoints, file)
}

func (sc *ShellController) autoAnalyze(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return nil, errors.New("please provide a filename to analyze")
	}
	out, err := automatic.AnalyzeLogFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(out), nil
}
