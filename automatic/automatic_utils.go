package automatic

// Data collection for automatic games.

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/linematch/linematch/config"
)

var (
	CVCCounter *expvar.Int
	IsPlaying  *expvar.Int
)

func init() {
	CVCCounter = expvar.NewInt("cvcCounter")
	IsPlaying = expvar.NewInt("isPlaying")
}

// Summary sums up a batch of games.
type Summary struct {
	Games   int
	Stalled int
	// Wins per seat. A tie splits the win between the tied seats.
	Wins       []float64
	MeanPoints []float64
}

func summarize(results []*Result, players int) *Summary {
	sum := &Summary{Wins: make([]float64, players), MeanPoints: make([]float64, players)}
	points := make([][]float64, players)
	for _, res := range results {
		if res == nil {
			continue
		}
		sum.Games++
		if res.Stalled != nil {
			sum.Stalled++
			continue
		}
		winners := res.Winners()
		for _, w := range winners {
			sum.Wins[w] += 1 / float64(len(winners))
		}
		for i, p := range res.Points {
			points[i] = append(points[i], float64(p))
		}
	}
	for i, ps := range points {
		if len(ps) > 0 {
			sum.MeanPoints[i] = stat.Mean(ps, nil)
		}
	}
	return sum
}

// StartCompVCompGames plays numGames bot games, threads at a time, and
// writes one line per game to outputFilename when it is not empty. It
// returns once every game is over or ctx is done.
func StartCompVCompGames(ctx context.Context, cfg *config.Config,
	numGames int, threads int, outputFilename string) (*Summary, error) {

	if IsPlaying.Value() > 0 {
		return nil, errors.New("games are already being played, please wait till complete")
	}
	r, err := NewGameRunner(cfg)
	if err != nil {
		return nil, err
	}
	players := r.opts.Players

	var logfile *os.File
	if outputFilename != "" {
		logfile, err = os.Create(outputFilename)
		if err != nil {
			return nil, err
		}
	}
	log.Debug().Msgf("Starting %v games, %v threads", numGames, threads)

	IsPlaying.Add(1)
	defer IsPlaying.Add(-1)
	CVCCounter.Set(0)

	logChan := make(chan string, 100)
	logDone := make(chan error)
	go func() {
		logDone <- writeGameLog(logfile, players, logChan)
	}()

	results := make([]*Result, numGames)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(threads, 1))
gameLoop:
	for i := range numGames {
		select {
		case <-gctx.Done():
			log.Info().Msg("Got stop signal, exiting soon...")
			break gameLoop
		default:
		}
		g.Go(func() error {
			res, err := r.PlayGame(gctx, fmt.Sprintf("g%d", i+1))
			if err != nil {
				return err
			}
			results[i] = res
			CVCCounter.Add(1)
			logChan <- res.csvLine(players)
			return nil
		})
		if (i+1)%1000 == 0 {
			log.Info().Msgf("Queued %v jobs", i+1)
		}
	}

	err = g.Wait()
	close(logChan)
	if lerr := <-logDone; lerr != nil {
		err = errors.Join(err, lerr)
	}
	if err != nil {
		return nil, err
	}

	sum := summarize(results, players)
	log.Info().Int("games", sum.Games).Int("stalled", sum.Stalled).
		Floats64("wins", sum.Wins).Floats64("mean-points", sum.MeanPoints).Msg("All games finished.")
	return sum, nil
}

// writeGameLog drains lines into f. A nil f discards them.
func writeGameLog(f *os.File, players int, lines <-chan string) error {
	if f == nil {
		for range lines {
		}
		return nil
	}
	var errs []error
	header := []string{"gameID"}
	for i := range players {
		header = append(header, fmt.Sprintf("p%d_score", i))
	}
	header = append(header, "first", "turns", "outcome")
	if _, err := f.WriteString(strings.Join(header, ",") + "\n"); err != nil {
		errs = append(errs, err)
	}
	for line := range lines {
		if _, err := f.WriteString(line); err != nil {
			errs = append(errs, err)
		}
	}
	errs = append(errs, f.Close())
	log.Info().Msg("Exiting game logger goroutine!")
	return errors.Join(errs...)
}
