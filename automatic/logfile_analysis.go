package automatic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// AnalyzeLogFile analyzes the given game CSV file and spits out a bunch of
// statistics.
func AnalyzeLogFile(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	r := csv.NewReader(file)

	// Record looks like:
	// gameID,p0_score,p1_score,...,first,turns,outcome

	header, err := r.Read()
	if err != nil {
		return "", fmt.Errorf("reading header: %w", err)
	}
	players := len(header) - 4
	if players <= 0 || header[0] != "gameID" {
		return "", errors.New("not a game log")
	}

	scores := make([][]float64, players)
	wins := make([]float64, players)
	firstWins := float64(0)
	gamesPlayed, stalled := 0, 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		gamesPlayed++
		if record[len(record)-1] == "stalled" {
			stalled++
			continue
		}
		first, err := strconv.Atoi(record[players+1])
		if err != nil {
			return "", err
		}
		best := -1
		game := make([]int, players)
		for i := range players {
			game[i], err = strconv.Atoi(record[i+1])
			if err != nil {
				return "", err
			}
			scores[i] = append(scores[i], float64(game[i]))
			best = max(best, game[i])
		}
		var winners []int
		for i, s := range game {
			if s == best {
				winners = append(winners, i)
			}
		}
		for _, w := range winners {
			share := 1 / float64(len(winners))
			wins[w] += share
			if w == first {
				firstWins += share
			}
		}
	}
	finished := gamesPlayed - stalled
	if finished == 0 {
		return fmt.Sprintf("Games played: %d\nStalled: %d\n", gamesPlayed, stalled), nil
	}

	// build stats string
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", gamesPlayed)
	fmt.Fprintf(&sb, "Stalled: %d\n", stalled)
	fmt.Fprintf(&sb, "Player who went first wins: %.1f (%.3f%%)\n",
		firstWins, 100.0*firstWins/float64(finished))
	for i := range players {
		name := strings.TrimSuffix(header[i+1], "_score")
		mean, std := stat.MeanStdDev(scores[i], nil)
		fmt.Fprintf(&sb, "%v wins: %.1f (%.3f%%)\n", name, wins[i], 100.0*wins[i]/float64(finished))
		fmt.Fprintf(&sb, "%v Mean Score: %.6f  Stdev: %.6f\n", name, mean, std)
	}
	return sb.String(), nil
}
