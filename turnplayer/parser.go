package turnplayer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/linematch/linematch/move"
)

var errUnrecognizedMove = errors.New("unrecognized move")

// ParseMove reads a move typed by a person. An exchange is "exch" (or
// "exchange") followed by hand indexes; anything else is a list of plays
// in the form index@x,y.
//
//	exch 0 3 4
//	0@0,0 2@1,0
func ParseMove(fields []string) (*move.Move, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: nothing to play", errUnrecognizedMove)
	}
	switch strings.ToLower(fields[0]) {
	case "exch", "exchange":
		ex, err := move.ParseExchanges(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errUnrecognizedMove, err)
		}
		return move.NewExchangeMove(ex), nil
	}
	plays, err := move.ParsePlays(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errUnrecognizedMove, strings.Join(fields, " "), err)
	}
	return move.NewPlayMove(plays), nil
}
