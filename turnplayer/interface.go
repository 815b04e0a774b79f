package turnplayer

import (
	"context"

	"github.com/linematch/linematch/game"
	"github.com/linematch/linematch/move"
	"github.com/linematch/linematch/tilemapping"
)

// Player is one seat at the table. The Get methods block until the player
// decides; the Rejected methods tell the current player why its last input
// was refused, before it is asked again. The Update methods are sent to
// every player at once and may run concurrently with each other.
//
// A player that keeps sending bad input is expected to give up by returning
// an error; any error stops the game.
type Player interface {
	OpeningGet(ctx context.Context) (move.Plays, error)
	OpeningRejected(ctx context.Context, view game.OpeningView, hand tilemapping.Hand,
		plays move.Plays, errs game.Violations) error
	OpeningUpdate(ctx context.Context, view game.OpeningView, hand tilemapping.Hand) error

	// MiddleGet returns either a play or an exchange move.
	MiddleGet(ctx context.Context) (*move.Move, error)
	MiddlePlayRejected(ctx context.Context, view game.MiddleView, hand tilemapping.Hand,
		plays move.Plays, errs game.Violations) error
	MiddleExchangeRejected(ctx context.Context, view game.MiddleView, hand tilemapping.Hand,
		ex move.Exchanges, errs game.Violations) error
	MiddleUpdate(ctx context.Context, view game.MiddleView, hand tilemapping.Hand) error

	TerminalUpdate(ctx context.Context, view game.TerminalView) error
}
