package game

import (
	"lukechampine.com/frand"
)

const (
	// FullMatchBonus is added for a line holding every color or every
	// shape.
	FullMatchBonus = 6
	// LastPlayBonus is added to the play that ends the game.
	LastPlayBonus = 6

	DefaultCopies  = 3
	DefaultHandLen = 6
)

// Options describe the game to deal.
type Options struct {
	Players int
	// Copies of every tile kind in the pool.
	Copies int
	// HandLen is the number of tiles dealt to each player.
	HandLen int
}

// DefaultOptions returns the usual setup for the given number of players.
func DefaultOptions(players int) Options {
	return Options{Players: players, Copies: DefaultCopies, HandLen: DefaultHandLen}
}

// A FirstPlayerSelector picks who opens the game among the players holding
// the largest max-match. candidates is never empty. Returning a player not
// in candidates fails the game setup.
type FirstPlayerSelector func(candidates []int) int

// RandomFirstPlayer picks uniformly among the candidates.
func RandomFirstPlayer(candidates []int) int {
	return candidates[frand.Intn(len(candidates))]
}

// LowestFirstPlayer picks the lowest seat among the candidates. Handy for
// reproducible games.
func LowestFirstPlayer(candidates []int) int {
	return candidates[0]
}
