package turnplayer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linematch/linematch/config"
	"github.com/linematch/linematch/move"
)

func TestParseMove(t *testing.T) {
	m, err := ParseMove([]string{"exch", "3", "0", "3"})
	assert.Nil(t, err)
	assert.Equal(t, move.MoveTypeExchange, m.Action())
	assert.Equal(t, []int{0, 3}, m.Exchanges().Indexes())

	m, err = ParseMove([]string{"1@0,1", "0@0,0"})
	assert.Nil(t, err)
	assert.Equal(t, move.MoveTypePlay, m.Action())
	assert.Equal(t, []int{0, 1}, m.Plays().Indexes())

	for _, bad := range [][]string{nil, {"exchange", "x"}, {"0@0"}, {"0@0,0", "0@1,0"}} {
		_, err = ParseMove(bad)
		assert.ErrorIs(t, err, errUnrecognizedMove)
	}
}

func TestGameOptions(t *testing.T) {
	cfg := &config.Config{}
	assert.Nil(t, cfg.Load([]string{"--players", "3"}))

	opts := &GameOptions{}
	opts.SetDefaults(cfg)
	assert.Equal(t, 3, opts.Players)
	assert.Equal(t, 3, opts.Copies)
	assert.Equal(t, 6, opts.HandLen)
	assert.NotNil(t, opts.FirstPlayer)

	assert.Nil(t, opts.Set("hand-len", "4"))
	assert.Nil(t, opts.Set("first", "lowest"))
	assert.Equal(t, 4, opts.HandLen)
	assert.Equal(t, 1, opts.FirstPlayer([]int{1, 2}))
	assert.Equal(t, "players: 3, copies: 3, hand-len: 4, first: lowest", opts.ToDisplayString())

	assert.NotNil(t, opts.Set("hand-len", "-1"))
	assert.NotNil(t, opts.Set("colors", "4"))
	assert.NotNil(t, opts.Set("first", "oldest"))
}
