package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func plainRenderer(out *bytes.Buffer) *render.Renderer {
	return render.New(out, termenv.Ascii)
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		line    string
		want    tictactoe.Action
		wantErr bool
	}{
		{line: "1 1", want: tictactoe.Action{Row: 0, Col: 0}},
		{line: "3,2", want: tictactoe.Action{Row: 2, Col: 1}},
		{line: "  2 , 3 ", want: tictactoe.Action{Row: 1, Col: 2}},
		{line: "1", wantErr: true},
		{line: "a b", wantErr: true},
		{line: "1 2 3", wantErr: true},
	}

	for _, tt := range tests {
		action, err := parseMove(tt.line)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrBadInput, tt.line)
			continue
		}

		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, action, tt.line)
	}
}

func TestPlayGame(t *testing.T) {
	t.Run("Game runs to the end", func(t *testing.T) {
		// Given: the human plays O and tries every cell in order
		var out bytes.Buffer
		input := strings.NewReader("1 1\n1 2\n1 3\n2 1\n2 2\n2 3\n3 1\n3 2\n3 3\n")

		// When: playing against the engine
		err := playGame(input, &out, plainRenderer(&out), tictactoe.PlayerO)

		// Then: the engine opens in the corner and the game finishes
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Engine plays 1 1")
		assert.Contains(t, out.String(), "already occupied")
		assert.NotContains(t, out.String(), "Game in progress")
	})

	t.Run("Out of range input is rejected", func(t *testing.T) {
		var out bytes.Buffer

		err := playGame(strings.NewReader("9 9\n"), &out, plainRenderer(&out), tictactoe.PlayerX)

		require.ErrorIs(t, err, ErrInputClosed)
		assert.Contains(t, out.String(), "invalid action")
	})

	t.Run("Closed input", func(t *testing.T) {
		var out bytes.Buffer

		err := playGame(strings.NewReader(""), &out, plainRenderer(&out), tictactoe.PlayerX)

		require.ErrorIs(t, err, ErrInputClosed)
	})
}

func TestSelfPlay(t *testing.T) {
	// Given: the engine on both sides
	var out bytes.Buffer

	// When: playing from the empty board
	err := selfPlay(&out, plainRenderer(&out))

	// Then: perfect play ends in a draw after nine plies
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Ply 1: X plays 1 1")
	assert.Contains(t, out.String(), "Ply 9:")
	assert.NotContains(t, out.String(), "Ply 10:")
	assert.Contains(t, out.String(), "Draw")
}

func TestSuggest(t *testing.T) {
	t.Run("Board in play", func(t *testing.T) {
		var out bytes.Buffer
		board, err := tictactoe.ParseBoard("XX./OO./...")
		require.NoError(t, err)

		require.NoError(t, suggest(&out, board))

		assert.Equal(t, "player: X\nvalue: 1\naction: 1 3\n", out.String())
	})

	t.Run("Finished board", func(t *testing.T) {
		var out bytes.Buffer
		board, err := tictactoe.ParseBoard("XXX/OO./...")
		require.NoError(t, err)

		require.NoError(t, suggest(&out, board))

		assert.Equal(t, "terminal: winner=\"X\" utility=1\n", out.String())
	})
}

func TestLoadConfig(t *testing.T) {
	// Given: no config file on disk
	path := filepath.Join(t.TempDir(), "missing.yml")

	// When: loading the config
	conf, err := loadConfig(path)

	// Then: defaults come from the environment layer
	require.NoError(t, err)
	assert.Equal(t, "9090", conf.HTTPPort)
	assert.Equal(t, "9091", conf.SocketPort)
}
