package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func TestRenderer_Board(t *testing.T) {
	// Given: a plain-text renderer and a board in play
	renderer := New(&bytes.Buffer{}, termenv.Ascii)
	board, err := tictactoe.ParseBoard("X.O/.X./...")
	require.NoError(t, err)

	// When: drawing the board
	out := renderer.Board(board)

	// Then: every row is labelled and the marks show up
	assert.Contains(t, out, "1 ")
	assert.Contains(t, out, "3 ")
	assert.Contains(t, out, "---+---+---")
	assert.Equal(t, 2, strings.Count(out, "X"))
	assert.Equal(t, 1, strings.Count(out, "O"))
}

func TestRenderer_Result(t *testing.T) {
	renderer := New(&bytes.Buffer{}, termenv.Ascii)

	tests := []struct {
		board string
		mark  string
		text  string
	}{
		{board: "XXX/OO./...", mark: "X", text: " wins"},
		{board: "OOO/XX./X..", mark: "O", text: " wins"},
		{board: "XOX/XOO/OXX", text: "Draw"},
		{board: "X../.../...", text: "Game in progress"},
	}

	for _, tt := range tests {
		board, err := tictactoe.ParseBoard(tt.board)
		require.NoError(t, err)

		result := renderer.Result(board)

		assert.Contains(t, result, tt.text, tt.board)
		assert.Contains(t, result, tt.mark, tt.board)
	}
}
