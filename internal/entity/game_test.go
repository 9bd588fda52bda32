package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var testNow = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

func mustBoard(t *testing.T, s string) tictactoe.Board {
	t.Helper()

	board, err := tictactoe.ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestNewGame(t *testing.T) {
	// When: a new game is created for a human playing O
	game := NewGame("123", tictactoe.PlayerO, testNow)

	// Then: the bot holds X and it is X's turn on an empty board
	expectedGame := &Game{
		ID:        "123",
		Board:     tictactoe.InitialState(),
		HumanMark: tictactoe.PlayerO,
		BotMark:   tictactoe.PlayerX,
		Turn:      tictactoe.PlayerX,
		Winner:    "",
		Status:    StatusOngoing,
		Moves:     []tictactoe.Action{},
		CreatedAt: testNow,
		UpdatedAt: testNow,
	}

	require.Equal(t, expectedGame, game)
	assert.True(t, game.IsBotTurn())
	assert.False(t, game.IsHumanTurn())
}

func TestGame_Refresh(t *testing.T) {
	t.Run("Finishes the game when X wins", func(t *testing.T) {
		// Given: a game where X has a winning line
		game := &Game{Board: mustBoard(t, "XXX/OO./..."), Status: StatusOngoing}

		// When: refreshing the derived state
		game.Refresh()

		// Then: X is the winner and nobody is to move
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, tictactoe.NoPlayer, game.Turn)
	})

	t.Run("Finishes the game on a tie", func(t *testing.T) {
		game := &Game{Board: mustBoard(t, "XOX/XOO/OXX"), Status: StatusOngoing}

		game.Refresh()

		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
		assert.True(t, game.IsFinished())
	})

	t.Run("Game remains ongoing when there is no winner or tie", func(t *testing.T) {
		game := &Game{Board: mustBoard(t, "XO./.X./..O")}

		game.Refresh()

		assert.Equal(t, StatusOngoing, game.Status)
		assert.Equal(t, "", game.Winner)
		assert.Equal(t, tictactoe.PlayerX, game.Turn)
	})
}

func TestGame_Play(t *testing.T) {
	t.Run("Successful turn", func(t *testing.T) {
		// Given: a new game where the human holds X
		game := NewGame("123", tictactoe.PlayerX, testNow)
		later := testNow.Add(time.Minute)

		// When: X plays the centre
		err := game.Play(tictactoe.Action{Row: 1, Col: 1}, later)
		require.NoError(t, err)

		// Then: the move is recorded and the turn passes to O
		assert.Equal(t, mustBoard(t, ".../.X./..."), game.Board)
		assert.Equal(t, []tictactoe.Action{{Row: 1, Col: 1}}, game.Moves)
		assert.Equal(t, tictactoe.PlayerO, game.Turn)
		assert.Equal(t, later, game.UpdatedAt)
		assert.Equal(t, testNow, game.CreatedAt)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: a game where the centre is taken
		game := NewGame("123", tictactoe.PlayerX, testNow)
		require.NoError(t, game.Play(tictactoe.Action{Row: 1, Col: 1}, testNow))

		// When: O tries the same cell
		err := game.Play(tictactoe.Action{Row: 1, Col: 1}, testNow)

		// Then: the engine rejects it and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidAction)
		assert.Len(t, game.Moves, 1)
		assert.Equal(t, tictactoe.PlayerO, game.Turn)
	})

	t.Run("Error after the game is over", func(t *testing.T) {
		game := &Game{Board: mustBoard(t, "XXX/OO./...")}
		game.Refresh()

		err := game.Play(tictactoe.Action{Row: 2, Col: 2}, testNow)

		require.ErrorIs(t, err, apperror.ErrGameOver)
	})
}
