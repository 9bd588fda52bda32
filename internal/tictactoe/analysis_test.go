package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	t.Run("Board in play", func(t *testing.T) {
		// Given: X to move with an immediate win
		board := mustParse(t, "XX./OO./...")

		// When: analysing it
		analysis := Analyze(board)

		// Then: the queries and the search agree
		assert.Equal(t, PlayerX, analysis.Player)
		assert.Equal(t, NoPlayer, analysis.Winner)
		assert.False(t, analysis.Terminal)
		assert.Equal(t, 0, analysis.Utility)
		assert.Equal(t, 1, analysis.Value)
		assert.Len(t, analysis.LegalActions, 5)
		require.NotNil(t, analysis.OptimalAction)
		assert.Equal(t, Action{Row: 0, Col: 2}, *analysis.OptimalAction)
	})

	t.Run("Finished board", func(t *testing.T) {
		analysis := Analyze(mustParse(t, "OOO/XX./X.."))

		assert.Equal(t, NoPlayer, analysis.Player)
		assert.Equal(t, PlayerO, analysis.Winner)
		assert.True(t, analysis.Terminal)
		assert.Equal(t, -1, analysis.Utility)
		assert.Equal(t, -1, analysis.Value)
		assert.Nil(t, analysis.OptimalAction)
	})
}
