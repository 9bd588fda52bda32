package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// ApplyAction returns the board that results from the current player marking
// the cell named by action. The receiver is left untouched.
func (that Board) ApplyAction(action Action) (Board, error) {
	if that.IsTerminal() {
		return that, apperror.ErrGameOver
	}

	if !action.InBounds() {
		return that, fmt.Errorf("%w: cell (%d, %d) is out of range", apperror.ErrInvalidAction, action.Row, action.Col)
	}

	if that.At(action) != Empty {
		return that, fmt.Errorf("%w: cell (%d, %d) is already occupied", apperror.ErrInvalidAction, action.Row, action.Col)
	}

	next := that
	next[action.Row][action.Col] = that.CurrentPlayer().Mark()

	return next, nil
}
