package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// openingAction is played on the empty board without searching. Every
// opening has the same value, so the corner is as good as any other.
var openingAction = Action{Row: 0, Col: 0}

// OptimalAction returns the best action for the player to move. X maximises
// and O minimises the utility; among equally good actions the first one in
// row-major order is chosen. Terminal boards have no action and yield
// ErrGameOver.
func OptimalAction(board Board) (Action, error) {
	if board.IsTerminal() {
		return Action{}, apperror.ErrGameOver
	}

	if board.IsEmpty() {
		return openingAction, nil
	}

	maximizing := board.CurrentPlayer() == PlayerX

	var (
		best     Action
		bestSeen bool
		bestVal  int
	)

	for _, action := range board.LegalActions() {
		next := mustApply(board, action)

		var value int
		if maximizing {
			value = minValue(next)
		} else {
			value = maxValue(next)
		}

		if !bestSeen || (maximizing && value > bestVal) || (!maximizing && value < bestVal) {
			best, bestVal, bestSeen = action, value, true
		}
	}

	return best, nil
}

// Value returns the game-theoretic value of the board under optimal play by
// both sides, from X's point of view.
func Value(board Board) int {
	if board.CurrentPlayer() == PlayerO {
		return minValue(board)
	}

	return maxValue(board)
}

func maxValue(board Board) int {
	if board.IsTerminal() {
		return board.Utility()
	}

	value := -2
	for _, action := range board.LegalActions() {
		value = max(value, minValue(mustApply(board, action)))
	}

	return value
}

func minValue(board Board) int {
	if board.IsTerminal() {
		return board.Utility()
	}

	value := 2
	for _, action := range board.LegalActions() {
		value = min(value, maxValue(mustApply(board, action)))
	}

	return value
}

// mustApply is used on actions taken from LegalActions of a non-terminal
// board, which cannot fail.
func mustApply(board Board, action Action) Board {
	next, err := board.ApplyAction(action)
	if err != nil {
		panic(err)
	}

	return next
}
