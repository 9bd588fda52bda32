package apperror

import "errors"

var (
	ErrGameOver      = errors.New("game is already over")
	ErrInvalidAction = errors.New("invalid action")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrGameNotFound  = errors.New("game not found")
	ErrInvalidMark   = errors.New("invalid mark")
	ErrBotTimeout    = errors.New("bot ran out of time")
)
