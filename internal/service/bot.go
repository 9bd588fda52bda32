package service

import (
	"context"
	"fmt"
	"time"

	"github.com/coder/quartz"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	ChooseAction(ctx context.Context, board tictactoe.Board) (tictactoe.Action, error)
}

type botService struct {
	clock   quartz.Clock
	timeout time.Duration
	search  func(tictactoe.Board) (tictactoe.Action, error)
}

// NewBotService - the bot plays the minimax action. A zero timeout lets the
// search run as long as ctx allows.
func NewBotService(clock quartz.Clock, timeout time.Duration) BotService {
	return &botService{
		clock:   clock,
		timeout: timeout,
		search:  tictactoe.OptimalAction,
	}
}

type searchResult struct {
	action tictactoe.Action
	err    error
}

func (that *botService) ChooseAction(ctx context.Context, board tictactoe.Board) (tictactoe.Action, error) {
	if err := ctx.Err(); err != nil {
		return tictactoe.Action{}, fmt.Errorf("bot search canceled: %w", err)
	}

	// buffered so an abandoned search can still finish and exit
	resultCh := make(chan searchResult, 1)
	go func() {
		action, err := that.search(board)
		resultCh <- searchResult{action: action, err: err}
	}()

	var timeoutCh <-chan time.Time
	if that.timeout > 0 {
		timer := that.clock.NewTimer(that.timeout, "bot", "search")
		defer timer.Stop()

		timeoutCh = timer.C
	}

	select {
	case res := <-resultCh:
		if res.err != nil {
			return tictactoe.Action{}, fmt.Errorf("bot failed to choose action: %w", res.err)
		}

		return res.action, nil
	case <-timeoutCh:
		return tictactoe.Action{}, fmt.Errorf("%w after %s", apperror.ErrBotTimeout, that.timeout)
	case <-ctx.Done():
		return tictactoe.Action{}, fmt.Errorf("bot search canceled: %w", ctx.Err())
	}
}
