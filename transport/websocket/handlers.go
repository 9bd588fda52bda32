package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var (
	ErrGameIDRequired = errors.New("game_id is required")
	ErrBoardRequired  = errors.New("board is required")
)

func (that *Server) handleNewGame(ctx context.Context, req *RequestPayload) (*ResponsePayload, error) {
	game, err := that.gameService.NewGame(ctx, req.Mark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleGameTurn(ctx context.Context, req *RequestPayload) (*ResponsePayload, error) {
	if req.GameID == "" {
		return nil, ErrGameIDRequired
	}

	game, err := that.gameService.MakeTurn(ctx, req.GameID, tictactoe.Action{Row: req.Row, Col: req.Col})
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleGameState(ctx context.Context, req *RequestPayload) (*ResponsePayload, error) {
	if req.GameID == "" {
		return nil, ErrGameIDRequired
	}

	game, err := that.gameService.GetGame(ctx, req.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return &ResponsePayload{Game: game}, nil
}

func (that *Server) handleSuggest(ctx context.Context, req *RequestPayload) (*ResponsePayload, error) {
	if req.Board == nil {
		return nil, ErrBoardRequired
	}

	action, err := that.gameService.Suggest(ctx, *req.Board)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest action: %w", err)
	}

	return &ResponsePayload{Action: &action}, nil
}

func jsonUnmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return nil
}

func mustMarshal(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return b
}
