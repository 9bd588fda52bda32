package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coder/quartz"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type GameService interface {
	NewGame(ctx context.Context, humanMark tictactoe.Player) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, action tictactoe.Action) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error

	Suggest(ctx context.Context, board tictactoe.Board) (tictactoe.Action, error)
	Analyze(board tictactoe.Board) tictactoe.Analysis
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameService struct {
	logger *slog.Logger
	clock  quartz.Clock

	gameRepo   gameRepo
	botService BotService
	newID      func() (string, error)
}

func NewGameService(logger *slog.Logger, clock quartz.Clock, gameRepo gameRepo, botService BotService) GameService {
	return &gameService{
		logger:     logger.With("component", "gameService"),
		clock:      clock,
		gameRepo:   gameRepo,
		botService: botService,
		newID:      pkg.GenerateGameID,
	}
}

func (that *gameService) NewGame(ctx context.Context, humanMark tictactoe.Player) (*entity.Game, error) {
	if humanMark != tictactoe.PlayerX && humanMark != tictactoe.PlayerO {
		return nil, apperror.ErrInvalidMark
	}

	gameID, err := that.newID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(gameID, humanMark, that.clock.Now())

	if game.IsBotTurn() {
		if err = that.botTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Debug("game created", "gameID", game.ID, "human", humanMark.String())

	return game, nil
}

func (that *gameService) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve game from storage: %w", err)
	}

	return game, nil
}

func (that *gameService) MakeTurn(ctx context.Context, id string, action tictactoe.Action) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.IsFinished() {
		return game, apperror.ErrGameOver
	}

	if !game.IsHumanTurn() {
		return game, apperror.ErrNotYourTurn
	}

	if err = game.Play(action, that.clock.Now()); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsBotTurn() {
		if err = that.botTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "winner", game.Winner, "moves", len(game.Moves))
	}

	return game, nil
}

func (that *gameService) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

func (that *gameService) Suggest(ctx context.Context, board tictactoe.Board) (tictactoe.Action, error) {
	action, err := that.botService.ChooseAction(ctx, board)
	if err != nil {
		return tictactoe.Action{}, fmt.Errorf("failed to suggest action: %w", err)
	}

	return action, nil
}

func (that *gameService) Analyze(board tictactoe.Board) tictactoe.Analysis {
	return tictactoe.Analyze(board)
}

func (that *gameService) botTurn(ctx context.Context, game *entity.Game) error {
	action, err := that.botService.ChooseAction(ctx, game.Board)
	if err != nil {
		return fmt.Errorf("failed to choose action: %w", err)
	}

	if err = game.Play(action, that.clock.Now()); err != nil {
		return fmt.Errorf("failed to play action: %w", err)
	}

	that.logger.Debug("bot played", "gameID", game.ID, "row", action.Row, "col", action.Col)

	return nil
}
