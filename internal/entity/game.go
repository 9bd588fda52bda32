package entity

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

// Game is a session between a human and the engine.
type Game struct {
	ID        string             `json:"id"`
	Board     tictactoe.Board    `json:"board"`
	HumanMark tictactoe.Player   `json:"human_mark"`
	BotMark   tictactoe.Player   `json:"bot_mark"`
	Turn      tictactoe.Player   `json:"player_turn"`
	Winner    string             `json:"winner"`
	Status    string             `json:"status"`
	Moves     []tictactoe.Action `json:"moves"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func NewGame(id string, humanMark tictactoe.Player, now time.Time) *Game {
	game := &Game{
		ID:        id,
		Board:     tictactoe.InitialState(),
		HumanMark: humanMark,
		BotMark:   humanMark.Opponent(),
		Moves:     []tictactoe.Action{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	game.Refresh()

	return game
}

// Refresh - derives turn, winner and status from the board.
func (that *Game) Refresh() {
	that.Turn = that.Board.CurrentPlayer()

	if !that.Board.IsTerminal() {
		that.Winner = ""
		that.Status = StatusOngoing
		return
	}

	that.Status = StatusFinished
	if winner := that.Board.Winner(); winner != tictactoe.NoPlayer {
		that.Winner = winner.String()
	} else {
		that.Winner = PlayerTie
	}
}

// Play - applies an action for whoever is to move and records it.
func (that *Game) Play(action tictactoe.Action, now time.Time) error {
	next, err := that.Board.ApplyAction(action)
	if err != nil {
		return err //nolint: wrapcheck // engine errors are part of the contract
	}

	that.Board = next
	that.Moves = append(that.Moves, action)
	that.UpdatedAt = now
	that.Refresh()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsHumanTurn() bool {
	return that.IsOngoing() && that.Turn == that.HumanMark
}

func (that *Game) IsBotTurn() bool {
	return that.IsOngoing() && that.Turn == that.BotMark
}
