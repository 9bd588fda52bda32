package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type boardRequest struct {
	Board tictactoe.Board `json:"board"`
}

type applyRequest struct {
	Board  tictactoe.Board  `json:"board"`
	Action tictactoe.Action `json:"action"`
}

type createGameRequest struct {
	Mark tictactoe.Player `json:"mark"`
}

type actionResponse struct {
	Action tictactoe.Action `json:"action"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) analyzeBoard(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if !that.decode(w, r, &req) {
		return
	}

	that.writeJSON(w, http.StatusOK, that.gameService.Analyze(req.Board))
}

func (that *Server) optimalAction(w http.ResponseWriter, r *http.Request) {
	var req boardRequest
	if !that.decode(w, r, &req) {
		return
	}

	action, err := that.gameService.Suggest(r.Context(), req.Board)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, actionResponse{Action: action})
}

func (that *Server) applyAction(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if !that.decode(w, r, &req) {
		return
	}

	next, err := req.Board.ApplyAction(req.Action)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, boardRequest{Board: next})
}

func (that *Server) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if !that.decode(w, r, &req) {
		return
	}

	game, err := that.gameService.NewGame(r.Context(), req.Mark)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusCreated, game)
}

func (that *Server) getGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameService.GetGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) deleteGame(w http.ResponseWriter, r *http.Request) {
	if err := that.gameService.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
		that.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *Server) makeTurn(w http.ResponseWriter, r *http.Request) {
	var action tictactoe.Action
	if !that.decode(w, r, &action) {
		return
	}

	game, err := that.gameService.MakeTurn(r.Context(), chi.URLParam(r, "id"), action)
	if err != nil {
		that.writeError(w, err)
		return
	}

	that.writeJSON(w, http.StatusOK, game)
}

func (that *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %s", err)})
		return false
	}

	return true
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

func (that *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "error", err)
	}

	that.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrGameOver), errors.Is(err, apperror.ErrNotYourTurn):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidAction):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrInvalidMark):
		return http.StatusBadRequest
	case errors.Is(err, apperror.ErrBotTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
