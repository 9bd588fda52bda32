package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const shutdownTimeout = 5 * time.Second

type gameService interface {
	NewGame(ctx context.Context, humanMark tictactoe.Player) (*entity.Game, error)
	GetGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, id string, action tictactoe.Action) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error

	Suggest(ctx context.Context, board tictactoe.Board) (tictactoe.Action, error)
	Analyze(board tictactoe.Board) tictactoe.Analysis
}

type Server struct {
	logger      *slog.Logger
	gameService gameService
	router      *chi.Mux
}

func New(logger *slog.Logger, gameService gameService) *Server {
	server := &Server{
		logger:      logger.With("component", "rest"),
		gameService: gameService,
		router:      chi.NewRouter(),
	}

	server.router.Use(middleware.RequestID)
	server.router.Use(middleware.Recoverer)
	server.router.Use(middleware.Timeout(30 * time.Second))

	server.router.Get("/ping", server.pingHandler)

	server.router.Route("/api/v1", func(r chi.Router) {
		r.Route("/board", func(r chi.Router) {
			r.Post("/analyze", server.analyzeBoard)
			r.Post("/optimal-action", server.optimalAction)
			r.Post("/apply", server.applyAction)
		})

		r.Route("/games", func(r chi.Router) {
			r.Post("/", server.createGame)
			r.Get("/{id}", server.getGame)
			r.Delete("/{id}", server.deleteGame)
			r.Post("/{id}/turns", server.makeTurn)
		})
	})

	return server
}

// Handler - exposes the router, mostly for tests.
func (that *Server) Handler() http.Handler {
	return that.router
}

// Start - serves HTTP on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 40 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
