package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/muesli/termenv"

	app "github.com/rocketscienceinc/tictactoe-engine/internal"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/render"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

var (
	ErrInputClosed = errors.New("input closed before the game ended")
	ErrBadInput    = errors.New("expected a row and a column between 1 and 3")
)

type ServeCmd struct{}

func (that *ServeCmd) Run(globals *Globals) error {
	conf, err := loadConfig(globals.Config)
	if err != nil {
		return err
	}

	logger := initLogger(conf.LogLevel, conf.LogFormat)
	log := logger.With("component", "main")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	if err = app.RunApp(ctx, logger, conf); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// loadConfig - uses the file when it exists and the environment otherwise.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return config.LoadEnv() //nolint: wrapcheck // already wrapped
	}

	return config.Load(path) //nolint: wrapcheck // already wrapped
}

type PlayCmd struct {
	Mark    string `short:"m" help:"Your mark: X moves first." default:"X" enum:"X,O,x,o"`
	NoColor bool   `help:"Disable colours."`
}

func (that *PlayCmd) Run(globals *Globals) error {
	human, err := tictactoe.ParsePlayer(that.Mark)
	if err != nil {
		return fmt.Errorf("invalid mark: %w", err)
	}

	logger := initLogger(globals.LogLevel, globals.LogFormat)
	logger.Debug("starting game", "human", human.String())

	renderer := render.New(os.Stdout, colorProfile(that.NoColor))

	return playGame(os.Stdin, os.Stdout, renderer, human)
}

// playGame - alternates human input and engine replies until the board is
// terminal.
func playGame(in io.Reader, out io.Writer, renderer *render.Renderer, human tictactoe.Player) error {
	scanner := bufio.NewScanner(in)
	board := tictactoe.InitialState()

	for !board.IsTerminal() {
		if board.CurrentPlayer() != human {
			action, err := tictactoe.OptimalAction(board)
			if err != nil {
				return fmt.Errorf("engine failed to move: %w", err)
			}

			if board, err = board.ApplyAction(action); err != nil {
				return fmt.Errorf("engine played an illegal move: %w", err)
			}

			fmt.Fprintf(out, "Engine plays %d %d\n", action.Row+1, action.Col+1)

			continue
		}

		fmt.Fprintln(out, renderer.Board(board))
		fmt.Fprintf(out, "Your move (%s), row and column: ", human)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}

			return ErrInputClosed
		}

		action, err := parseMove(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		next, err := board.ApplyAction(action)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		board = next
	}

	fmt.Fprintln(out, renderer.Board(board))
	fmt.Fprintln(out, renderer.Result(board))

	return nil
}

// parseMove - reads "row col" or "row,col", both 1-based.
func parseMove(line string) (tictactoe.Action, error) {
	fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(fields) != 2 {
		return tictactoe.Action{}, ErrBadInput
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return tictactoe.Action{}, ErrBadInput
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return tictactoe.Action{}, ErrBadInput
	}

	return tictactoe.Action{Row: row - 1, Col: col - 1}, nil
}

type SelfPlayCmd struct {
	NoColor bool `help:"Disable colours."`
}

func (that *SelfPlayCmd) Run(_ *Globals) error {
	return selfPlay(os.Stdout, render.New(os.Stdout, colorProfile(that.NoColor)))
}

func selfPlay(out io.Writer, renderer *render.Renderer) error {
	board := tictactoe.InitialState()

	for ply := 1; !board.IsTerminal(); ply++ {
		player := board.CurrentPlayer()

		action, err := tictactoe.OptimalAction(board)
		if err != nil {
			return fmt.Errorf("engine failed to move: %w", err)
		}

		if board, err = board.ApplyAction(action); err != nil {
			return fmt.Errorf("engine played an illegal move: %w", err)
		}

		fmt.Fprintf(out, "Ply %d: %s plays %d %d\n", ply, player, action.Row+1, action.Col+1)
	}

	fmt.Fprintln(out, renderer.Board(board))
	fmt.Fprintln(out, renderer.Result(board))

	return nil
}

type SuggestCmd struct {
	Board string `arg:"" help:"Nine cells row by row: X, O and '.' for empty; '/' may separate rows."`
}

func (that *SuggestCmd) Run(_ *Globals) error {
	board, err := tictactoe.ParseBoard(that.Board)
	if err != nil {
		return fmt.Errorf("failed to parse board: %w", err)
	}

	return suggest(os.Stdout, board)
}

func suggest(out io.Writer, board tictactoe.Board) error {
	analysis := tictactoe.Analyze(board)

	if analysis.Terminal {
		_, err := fmt.Fprintf(out, "terminal: winner=%q utility=%d\n", analysis.Winner.String(), analysis.Utility)
		return err //nolint: wrapcheck // plain write
	}

	_, err := fmt.Fprintf(out, "player: %s\nvalue: %d\naction: %d %d\n",
		analysis.Player, analysis.Value, analysis.OptimalAction.Row+1, analysis.OptimalAction.Col+1)

	return err //nolint: wrapcheck // plain write
}

func colorProfile(noColor bool) termenv.Profile {
	if noColor {
		return termenv.Ascii
	}

	return termenv.NewOutput(os.Stdout).EnvColorProfile()
}
