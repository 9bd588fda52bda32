package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

// Globals - flags shared by every command.
type Globals struct {
	Config    string `short:"c" help:"Path to the config file." default:"config.yml" type:"path"`
	LogLevel  string `help:"Log level for commands without a config file (debug, info, warn, error)." default:"info"`
	LogFormat string `help:"Log format: text or json." default:"text" enum:"text,json"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version."`
	Serve    ServeCmd         `cmd:"" help:"Run the HTTP and WebSocket servers."`
	Play     PlayCmd          `cmd:"" help:"Play against the engine in the terminal."`
	SelfPlay SelfPlayCmd      `cmd:"selfplay" help:"Let the engine play both sides."`
	Suggest  SuggestCmd       `cmd:"" help:"Print the optimal action for a board."`
}

// main - is the entry point of the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("tictactoe"),
		kong.Description("Tic-tac-toe engine with exhaustive minimax search"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// initialize logger.
func initLogger(level, format string) *slog.Logger {
	logLevel, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		logLevel = log.InfoLevel
	}

	options := log.Options{
		Level:           logLevel,
		ReportTimestamp: true,
	}

	if format == "json" {
		options.Formatter = log.JSONFormatter
	}

	return slog.New(log.NewWithOptions(os.Stderr, options))
}
