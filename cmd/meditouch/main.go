// Command meditouch serves the AI menu generator and its terminal client.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Ngamdu/Meditouch/internal/infrastructure/config"
	"github.com/Ngamdu/Meditouch/internal/infrastructure/logging"
	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

// Globals are flags shared by every command.
type Globals struct {
	Config  string `help:"Path to the config file." type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging."`
}

// CLI is the command line of meditouch.
type CLI struct {
	Globals

	Serve   ServeCmd   `cmd:"" default:"1" help:"Run the menu generation HTTP server."`
	Menu    MenuCmd    `cmd:"" help:"Open the terminal menu generator."`
	History HistoryCmd `cmd:"" help:"List recent generation attempts."`
}

// runtime is what every command receives after config and logging are set up.
type runtime struct {
	ctx    context.Context
	store  *config.Store
	logger *zap.Logger
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("meditouch"),
		kong.Description("AI menu generator for the Meditouch portal."),
		kong.UsageOnError(),
	)

	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(store.Settings.Log.Level, cli.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	rt := &runtime{ctx: context.Background(), store: store, logger: logger}
	if err := kctx.Run(rt); err != nil {
		logger.Error("command failed", zap.String("command", kctx.Command()), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
