package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/ledger-atlas/pkg/runtime/terminal"
	"github.com/de-tools/ledger-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/ledger-atlas/pkg/services/config"
	stripeledger "github.com/de-tools/ledger-atlas/pkg/services/ledger/stripe"
)

func main() {
	settings, err := config.Load(os.Getenv("LEDGER_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := zerolog.InfoLevel
	if settings.Debug {
		level = zerolog.DebugLevel
		stripeledger.EnableDebugLogging()
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
	ctx := logger.WithContext(context.Background())

	cli := terminal.NewCLI(terminal.Options{
		Environ:  os.Environ(),
		Settings: settings,
		Output:   os.Stdout,
	})

	if err := cli.ExecuteContext(ctx); err != nil {
		if errors.Is(err, commands.ErrCancelled) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
