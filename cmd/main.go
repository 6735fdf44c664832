package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/jrh3k5/cryptonabber-etherscan-export/internal/component"
	"github.com/jrh3k5/cryptonabber-etherscan-export/internal/config"
	"github.com/jrh3k5/cryptonabber-etherscan-export/internal/etherscan"
	ctsslog "github.com/jrh3k5/cryptonabber-etherscan-export/internal/logging/slog"
)

const (
	exitCodeUserError   = 1
	exitCodeSystemError = 2
)

type options struct {
	DataDir string `long:"data-dir" env:"KBC_DATADIR" default:"/data" description:"Path of the data directory supplied by the hosting platform"`
}

func main() {
	ctx := context.Background()

	logLevel := new(slog.LevelVar)
	slog.SetDefault(slog.New(ctsslog.NewHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return
		}

		slog.ErrorContext(ctx, fmt.Sprintf("Failed to parse command-line flags: %v", err))

		os.Exit(exitCodeUserError)
	}

	if err := run(ctx, opts.DataDir, logLevel); err != nil {
		if component.IsUserError(err) {
			slog.ErrorContext(ctx, fmt.Sprintf("Configuration error: %v", err))

			os.Exit(exitCodeUserError)
		}

		slog.ErrorContext(ctx, fmt.Sprintf("Execution failed: %v", err))

		os.Exit(exitCodeSystemError)
	}
}

func run(ctx context.Context, dataDir string, logLevel *slog.LevelVar) error {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return component.NewUserError(err)
	}

	if cfg.Parameters.Debug {
		logLevel.Set(slog.LevelDebug)
		slog.DebugContext(ctx, "Debug logging enabled")
	}

	comp := component.New(dataDir, http.DefaultClient, etherscan.DefaultBaseURL)

	return comp.Run(ctx, &cfg.Parameters)
}
