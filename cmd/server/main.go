// Command server exposes the Ge'ez morphology engine as a JSON REST API.
//
// Settings come from flags, ETHIOMORPH_* environment variables or an
// ethiomorph.yaml file. See internal/api for the endpoints.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethiomorph/ethiomorph/internal/app"
	"github.com/ethiomorph/ethiomorph/internal/config"
	"github.com/ethiomorph/ethiomorph/internal/logging"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	flags := pflag.NewFlagSet("server", pflag.ExitOnError)
	configFile := flags.String("config", "", "config file (default: ./ethiomorph.yaml if present)")
	flags.String("data-dir", "", "directory holding lexicon.json, templates.json and stems.json (default: embedded data)")
	flags.String("addr", config.DefaultAddr, "listen address")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (json or console)")
	flags.StringSlice("cors-origins", []string{"*"}, "allowed CORS origins")
	_ = flags.Parse(os.Args[1:])

	if err := run(*configFile, flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configFile string, flags *pflag.FlagSet) error {
	cfg, err := config.Load(configFile, flags)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	engine, err := app.OpenEngine(cfg, logger)
	if err != nil {
		return err
	}
	roots, nouns := engine.Lexicon().Len()
	logger.Info("data loaded", zap.Int("roots", roots), zap.Int("nouns", nouns))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.Serve(ctx, cfg, engine, logger)
}
