// Package app wires configuration, the engine and the HTTP server together
// for the binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethiomorph/ethiomorph"
	"github.com/ethiomorph/ethiomorph/internal/api"
	"github.com/ethiomorph/ethiomorph/internal/config"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// OpenEngine loads the engine from cfg.DataDir, or from the embedded data
// set when it is empty.
func OpenEngine(cfg *config.Config, logger *zap.Logger) (*ethiomorph.Engine, error) {
	var (
		engine *ethiomorph.Engine
		err    error
	)
	if cfg.DataDir == "" {
		logger.Info("loading embedded data")
		engine, err = ethiomorph.NewDefault(ethiomorph.WithLogger(logger))
	} else {
		logger.Info("loading data", zap.String("dir", cfg.DataDir))
		engine, err = ethiomorph.New(cfg.DataDir, ethiomorph.WithLogger(logger))
	}
	if err != nil {
		return nil, fmt.Errorf("load data: %w", err)
	}
	return engine, nil
}

// Serve runs the API on cfg.Addr until ctx is cancelled, then shuts the
// server down gracefully.
func Serve(ctx context.Context, cfg *config.Config, engine *ethiomorph.Engine, logger *zap.Logger) error {
	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: api.NewRouter(engine, api.Options{
			Logger:      logger,
			CORSOrigins: cfg.CORSOrigins,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
