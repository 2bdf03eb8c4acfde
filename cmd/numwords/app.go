package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/numwords/pkg/api"
	"github.com/dmitrymomot/numwords/pkg/config"
	"github.com/dmitrymomot/numwords/pkg/logger"
	"github.com/dmitrymomot/numwords/pkg/wordbook"
)

// app is the state shared by every command: the configuration, the logger
// and the word packs.
type app struct {
	envFiles []string
	cfg      config.Config
	log      *slog.Logger
}

// load reads the env files and the configuration and builds the logger.
func (a *app) load() error {
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			return err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return err
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level, err := logger.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	format, err := logger.ParseFormat(a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.log = logger.New(
		logger.WithEnvironment(a.cfg.Env, "numwords"),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(api.RequestIDExtractor()),
	)
	return nil
}

// book loads the built-in packs layered under the configured words path.
func (a *app) book(ctx context.Context) (*wordbook.Book, error) {
	return a.cfg.Book(ctx, a.log.With(logger.Component("wordbook")))
}
