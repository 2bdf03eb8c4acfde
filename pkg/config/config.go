package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/numwords/pkg/logger"
	"github.com/dmitrymomot/numwords/pkg/numwords"
	"github.com/dmitrymomot/numwords/pkg/wordbook"
)

// Config is the runtime configuration of the numwords binary. Every variable
// carries the NUMWORDS_ prefix.
type Config struct {
	Env       string `env:"NUMWORDS_ENV" envDefault:"development"`
	LogLevel  string `env:"NUMWORDS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"NUMWORDS_LOG_FORMAT" envDefault:"text"`

	// Language is the word pack used when a caller does not name one.
	Language string `env:"NUMWORDS_LANGUAGE" envDefault:"en-in"`
	// WordsPath is a pack file or a directory of pack files layered over
	// the built-in packs.
	WordsPath string `env:"NUMWORDS_WORDS_PATH"`

	// Options override the library defaults, e.g. NUMWORDS_OPT_USE_COMMA=true.
	Options numwords.Overrides `envPrefix:"NUMWORDS_OPT_"`

	HTTP HTTPConfig `envPrefix:"NUMWORDS_HTTP_"`
}

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Addr              string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"2s"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MaxBodyBytes      int64         `env:"MAX_BODY_BYTES" envDefault:"65536"`

	// RateLimitBurst is the number of /v1 requests a client may make at
	// once. Zero disables rate limiting.
	RateLimitBurst int `env:"RATE_LIMIT_BURST" envDefault:"0"`
	// RateLimitInterval is how often a client regains one request.
	RateLimitInterval time.Duration `env:"RATE_LIMIT_INTERVAL" envDefault:"1s"`
	// TrustProxy keys rate limits by X-Forwarded-For and X-Real-IP.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
}

// Validate checks the values the environment parser cannot check.
func (c Config) Validate() error {
	var errs []error
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := logger.ParseFormat(c.LogFormat); err != nil {
		errs = append(errs, err)
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("max body bytes must be positive"))
	}
	if c.HTTP.RateLimitBurst < 0 {
		errs = append(errs, errors.New("rate limit burst must not be negative"))
	}
	if c.HTTP.RateLimitBurst > 0 && c.HTTP.RateLimitInterval <= 0 {
		errs = append(errs, errors.New("rate limit interval must be positive"))
	}
	if _, err := c.Converter().ToWords(0); err != nil {
		errs = append(errs, fmt.Errorf("options: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// ConvertOptions returns the library defaults with the configured overrides applied.
func (c Config) ConvertOptions() numwords.Options {
	opts := numwords.DefaultOptions()
	c.Options.Apply(&opts)
	return opts
}

// Converter returns a converter with the configured options and the default
// English words, with opts applied on top.
func (c Config) Converter(opts ...numwords.Option) *numwords.Converter {
	return numwords.NewFromConfig(c.ConvertOptions(), numwords.DefaultWords(), opts...)
}

// WordSource returns the built-in packs, layered under WordsPath when set.
func (c Config) WordSource(log *slog.Logger) (wordbook.Source, error) {
	if c.WordsPath == "" {
		return wordbook.Builtin(), nil
	}

	info, err := os.Stat(c.WordsPath)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if info.IsDir() {
		return wordbook.Layered(wordbook.Builtin(), wordbook.NewDirectorySource(nil, c.WordsPath, log)), nil
	}
	return wordbook.Layered(wordbook.Builtin(), wordbook.NewFileSource(nil, c.WordsPath)), nil
}

// Book loads the word packs and makes Language the default.
func (c Config) Book(ctx context.Context, log *slog.Logger) (*wordbook.Book, error) {
	src, err := c.WordSource(log)
	if err != nil {
		return nil, err
	}
	return wordbook.New(ctx, src,
		wordbook.WithDefaultLanguage(c.Language),
		wordbook.WithLogger(log),
	)
}
