// Package config loads the numwords runtime configuration from environment
// variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//     Later files override earlier ones and variables already set in the
//     environment are never replaced.
//   - Load parses the environment into any struct using `env` tags and caches
//     the result per type, so each configuration is parsed once per process.
//   - MustLoadEnv and MustLoad panic instead of returning an error.
//   - ForceReload and ResetCache drop cached values, which tests rely on.
//
// # Runtime configuration
//
// Config describes the numwords binary. Every variable is prefixed with
// NUMWORDS_:
//
//	NUMWORDS_ENV=production
//	NUMWORDS_LOG_LEVEL=debug
//	NUMWORDS_LOG_FORMAT=json
//	NUMWORDS_LANGUAGE=en
//	NUMWORDS_WORDS_PATH=/etc/numwords/packs
//	NUMWORDS_OPT_USE_COMMA=true
//	NUMWORDS_OPT_DECIMAL_PLACES=3
//	NUMWORDS_HTTP_ADDR=:8080
//	NUMWORDS_HTTP_SHUTDOWN_TIMEOUT=15s
//	NUMWORDS_HTTP_RATE_LIMIT_BURST=20
//	NUMWORDS_HTTP_RATE_LIMIT_INTERVAL=500ms
//
// The NUMWORDS_OPT_ variables map onto numwords.Overrides. Options left
// unset keep the library defaults.
//
// # Usage
//
//	var cfg config.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
//	book, err := cfg.Book(ctx, logger)
//	c := cfg.Converter()
//
// # Error Handling
//
// Errors wrap the sentinels of this package and can be compared with
// errors.Is: ErrParsingConfig, ErrLoadingEnvFile, ErrInvalidConfig,
// ErrConfigNotLoaded and ErrNilPointer.
package config
