package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numwords/pkg/api"
	"github.com/dmitrymomot/numwords/pkg/httpserver"
	"github.com/dmitrymomot/numwords/pkg/logger"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the conversion API over HTTP",
		Long: `Serve the conversion API. Configuration comes from NUMWORDS_* environment
variables; see the config package for the full list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.HTTP.Addr = addr
			}
			return runServe(cmd.Context(), a)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides NUMWORDS_HTTP_ADDR")
	return cmd
}

func runServe(ctx context.Context, a *app) error {
	book, err := a.book(ctx)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := api.NewMetrics(reg)
	if err != nil {
		return err
	}

	log := a.log.With(logger.Component("api"))
	handler, err := api.NewHandler(book,
		api.WithBaseOptions(a.cfg.Options),
		api.WithLogger(log),
		api.WithMetrics(metrics, reg),
		api.WithMaxBodyBytes(a.cfg.HTTP.MaxBodyBytes),
		api.WithRateLimit(api.RateLimit{
			Burst:      a.cfg.HTTP.RateLimitBurst,
			Interval:   a.cfg.HTTP.RateLimitInterval,
			TrustProxy: a.cfg.HTTP.TrustProxy,
		}),
	)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, handler)
}
