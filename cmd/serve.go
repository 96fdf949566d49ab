package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go-canvas/config"
	"go-canvas/domain/room"
	"go-canvas/observability"
	"go-canvas/server"
)

func buildServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the drawing server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTPAddr = addr
			}
			return runServe(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

func runServe(parent context.Context, cfg config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := observability.NewLogger(cfg.Env, cfg.LogLevel)

	shutdownTracing, err := observability.SetupTracing(ctx, observability.TraceConfig{
		ServiceName:    "drawd",
		ServiceVersion: version,
		Environment:    cfg.Env,
		Endpoint:       cfg.Tracing.Endpoint,
		SamplingRate:   cfg.Tracing.SamplingRate,
		Insecure:       cfg.Tracing.Insecure,
	})
	tracing := err == nil && cfg.Tracing.Endpoint != ""
	if err != nil {
		logger.Warn("tracing disabled", "error", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracing shutdown", "error", err)
		}
	}()

	var metrics *observability.Metrics
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
		metricsPath = cfg.Metrics.Path
	}

	rooms := room.NewRegistry(
		room.WithDefaultSize(cfg.DefaultWidth, cfg.DefaultHeight),
		room.WithLogger(logger),
		room.WithMetrics(metrics),
	)
	srv := server.New(rooms, logger, metrics)
	h, err := srv.Handler(server.HandlerOptions{
		CORSAllow:       cfg.CORSAllow,
		MaxMessageBytes: cfg.MaxMessageBytes,
		MetricsPath:     metricsPath,
		Tracing:         tracing,
	})
	if err != nil {
		return err
	}
	return srv.ListenAndServe(ctx, cfg.HTTPAddr, h, cfg.ShutdownTimeout)
}
