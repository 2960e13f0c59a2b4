// Package main is the entry point for the gateway. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/clients/upstream"
	adapthttp "github.com/jsamuelsen11/storeops-gateway/internal/adapters/http"
	"github.com/jsamuelsen11/storeops-gateway/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/storeops-gateway/internal/app"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/config"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/health"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/httpclient"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/logging"
	"github.com/jsamuelsen11/storeops-gateway/internal/platform/telemetry"
	"github.com/jsamuelsen11/storeops-gateway/internal/ports"
)

const (
	otelShutdownTimeout = 5 * time.Second

	// timeoutMargin leaves room to write the TIMEOUT envelope before the
	// server's own write deadline closes the connection.
	timeoutMargin = 2 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := telemetry.Setup(ctx, &cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	logger.Info("gateway configured",
		slog.String("profile", profile),
		slog.String("mode", cfg.Gateway.Mode),
		slog.Int("max_retries", cfg.Gateway.Retry.MaxRetries),
		slog.Duration("base_delay", cfg.Gateway.Retry.BaseDelay),
	)

	// Serve until SIGINT or SIGTERM, then drain.
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := server.Run(sigCtx)
	if serveErr != nil {
		logger.Error("http server stopped with error", slog.Any("error", serveErr))
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return serveErr
}

// requestTimeout is the deadline the Timeout middleware enforces.
func requestTimeout(cfg *config.Config) time.Duration {
	if d := cfg.Server.WriteTimeout - timeoutMargin; d > 0 {
		return d
	}
	return cfg.Server.WriteTimeout
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// One upstream client per route family, each with its own breaker and
	// limiter, registered with the readiness check as it is built.
	do.Provide(injector, func(i do.Injector) (app.Routes, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		policy := httpclient.PolicyFromConfig(&cfg.Gateway.Retry)
		upstreams := &cfg.Gateway.Upstreams

		route := func(name string, uc *config.UpstreamConfig) app.Route {
			client := upstream.New(
				httpclient.New(uc, policy, name, metrics, logger),
				cfg.Gateway.DevMode(),
				logger,
			)
			registry.Register(client)
			return app.Route{Upstream: client, ServiceToken: uc.ServiceToken}
		}

		return app.Routes{
			Maintenance:    route(config.UpstreamMaintenance, &upstreams.Maintenance),
			QA:             route(config.UpstreamQA, &upstreams.QA),
			Report:         route(config.UpstreamReport, &upstreams.Report),
			Auth:           route(config.UpstreamAuth, &upstreams.Auth),
			ServiceClients: route(config.UpstreamServiceClients, &upstreams.ServiceClients),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.GatewayService, error) {
		routes := do.MustInvoke[app.Routes](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewGatewayService(routes, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		svc := do.MustInvoke[ports.GatewayService](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return adapthttp.NewHandlers(svc, registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, middleware.Standard(middleware.Options{
			Logger:  logger,
			Metrics: metrics,
			Timeout: requestTimeout(cfg),
		})), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
