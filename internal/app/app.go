package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/haguru/signupgate/config"
	"github.com/haguru/signupgate/internal/interfaces"
	"github.com/haguru/signupgate/internal/routes"
	"github.com/haguru/signupgate/internal/server"
	"github.com/haguru/signupgate/internal/signup"
	"github.com/haguru/signupgate/pkg/httpclient"
	"github.com/haguru/signupgate/pkg/metrics"
	"github.com/haguru/signupgate/pkg/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App represents the main application, containing server and configuration.
type App struct {
	Server  interfaces.Server
	Config  *config.ServiceConfig
	Logger  interfaces.Logger
	Metrics interfaces.Metrics
}

// NewApp creates and configures a new App instance from the config at configPath.
func NewApp(configPath string) (*App, error) {
	cfg, err := config.ReadLocalConfig(configPath)
	if err != nil {
		return nil, err
	}

	validator := structValidator.New()
	if err := config.Validate(validator, cfg); err != nil {
		return nil, err
	}

	logger := zerolog.NewZerologLogger(cfg.ServiceName)
	logger.SetLevel(cfg.LogLevel)

	return newApp(cfg, logger, validator)
}

func newApp(cfg *config.ServiceConfig, logger interfaces.Logger, validator *structValidator.Validate) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	app.Server = server.NewServer(cfg.Host, cfg.Port, logger)
	app.Metrics = app.initializeMetrics()

	adapter := signup.NewAdapter(cfg.Downstream.BaseURL, logger, validator)
	client := httpclient.NewHTTPClient(cfg.Downstream.Timeout)
	route := routes.NewRoute(app.Metrics, adapter, client, logger)

	metricsHandler := promhttp.HandlerFor(
		app.Metrics.GetRegistry(),
		promhttp.HandlerOpts{})

	tracedMetricsHandler := otelhttp.NewHandler(metricsHandler, routes.MetricsRouteAPI)

	if err := app.Server.AddRoute(routes.MetricsRouteAPI, tracedMetricsHandler.ServeHTTP); err != nil {
		return nil, fmt.Errorf("failed to add metrics route: %w", err)
	}

	tracedSignupHandler := otelhttp.NewHandler(http.HandlerFunc(route.Signup), routes.SignupRouteAPI)
	if err := app.Server.AddRoute(routes.SignupRouteAPI, tracedSignupHandler.ServeHTTP); err != nil {
		return nil, fmt.Errorf("failed to add signup route: %w", err)
	}

	logger.Info("Signup adapter ready", "downstream", cfg.Downstream.BaseURL+signup.SignupPath)
	return app, nil
}

// Run serves until SIGINT or SIGTERM, then shuts the server down gracefully.
func (app *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.serve(ctx)
}

func (app *App) serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.ShutdownTimeout)
	defer cancel()

	shutdownErr := app.Server.Shutdown(shutdownCtx)
	serveErr := <-errCh
	return errors.Join(shutdownErr, serveErr)
}

func (app *App) initializeMetrics() interfaces.Metrics {
	appMetrics := metrics.NewMetrics(app.Config.ServiceName)
	routes.RegisterMetrics(appMetrics)
	return appMetrics
}
