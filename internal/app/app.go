package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/energyplus"
	"github.com/specialistvlad/osmforge/internal/idf"
	"github.com/specialistvlad/osmforge/internal/metrics"
)

// EngineRunner runs the simulation engine on exchange-format rows.
type EngineRunner interface {
	Run(ctx context.Context, rows []idf.Row, req energyplus.RunRequest) (*energyplus.RunResult, error)
}

// Publisher uploads run artifacts and returns where they were written.
type Publisher interface {
	Publish(ctx context.Context, files ...string) ([]string, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	ctx        context.Context
	config     *Config
	metrics    *metrics.Registry
	runner     EngineRunner
	publisher  Publisher
	httpClient *http.Client
	httpServer *http.Server
}

// Option customizes an App at construction.
type Option func(*App)

// WithRunner replaces the engine runner built from the configuration.
func WithRunner(r EngineRunner) Option {
	return func(a *App) { a.runner = r }
}

// WithPublisher replaces the S3 publisher built from the configuration.
func WithPublisher(p Publisher) Option {
	return func(a *App) { a.publisher = p }
}

// WithHTTPClient sets the client used for pre-signed uploads.
func WithHTTPClient(c *http.Client) Option {
	return func(a *App) { a.httpClient = c }
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger and metrics registry. A nil config is a programmer
// error and panics.
func NewApp(outW io.Writer, cfg *Config, opts ...Option) *App {
	if cfg == nil {
		panic("app: NewApp called without a configuration")
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	a := &App{
		outW:       outW,
		logger:     logger,
		ctx:        ctxlog.WithLogger(context.Background(), logger),
		config:     cfg,
		metrics:    metrics.NewRegistry(),
		runner:     energyplus.NewRunner(cfg.EnergyPlusDir),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(a)
	}
	logger.Debug("App constructed.", "building", cfg.BuildingPath, "out", cfg.OutPath)
	return a
}

// Metrics returns the application's metrics registry. This is primarily for testing.
func (a *App) Metrics() *metrics.Registry {
	return a.metrics
}
