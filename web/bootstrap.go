package web

import (
	"biblioteca/config"
	"biblioteca/router"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// App is the started application: the HTTP server with the shell mounted on it
type App struct {
	Config  *config.Config
	Table   *router.Table
	Shell   *Shell
	Metrics *Metrics
	Server  *rweb.Server
}

// Bootstrap builds the route table, the shell and the RWeb server.
// It does not start listening; call Run for that.
func Bootstrap(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, serr.Wrap(err, "invalid configuration")
	}

	table, err := NewRouteTable()
	if err != nil {
		return nil, serr.Wrap(err, "failed to build route table")
	}

	metrics := NewMetrics()
	shell := NewShell(cfg.Title, cfg.BasePath, table, metrics)

	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: cfg.LogLevel == "debug",
	})

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(SessionMiddleware)         // Session cookie, one outlet per session
	s.Use(LoggingMiddleware)         // Request logging

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	setupRoutes(s, shell, metrics)

	logger.Info("Route table registered", "routes", len(table.Entries()), "base_path", cfg.BasePath)

	return &App{
		Config:  cfg,
		Table:   table,
		Shell:   shell,
		Metrics: metrics,
		Server:  s,
	}, nil
}

// Run starts the server and blocks
func (a *App) Run() error {
	logger.Info("Biblioteca Virtual starting", "address", a.Config.Address)
	if err := a.Server.Run(); err != nil {
		return serr.Wrap(err, "server stopped")
	}
	return nil
}
