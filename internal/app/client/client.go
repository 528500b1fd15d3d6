package client

import (
	"golang.org/x/exp/slog"

	"workoutlog/internal/app/client/config"
)

// App bundles the pieces of the client: configuration, the HTTP client for
// the remote API, the terminal render surface and the session controller.
type App struct {
	config   *config.Config
	log      *slog.Logger
	api      API
	terminal *TerminalSurface
	session  *Session
}

func New(cfg *config.Config, log *slog.Logger) *App {
	httpCl := NewHTTPClient(cfg, log)
	terminal := NewTerminalSurface()

	return &App{
		config:   cfg,
		log:      log,
		api:      httpCl,
		terminal: terminal,
		session:  NewSession(httpCl, terminal, log),
	}
}

type contextKey string

// AppContextKey carries the *App through a cobra command context.
const AppContextKey contextKey = "app"

func (a *App) Session() *Session { return a.session }

func (a *App) Terminal() *TerminalSurface { return a.terminal }

func (a *App) API() API { return a.api }
