// Package cli implements the interactive terminal front end: a REPL with
// one command per screen of the original application (login, register,
// dashboard, personas CRUD, users). Protected commands pass through the
// access guard; permission checks decide which actions each screen offers.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/personacli/internal/client/api"
	"github.com/dmitrijs2005/personacli/internal/client/config"
	"github.com/dmitrijs2005/personacli/internal/client/services"
	"github.com/dmitrijs2005/personacli/internal/client/session"
	"github.com/dmitrijs2005/personacli/internal/logging"
)

// Mode is the connectivity indicator shown in the prompt, maintained by
// the health watcher. It is informational only; commands always try the
// backend regardless.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	api      api.Client
	sessions *session.Controller
	personas services.PersonaService
	users    services.UserService
	log      logging.Logger
	reader   *bufio.Reader

	mu       sync.Mutex
	mode     Mode
	returnTo string
}

// NewApp wires the whole client: local session database, HTTP client,
// session controller, and the screen services.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := session.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, log)
	store := session.NewSQLiteStore(db)
	verifier := session.NewVerifier(apiClient, log)
	sessions := session.NewController(store, verifier, apiClient, log)

	return &App{
		config:   cfg,
		db:       db,
		api:      apiClient,
		sessions: sessions,
		personas: services.NewPersonaService(apiClient, sessions, log),
		users:    services.NewUserService(apiClient, sessions),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run resolves the startup session, starts the health watcher, and enters
// the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.api.Close()
		_ = a.db.Close()
	}()

	// The guard must never see Unknown once the REPL is accepting
	// commands, so the startup verification completes first.
	a.sessions.Initialize(ctx)

	watcherCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartHealthWatcher(watcherCtx, a.config.HealthCheckInterval)

	a.Root(ctx)
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()
	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

// StartHealthWatcher probes GET /health on the given interval and keeps
// the prompt's connectivity indicator current.
func (a *App) StartHealthWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Health(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
