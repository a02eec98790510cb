package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/credittransfer/internal/client/client"
	"github.com/dmitrijs2005/credittransfer/internal/client/config"
	"github.com/dmitrijs2005/credittransfer/internal/client/review"
	"github.com/dmitrijs2005/credittransfer/internal/client/services"
	"github.com/dmitrijs2005/credittransfer/internal/client/session"
	"github.com/dmitrijs2005/credittransfer/internal/client/storage"
	"github.com/dmitrijs2005/credittransfer/internal/logging"
)

const pingTimeout = 3 * time.Second

type App struct {
	config *config.Config
	log    logging.Logger
	out    io.Writer
	reader *bufio.Reader

	store         *storage.SQLiteStore
	gate          *session.Gate
	api           client.Client
	authService   services.AuthService
	engine        *review.Engine
	online        *services.OnlineWatcher
	notifications *services.NotificationWatcher

	mu          sync.Mutex
	screen      session.Screen
	stopWatcher context.CancelFunc
}

// NewApp opens durable storage and wires every dependency of the client.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, c.StoragePath)
	if err != nil {
		log.Error(ctx, "error initializing storage", "path", c.StoragePath, "error", err)
		return nil, err
	}
	return newApp(c, log, store, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, store *storage.SQLiteStore, in io.Reader, out io.Writer) *App {
	gate := session.New(store, log, session.WithRoleEnforcement(c.EnforceRoles))
	api := client.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout, gate, log)

	return &App{
		config:        c,
		log:           log,
		out:           out,
		reader:        bufio.NewReader(in),
		store:         store,
		gate:          gate,
		api:           api,
		authService:   services.NewAuthService(api, gate),
		engine:        review.NewEngine(api, log),
		online:        services.NewOnlineWatcher(api, c.OnlineCheckInterval, pingTimeout, log),
		notifications: services.NewNotificationWatcher(api, c.PollInterval, c.RequestTimeout, log),
		screen:        session.ScreenEntry,
	}
}

// Run restores the stored session, starts the connectivity watcher and
// blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st, err := a.gate.Init(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to restore session", "error", err)
	}
	if st == session.Authenticated {
		id, _ := a.gate.Identity()
		a.land(ctx, session.Landing(id))
		a.printf("Welcome back, %s\n", id.Username)
	}

	a.online.Check(ctx)
	go a.online.Run(ctx)

	a.printf("Credit transfer client (type 'help' for commands)\n")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) close() {
	a.stopNotifications()
	if err := a.store.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close storage", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.gate.Authenticated()
}

func (a *App) currentScreen() session.Screen {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.screen
}

func (a *App) setScreen(s session.Screen) {
	a.mu.Lock()
	a.screen = s
	a.mu.Unlock()
}

// land navigates to a dashboard. Students additionally get the background
// notification watcher.
func (a *App) land(ctx context.Context, s session.Screen) {
	a.setScreen(s)
	if s == session.ScreenStudentDashboard {
		a.startNotifications(ctx)
	}
}

func (a *App) startNotifications(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopWatcher != nil {
		return
	}
	wctx, cancel := context.WithCancel(ctx)
	a.stopWatcher = cancel
	go a.notifications.Run(wctx)
}

func (a *App) stopNotifications() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.stopWatcher != nil {
		a.stopWatcher()
		a.stopWatcher = nil
	}
}

func (a *App) getStatus() string {
	s := string(a.currentScreen())
	if id, ok := a.gate.Identity(); ok {
		s = id.Username + " " + s
	}
	if a.online.Online() {
		s += " online"
	} else {
		s += " offline"
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}

var errAccessDenied = errors.New("access denied")

// guard applies the session gate to a protected view.
func (a *App) guard(v session.View) error {
	d := a.gate.Authorize(v)
	if d.Allow {
		return nil
	}
	a.setScreen(d.Redirect)
	if d.Redirect == session.ScreenEntry {
		a.printf("Please log in first.\n")
	} else {
		a.printf("%s is not available for your role.\n", v.Name)
	}
	return errAccessDenied
}

// report prints a user-facing message for err and returns it unchanged.
func (a *App) report(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	a.log.Warn(ctx, "command failed", "command", op, "error", err)

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		a.printf("Your session has expired or lacks permission. Please log in again.\n")
	case errors.Is(err, client.ErrUnavailable):
		a.printf("Server unavailable, try again later.\n")
	default:
		a.printf("Error: %v\n", err)
	}
	return err
}
