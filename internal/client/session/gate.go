package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/credittransfer/internal/client/models"
	"github.com/dmitrijs2005/credittransfer/internal/client/storage"
	"github.com/dmitrijs2005/credittransfer/internal/logging"
)

// StorageKey is the single durable key holding the credential pair.
const StorageKey = "authToken"

type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// View describes a protected screen.
type View struct {
	Name          string
	Path          string
	RequiredRoles []Role
}

// Decision is the outcome of Authorize: render the view, or go to Redirect.
type Decision struct {
	Allow    bool
	Redirect Screen
}

type Option func(*Gate)

// WithRoleEnforcement makes Authorize honor View.RequiredRoles.
func WithRoleEnforcement(on bool) Option {
	return func(g *Gate) { g.enforceRoles = on }
}

type Gate struct {
	store        storage.Store
	log          logging.Logger
	enforceRoles bool

	mu    sync.RWMutex
	state State
	cred  models.Credential
	ident models.Identity
}

func New(store storage.Store, log logging.Logger, opts ...Option) *Gate {
	g := &Gate{
		store: store,
		log:   log.With("component", "session"),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

// Init restores the session from durable storage. A stored value that cannot
// be decoded is purged and the gate stays Unauthenticated without error.
func (g *Gate) Init(ctx context.Context) (State, error) {
	g.reset()

	raw, err := g.store.Get(ctx, StorageKey)
	if err != nil {
		return Unauthenticated, fmt.Errorf("session: read credential: %w", err)
	}
	if raw == nil {
		return Unauthenticated, nil
	}

	var cred models.Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		g.purge(ctx, &AuthDecodeError{Err: err})
		return Unauthenticated, nil
	}

	ident, err := Decode(cred.Access)
	if err != nil {
		g.purge(ctx, err)
		return Unauthenticated, nil
	}

	g.set(cred, ident)
	g.log.Info(ctx, "session restored", "username", ident.Username)
	return Authenticated, nil
}

// SignIn persists cred and authenticates the gate. It returns the landing
// screen for the decoded identity.
func (g *Gate) SignIn(ctx context.Context, cred models.Credential) (Screen, error) {
	ident, err := Decode(cred.Access)
	if err != nil {
		return ScreenEntry, err
	}

	raw, err := json.Marshal(cred)
	if err != nil {
		return ScreenEntry, fmt.Errorf("session: encode credential: %w", err)
	}
	if err := g.store.Set(ctx, StorageKey, raw); err != nil {
		return ScreenEntry, fmt.Errorf("session: store credential: %w", err)
	}

	g.set(cred, ident)
	g.log.Info(ctx, "signed in", "username", ident.Username, "staff", ident.IsStaff)
	return Landing(ident), nil
}

// SignOut clears the session in memory and in storage. The in-memory state is
// cleared even when the storage delete fails.
func (g *Gate) SignOut(ctx context.Context) (Screen, error) {
	g.reset()
	if err := g.store.Delete(ctx, StorageKey); err != nil {
		return ScreenEntry, fmt.Errorf("session: delete credential: %w", err)
	}
	g.log.Info(ctx, "signed out")
	return ScreenEntry, nil
}

func (g *Gate) Authorize(v View) Decision {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.state != Authenticated {
		return Decision{Redirect: ScreenEntry}
	}
	if g.enforceRoles && !hasAnyRole(g.ident, v.RequiredRoles) {
		return Decision{Redirect: Landing(g.ident)}
	}
	return Decision{Allow: true}
}

func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

func (g *Gate) Authenticated() bool {
	return g.State() == Authenticated
}

func (g *Gate) Credential() models.Credential {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.cred
}

func (g *Gate) Identity() (models.Identity, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.ident, g.state == Authenticated
}

// AccessToken implements client.TokenSource.
func (g *Gate) AccessToken() string {
	return g.Credential().Access
}

func (g *Gate) set(cred models.Credential, ident models.Identity) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Authenticated
	g.cred = cred
	g.ident = ident
}

func (g *Gate) reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Unauthenticated
	g.cred = models.Credential{}
	g.ident = models.Identity{}
}

func (g *Gate) purge(ctx context.Context, cause error) {
	g.log.Warn(ctx, "discarding unreadable stored credential", "error", cause)
	if err := g.store.Delete(ctx, StorageKey); err != nil {
		g.log.Error(ctx, "failed to purge stored credential", "error", err)
	}
}
