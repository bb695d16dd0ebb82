package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/betracked/sessionkit/pkg/apiclient"
	"github.com/betracked/sessionkit/pkg/logger"
	"github.com/betracked/sessionkit/pkg/token"
	"github.com/betracked/sessionkit/pkg/tokenstore"
)

// API is the slice of the backend client the controller needs.
type API interface {
	Login(ctx context.Context, email, password string) (*apiclient.AuthResponse, error)
	Register(ctx context.Context, params apiclient.RegisterParams) (*apiclient.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*apiclient.RefreshResponse, error)
	Me(ctx context.Context) (*apiclient.User, error)
}

// Navigator receives the redirect issued by Logout.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Controller is the process-wide authority over the current user and the
// session lifecycle. All exported methods are safe for concurrent use.
type Controller struct {
	api   API
	store *tokenstore.Manager
	ref   *Refresher
	nav   Navigator
	log   *slog.Logger
	cfg   Config

	mu     sync.RWMutex
	status Status
	user   *apiclient.User
	// generation invalidates in-flight resolutions and refreshes: Logout
	// bumps it, and any result carrying an older generation is discarded
	// instead of re-populating state after the user signed out.
	generation uint64

	done      chan struct{}
	closeOnce sync.Once
}

// New creates a Controller around the backend client. Without options it
// uses a local-only token store, a no-op navigator and a discard logger.
func New(api API, opts ...Option) *Controller {
	c := &Controller{
		api:    api,
		nav:    NavigatorFunc(func(string) {}),
		log:    slog.New(slog.DiscardHandler),
		cfg:    DefaultConfig(),
		status: StatusUninitialized,
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.store == nil {
		c.store = tokenstore.New()
	}
	c.ref = NewRefresher(c.store, api, c.log)

	return c
}

// Refresher exposes the controller's refresh protocol for callers that need
// an on-demand token renewal outside the background loop.
func (c *Controller) Refresher() *Refresher {
	return c.ref
}

// Start moves the controller to loading and schedules the initial
// resolution plus the background refresh loop. It returns immediately; the
// resolution runs off the caller's path so application startup is never
// blocked on the network.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.status != StatusUninitialized {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.status = StatusLoading
	gen := c.generation
	c.mu.Unlock()

	go c.resolve(ctx, gen)
	go c.refreshLoop(ctx)

	return nil
}

// Close tears down the background refresh loop. Idempotent.
func (c *Controller) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

// Login exchanges credentials for a token pair, persists it and loads the
// profile. Backend and transport errors are returned untouched so the UI
// can display them; no tokens are written on failure.
func (c *Controller) Login(ctx context.Context, email, password string) (*apiclient.AuthResponse, error) {
	if c.Status() == StatusUninitialized {
		return nil, ErrNotStarted
	}

	resp, err := c.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	c.adoptTokens(ctx, resp)
	return resp, nil
}

// Register creates an account and signs the new user in, with the same
// persistence and error semantics as Login.
func (c *Controller) Register(ctx context.Context, params apiclient.RegisterParams) (*apiclient.AuthResponse, error) {
	if c.Status() == StatusUninitialized {
		return nil, ErrNotStarted
	}

	resp, err := c.api.Register(ctx, params)
	if err != nil {
		return nil, err
	}

	c.adoptTokens(ctx, resp)
	return resp, nil
}

// Logout clears both token stores, drops the in-memory user and navigates
// to the login route. Navigation is issued only after the clearing
// completed. Safe from any state and safe to repeat.
func (c *Controller) Logout(ctx context.Context) {
	c.mu.Lock()
	c.generation++
	c.user = nil
	c.setStatusLocked(StatusUnauthenticated)
	c.mu.Unlock()

	c.store.ClearTokens(ctx)
	c.nav.Navigate(c.cfg.LoginPath)
}

// RefreshUser forces a full re-resolution of the session, including a
// profile re-fetch. Used after state-changing operations elsewhere in the
// app, e.g. completing onboarding. It never re-enters the loading state;
// failures silently degrade to unauthenticated.
func (c *Controller) RefreshUser(ctx context.Context) error {
	c.mu.RLock()
	status := c.status
	gen := c.generation
	c.mu.RUnlock()

	if status == StatusUninitialized {
		return ErrNotStarted
	}

	c.resolve(ctx, gen)
	return nil
}

// User returns the current profile, if authenticated.
func (c *Controller) User() (*apiclient.User, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user, c.user != nil
}

// IsLoading reports whether the first resolution is still pending. It is
// true from construction until the initial resolve lands and never again
// afterward.
func (c *Controller) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.status.IsResolved()
}

// IsAuthenticated reports whether a user is signed in.
func (c *Controller) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status == StatusAuthenticated
}

// Status returns the controller's lifecycle state.
func (c *Controller) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// resolve determines the session outcome from stored tokens: refresh when
// the access token is expired, then fetch the profile. Any failure lands on
// unauthenticated; a profile-fetch failure additionally clears the stored
// tokens because the backend no longer honors them.
func (c *Controller) resolve(ctx context.Context, gen uint64) {
	access, ok := c.store.AccessToken()
	if !ok {
		c.finish(gen, nil)
		return
	}

	if token.IsExpired(access) {
		if _, err := c.ref.Refresh(ctx); err != nil {
			c.finish(gen, nil)
			return
		}
		if c.stale(gen) {
			// Logout raced the refresh; discard the re-populated tokens
			c.store.ClearTokens(ctx)
			return
		}
	}

	user, err := c.api.Me(ctx)
	if err != nil {
		c.log.DebugContext(ctx, "profile fetch failed, degrading to unauthenticated", logger.Error(err))
		if !c.stale(gen) {
			c.store.ClearTokens(ctx)
		}
		c.finish(gen, nil)
		return
	}

	c.finish(gen, user)
}

// adoptTokens persists a fresh token pair and resolves the profile for it.
func (c *Controller) adoptTokens(ctx context.Context, resp *apiclient.AuthResponse) {
	c.mu.RLock()
	gen := c.generation
	c.mu.RUnlock()

	c.store.SetTokens(ctx, resp.AccessToken, resp.RefreshToken)

	user, err := c.api.Me(ctx)
	if err != nil {
		c.log.DebugContext(ctx, "profile fetch failed after login", logger.Error(err))
		if !c.stale(gen) {
			c.store.ClearTokens(ctx)
		}
		c.finish(gen, nil)
		return
	}

	if c.stale(gen) {
		// Logout raced the sign-in; discard the re-populated tokens
		c.store.ClearTokens(ctx)
		return
	}

	c.finish(gen, user)
}

// finish applies a resolution outcome unless a logout invalidated it.
func (c *Controller) finish(gen uint64, user *apiclient.User) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}

	c.user = user
	if user != nil {
		c.setStatusLocked(StatusAuthenticated)
	} else {
		c.setStatusLocked(StatusUnauthenticated)
	}
}

// setStatusLocked changes status after checking the transition table.
// Callers hold c.mu. Illegal transitions indicate a controller bug; they
// are logged and skipped rather than corrupting the lifecycle.
func (c *Controller) setStatusLocked(next Status) {
	if c.status == next {
		return
	}
	if !c.status.CanTransition(next) {
		c.log.Error("illegal session status transition",
			logger.Error(ErrInvalidTransition),
			slog.String("from", string(c.status)),
			slog.String("to", string(next)),
		)
		return
	}
	c.status = next
}

func (c *Controller) stale(gen uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return gen != c.generation
}

// refreshLoop renews the access token shortly before expiry for as long as
// the controller lives. Each tick is a no-op unless a token exists and is
// inside the expiry buffer. After a failed refresh has cleared the stored
// tokens, subsequent ticks find no refresh token and stay off the network.
func (c *Controller) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(c.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.backgroundRefresh(ctx)
		case <-c.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (c *Controller) backgroundRefresh(ctx context.Context) {
	access, ok := c.store.AccessToken()
	if !ok || !token.IsExpired(access) {
		return
	}

	c.mu.RLock()
	gen := c.generation
	c.mu.RUnlock()

	if _, err := c.ref.Refresh(ctx); err != nil {
		c.log.DebugContext(ctx, "background token refresh failed", logger.Error(err))
		return
	}

	if c.stale(gen) {
		// Logout raced the refresh; discard the re-populated tokens
		c.store.ClearTokens(ctx)
	}
}
