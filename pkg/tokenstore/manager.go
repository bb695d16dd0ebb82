package tokenstore

import (
	"context"
	"log/slog"

	"github.com/betracked/sessionkit/pkg/logger"
)

// Option configures the Manager.
type Option func(*Manager)

// WithStore replaces the local backend.
func WithStore(s Store) Option {
	return func(m *Manager) {
		if s != nil {
			m.store = s
		}
	}
}

// WithEdgeSyncer enables the cookie mirror. Without one the manager is
// local-only, which is the headless/test mode.
func WithEdgeSyncer(e EdgeSyncer) Option {
	return func(m *Manager) {
		m.edge = e
	}
}

// WithLogger sets the logger used for mirror-failure warnings.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// Manager is the dual-backend token store. The local Store is authoritative;
// the EdgeSyncer holds the redundant cookie copy for the route guard.
type Manager struct {
	store Store
	edge  EdgeSyncer
	log   *slog.Logger
}

// New creates a Manager backed by an in-memory store unless overridden.
func New(opts ...Option) *Manager {
	m := &Manager{
		log: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.store == nil {
		m.store = NewMemoryStore()
	}

	return m
}

// AccessToken returns the locally stored access token.
func (m *Manager) AccessToken() (string, bool) {
	return m.store.Get(AccessTokenKey)
}

// RefreshToken returns the locally stored refresh token.
func (m *Manager) RefreshToken() (string, bool) {
	return m.store.Get(RefreshTokenKey)
}

// SetTokens writes both tokens to the local store, then mirrors them to the
// edge cookies. The local write completes before the mirror is attempted, so
// a concurrent reader always observes the new pair regardless of mirror
// outcome.
func (m *Manager) SetTokens(ctx context.Context, accessToken, refreshToken string) {
	m.store.Set(AccessTokenKey, accessToken)
	m.store.Set(RefreshTokenKey, refreshToken)

	m.syncToEdge(ctx, func() error {
		return m.edge.SetTokens(ctx, accessToken, refreshToken)
	}, "failed to sync tokens to cookies")
}

// ClearTokens removes both tokens locally, then clears the edge cookies.
// Safe to call repeatedly.
func (m *Manager) ClearTokens(ctx context.Context) {
	m.store.Delete(AccessTokenKey)
	m.store.Delete(RefreshTokenKey)

	m.syncToEdge(ctx, func() error {
		return m.edge.ClearTokens(ctx)
	}, "failed to clear token cookies")
}

// EdgeTokens reads the cookie copies back from the edge. Unlike the mirror
// writes this is a genuine query, so errors are returned.
func (m *Manager) EdgeTokens(ctx context.Context) (string, string, error) {
	if m.edge == nil {
		return "", "", ErrEdgeUnavailable
	}
	return m.edge.Tokens(ctx)
}

// EdgeCheck reports whether the edge currently sees a token cookie.
func (m *Manager) EdgeCheck(ctx context.Context) (bool, error) {
	if m.edge == nil {
		return false, ErrEdgeUnavailable
	}
	return m.edge.Check(ctx)
}

// syncToEdge runs a mirror operation with swallow-and-log semantics. It
// never returns an error: the cookie copy is redundant by design and must
// not break the authoritative flow.
func (m *Manager) syncToEdge(ctx context.Context, op func() error, message string) {
	if m.edge == nil {
		return
	}

	if err := op(); err != nil {
		m.log.WarnContext(ctx, message, logger.Error(err))
	}
}
