package session

import (
	"log/slog"

	"github.com/betracked/sessionkit/pkg/tokenstore"
)

// Option configures the Controller.
type Option func(*Controller)

// WithTokenStore replaces the default in-memory token store manager.
func WithTokenStore(store *tokenstore.Manager) Option {
	return func(c *Controller) {
		if store != nil {
			c.store = store
		}
	}
}

// WithNavigator sets the redirect sink used by Logout.
func WithNavigator(nav Navigator) Option {
	return func(c *Controller) {
		if nav != nil {
			c.nav = nav
		}
	}
}

// WithLogger sets the controller logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithConfig overrides the default configuration.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		if cfg.RefreshInterval > 0 {
			c.cfg.RefreshInterval = cfg.RefreshInterval
		}
		if cfg.LoginPath != "" {
			c.cfg.LoginPath = cfg.LoginPath
		}
	}
}
