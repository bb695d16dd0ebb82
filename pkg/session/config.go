package session

import "time"

// Config holds session controller configuration
type Config struct {
	// RefreshInterval is the background expiry-check period. The default
	// assumes 5-minute access tokens, so each token is checked at least once
	// inside its lifetime.
	RefreshInterval time.Duration `env:"SESSION_REFRESH_INTERVAL" envDefault:"4m"`

	// LoginPath is where Logout navigates to.
	LoginPath string `env:"SESSION_LOGIN_PATH" envDefault:"/auth/login"`
}

// DefaultConfig returns default controller configuration
func DefaultConfig() Config {
	return Config{
		RefreshInterval: 4 * time.Minute,
		LoginPath:       "/auth/login",
	}
}
