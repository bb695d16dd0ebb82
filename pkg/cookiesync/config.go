package cookiesync

// Config holds the cookie names and lifetimes for the token mirror.
type Config struct {
	AccessTokenCookie  string `env:"COOKIESYNC_ACCESS_TOKEN_COOKIE" envDefault:"betracked_access_token"`
	RefreshTokenCookie string `env:"COOKIESYNC_REFRESH_TOKEN_COOKIE" envDefault:"betracked_refresh_token"`

	// AccessTokenMaxAge matches the backend's access-token validity (seconds).
	AccessTokenMaxAge int `env:"COOKIESYNC_ACCESS_TOKEN_MAX_AGE" envDefault:"300"`

	// RefreshTokenMaxAge matches the backend's refresh-token validity (seconds).
	RefreshTokenMaxAge int `env:"COOKIESYNC_REFRESH_TOKEN_MAX_AGE" envDefault:"604800"`

	// Secure marks the cookies HTTPS-only (recommended for production).
	Secure bool `env:"COOKIESYNC_SECURE" envDefault:"false"`
}

// DefaultConfig returns lifetimes matching the backend token validity.
func DefaultConfig() Config {
	return Config{
		AccessTokenCookie:  "betracked_access_token",
		RefreshTokenCookie: "betracked_refresh_token",
		AccessTokenMaxAge:  300,
		RefreshTokenMaxAge: 604800,
		Secure:             false,
	}
}
