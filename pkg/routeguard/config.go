package routeguard

// Config describes the route classification and redirect targets. The
// defaults mirror the betracked dashboard's route map.
type Config struct {
	// SkipPrefixes are passed through without any checks: API calls,
	// framework internals and similar.
	SkipPrefixes []string `env:"GUARD_SKIP_PREFIXES" envSeparator:","`

	// SkipSuffixes exempt static assets by file extension.
	SkipSuffixes []string `env:"GUARD_SKIP_SUFFIXES" envSeparator:","`

	// PublicRoutes need no authentication.
	PublicRoutes []string `env:"GUARD_PUBLIC_ROUTES" envSeparator:","`

	// AuthOnlyRoutes require a token pair but skip further app-level checks.
	AuthOnlyRoutes []string `env:"GUARD_AUTH_ONLY_ROUTES" envSeparator:","`

	// AllowWhenAuthenticated lists public routes a signed-in user may still
	// visit, because the flow may arrive with an existing session from an
	// email link (verification, password reset).
	AllowWhenAuthenticated []string `env:"GUARD_ALLOW_WHEN_AUTHENTICATED" envSeparator:","`

	LoginPath     string `env:"GUARD_LOGIN_PATH" envDefault:"/auth/login"`
	HomePath      string `env:"GUARD_HOME_PATH" envDefault:"/"`
	RedirectParam string `env:"GUARD_REDIRECT_PARAM" envDefault:"redirect"`

	AccessTokenCookie  string `env:"GUARD_ACCESS_TOKEN_COOKIE" envDefault:"betracked_access_token"`
	RefreshTokenCookie string `env:"GUARD_REFRESH_TOKEN_COOKIE" envDefault:"betracked_refresh_token"`
}

// WithDefaults fills every unset field from DefaultConfig, so overriding a
// single route list does not wipe the rest of the route map.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()

	if len(c.SkipPrefixes) == 0 {
		c.SkipPrefixes = def.SkipPrefixes
	}
	if len(c.SkipSuffixes) == 0 {
		c.SkipSuffixes = def.SkipSuffixes
	}
	if len(c.PublicRoutes) == 0 {
		c.PublicRoutes = def.PublicRoutes
	}
	if len(c.AuthOnlyRoutes) == 0 {
		c.AuthOnlyRoutes = def.AuthOnlyRoutes
	}
	if len(c.AllowWhenAuthenticated) == 0 {
		c.AllowWhenAuthenticated = def.AllowWhenAuthenticated
	}
	if c.LoginPath == "" {
		c.LoginPath = def.LoginPath
	}
	if c.HomePath == "" {
		c.HomePath = def.HomePath
	}
	if c.RedirectParam == "" {
		c.RedirectParam = def.RedirectParam
	}
	if c.AccessTokenCookie == "" {
		c.AccessTokenCookie = def.AccessTokenCookie
	}
	if c.RefreshTokenCookie == "" {
		c.RefreshTokenCookie = def.RefreshTokenCookie
	}

	return c
}

// DefaultConfig returns the dashboard's route map.
func DefaultConfig() Config {
	return Config{
		SkipPrefixes: []string{"/api", "/_next", "/favicon.ico"},
		SkipSuffixes: []string{".svg", ".png", ".jpg", ".jpeg", ".gif", ".webp"},
		PublicRoutes: []string{
			"/auth/login",
			"/auth/register",
			"/auth/verify-email",
			"/auth/forgot-password",
			"/auth/reset-password",
		},
		AuthOnlyRoutes: []string{"/onboarding"},
		AllowWhenAuthenticated: []string{
			"/auth/verify-email",
			"/auth/reset-password",
		},
		LoginPath:          "/auth/login",
		HomePath:           "/",
		RedirectParam:      "redirect",
		AccessTokenCookie:  "betracked_access_token",
		RefreshTokenCookie: "betracked_refresh_token",
	}
}
