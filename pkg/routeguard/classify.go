package routeguard

import "strings"

// RouteClass is the guard's verdict on what a path requires.
type RouteClass string

const (
	// RouteSkip is exempt from all checks.
	RouteSkip RouteClass = "skip"

	// RoutePublic needs no authentication.
	RoutePublic RouteClass = "public"

	// RouteAuthOnly requires a token pair but no further app-level checks.
	RouteAuthOnly RouteClass = "auth-only"

	// RouteProtected is the default: a token pair is required.
	RouteProtected RouteClass = "protected"
)

// Classify assigns the path to exactly one class. Protected is the default;
// anything not explicitly listed requires a session.
func (c Config) Classify(path string) RouteClass {
	for _, prefix := range c.SkipPrefixes {
		if strings.HasPrefix(path, prefix) {
			return RouteSkip
		}
	}
	for _, suffix := range c.SkipSuffixes {
		if strings.HasSuffix(path, suffix) {
			return RouteSkip
		}
	}

	if matchesAny(path, c.PublicRoutes) {
		return RoutePublic
	}
	if matchesAny(path, c.AuthOnlyRoutes) {
		return RouteAuthOnly
	}
	return RouteProtected
}

// allowedWhenAuthenticated reports whether a signed-in user may stay on
// this public path.
func (c Config) allowedWhenAuthenticated(path string) bool {
	return matchesAny(path, c.AllowWhenAuthenticated)
}

// matchesAny reports whether path equals a route or sits under it.
func matchesAny(path string, routes []string) bool {
	for _, route := range routes {
		if path == route || strings.HasPrefix(path, route+"/") {
			return true
		}
	}
	return false
}
