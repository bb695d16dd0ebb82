package routeguard

import (
	"net/http"
	"net/url"
)

// Middleware returns the guard as standard net/http middleware.
//
// The decision is presence-only: a token cookie existing is enough to pass,
// expired or garbage values included. The client-side session controller
// sorts that out after load, and the backend is the real authority on every
// API call.
func Middleware(cfg Config) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			class := cfg.Classify(path)
			if class == RouteSkip {
				next.ServeHTTP(w, r)
				return
			}

			hasToken := hasCookie(r, cfg.AccessTokenCookie) || hasCookie(r, cfg.RefreshTokenCookie)

			if (class == RouteProtected || class == RouteAuthOnly) && !hasToken {
				redirectToLogin(w, r, cfg, path)
				return
			}

			if class == RoutePublic && hasToken && !cfg.allowedWhenAuthenticated(path) {
				http.Redirect(w, r, cfg.HomePath, http.StatusTemporaryRedirect)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// redirectToLogin bounces to the login route, preserving the original path
// so the client can return the user after signing in.
func redirectToLogin(w http.ResponseWriter, r *http.Request, cfg Config, path string) {
	query := url.Values{}
	query.Set(cfg.RedirectParam, path)

	http.Redirect(w, r, cfg.LoginPath+"?"+query.Encode(), http.StatusTemporaryRedirect)
}

func hasCookie(r *http.Request, name string) bool {
	cookie, err := r.Cookie(name)
	return err == nil && cookie.Value != ""
}
