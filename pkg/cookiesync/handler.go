package cookiesync

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/betracked/sessionkit/pkg/cookie"
	"github.com/betracked/sessionkit/pkg/logger"
)

// Handler implements the cookie-sync endpoints.
type Handler struct {
	cookies *cookie.Manager
	cfg     Config
	log     *slog.Logger
}

// NewHandler creates a Handler writing through the given cookie manager.
func NewHandler(cookies *cookie.Manager, cfg Config, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Handler{
		cookies: cookies,
		cfg:     cfg,
		log:     log,
	}
}

// Router returns the endpoints as a mountable chi router.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/set-tokens", h.SetTokens)
	r.Post("/clear-tokens", h.ClearTokens)
	r.Get("/tokens", h.Tokens)
	r.Get("/check", h.Check)
	return r
}

// SetTokens writes both token cookies with their distinct lifetimes.
func (h *Handler) SetTokens(w http.ResponseWriter, r *http.Request) {
	var body struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.AccessToken == "" || body.RefreshToken == "" {
		h.log.DebugContext(r.Context(), "rejected set-tokens request", logger.Error(err))
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Failed to set tokens"})
		return
	}

	h.cookies.Set(w, h.cfg.AccessTokenCookie, body.AccessToken,
		cookie.WithMaxAge(h.cfg.AccessTokenMaxAge),
		cookie.WithSecure(h.cfg.Secure),
	)
	h.cookies.Set(w, h.cfg.RefreshTokenCookie, body.RefreshToken,
		cookie.WithMaxAge(h.cfg.RefreshTokenMaxAge),
		cookie.WithSecure(h.cfg.Secure),
	)

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// ClearTokens deletes both token cookies.
func (h *Handler) ClearTokens(w http.ResponseWriter, r *http.Request) {
	h.cookies.Delete(w, h.cfg.AccessTokenCookie)
	h.cookies.Delete(w, h.cfg.RefreshTokenCookie)

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Tokens reads the cookie values back, null when absent.
func (h *Handler) Tokens(w http.ResponseWriter, r *http.Request) {
	out := struct {
		AccessToken  *string `json:"accessToken"`
		RefreshToken *string `json:"refreshToken"`
	}{}

	if value, err := h.cookies.Get(r, h.cfg.AccessTokenCookie); err == nil && value != "" {
		out.AccessToken = &value
	}
	if value, err := h.cookies.Get(r, h.cfg.RefreshTokenCookie); err == nil && value != "" {
		out.RefreshToken = &value
	}

	writeJSON(w, http.StatusOK, out)
}

// Check reports token presence for quick client-side probes.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	authenticated := h.cookies.Has(r, h.cfg.AccessTokenCookie) ||
		h.cookies.Has(r, h.cfg.RefreshTokenCookie)

	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": authenticated})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
