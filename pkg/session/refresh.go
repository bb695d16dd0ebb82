package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/betracked/sessionkit/pkg/apiclient"
	"github.com/betracked/sessionkit/pkg/tokenstore"
)

// RefreshAPI is the slice of the backend client the refresh protocol needs.
type RefreshAPI interface {
	RefreshToken(ctx context.Context, refreshToken string) (*apiclient.RefreshResponse, error)
}

// Refresher exchanges the stored refresh token for a new access token.
//
// The protocol fails closed: any failure past the initial token lookup
// clears both stored tokens, so a broken refresh token downgrades the
// session instead of leaving it ambiguous. Calls are not deduplicated;
// concurrent refreshes may both reach the backend, which tolerates repeated
// exchanges of the same valid refresh token.
type Refresher struct {
	store *tokenstore.Manager
	api   RefreshAPI
	log   *slog.Logger
}

// NewRefresher wires the protocol to a token store and backend client.
func NewRefresher(store *tokenstore.Manager, api RefreshAPI, log *slog.Logger) *Refresher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Refresher{store: store, api: api, log: log}
}

// Refresh mints a new access token from the stored refresh token.
//
// With no refresh token present it returns ErrNoRefreshToken without a
// network call. On success the new access token is stored next to the
// existing refresh token (the backend does not rotate it) and returned. On
// any backend or transport failure both tokens are cleared and
// ErrRefreshFailed is returned.
func (r *Refresher) Refresh(ctx context.Context) (string, error) {
	refreshToken, ok := r.store.RefreshToken()
	if !ok {
		return "", ErrNoRefreshToken
	}

	resp, err := r.api.RefreshToken(ctx, refreshToken)
	if err != nil {
		r.store.ClearTokens(ctx)
		return "", errors.Join(ErrRefreshFailed, err)
	}

	r.store.SetTokens(ctx, resp.AccessToken, refreshToken)
	return resp.AccessToken, nil
}
