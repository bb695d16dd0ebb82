// Package tokenstore persists the access/refresh token pair across the two
// trust domains the dashboard relies on.
//
// The authoritative copy lives in a local Store (an in-process key-value
// map by default); it backs every Authorization header the client builds.
// A second, best-effort copy is mirrored into HttpOnly cookies through the
// same-origin cookie-sync endpoints so the edge route guard, which cannot
// see the local store, can gate navigation before any page code runs.
//
// The asymmetry is deliberate and visible in the API: local writes are
// synchronous and always succeed, while the cookie mirror may silently fail.
// A mirror failure is logged and swallowed, never returned, because the
// local copy alone is enough for client requests to keep working.
//
//	store := tokenstore.New(
//		tokenstore.WithEdgeSyncer(tokenstore.NewEdgeClient("http://localhost:8080", nil)),
//		tokenstore.WithLogger(log),
//	)
//	store.SetTokens(ctx, accessToken, refreshToken)
package tokenstore
