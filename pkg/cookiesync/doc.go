// Package cookiesync serves the same-origin endpoints that mirror the token
// pair into HttpOnly cookies.
//
// The client-side token store is authoritative but invisible to the edge
// route guard, which can only read cookies. These endpoints bridge the two:
// set-tokens and clear-tokens write and delete the cookie copies, while
// tokens and check are read-back helpers. Cookie lifetimes track the
// backend's token validity (5 minutes for the access token, 7 days for the
// refresh token), so a stale mirror ages out on its own.
//
//	handler := cookiesync.NewHandler(cookieMgr, cookiesync.DefaultConfig(), log)
//	router.Mount("/api/auth", handler.Router())
package cookiesync
