// Package cookie provides a small manager for reading, writing and deleting
// HTTP cookies with consistent security defaults.
//
// A Manager carries default attributes (Path "/", HttpOnly, SameSite=Lax)
// applied to every cookie it writes; per-call functional options override
// them. Cookies are written host-only: no Domain attribute is ever set.
//
//	mgr := cookie.New(cookie.WithSecure(true))
//	mgr.Set(w, "betracked_access_token", token, cookie.WithMaxAge(300))
//	value, err := mgr.Get(r, "betracked_access_token")
//	mgr.Delete(w, "betracked_access_token")
package cookie
