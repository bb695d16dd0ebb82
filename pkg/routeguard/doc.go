// Package routeguard gates dashboard navigation at the edge, before any
// page code runs.
//
// The guard is a stateless net/http middleware that classifies each request
// path (skip, public, auth-only or protected) and checks only for the
// presence of the token cookies - it never validates them. Validity is the
// client's job after load, and the authoritative authorization decision is
// always made by the backend against the live access token. The guard
// exists purely so protected UI is never flashed at signed-out visitors,
// and so signed-in users are bounced away from the login and register
// pages.
//
//	guard := routeguard.Middleware(routeguard.DefaultConfig())
//	handler = guard(app)
package routeguard
