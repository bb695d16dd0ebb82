// Package session owns the client-side authentication session: who the
// current user is, whether the initial resolution has finished, and every
// transition between signed-in and signed-out.
//
// A Controller moves through four states - uninitialized, loading,
// authenticated, unauthenticated - with an explicit legal-transition table.
// Start schedules the initial resolution off the caller's path (read stored
// tokens, refresh if expired, fetch the profile) and launches a background
// loop that renews the access token shortly before it expires, keeping
// long-lived tabs signed in without user interaction.
//
// The refresh protocol itself lives in Refresher and fails closed: any
// failed exchange clears both stored tokens, forcing the next resolution to
// land on unauthenticated instead of retrying forever.
//
//	ctrl := session.New(client,
//		session.WithTokenStore(store),
//		session.WithNavigator(nav),
//		session.WithLogger(log),
//	)
//	if err := ctrl.Start(ctx); err != nil { ... }
//	defer ctrl.Close()
//
// Login and register propagate backend errors to the caller for display;
// profile-fetch failures never surface, they silently degrade the session
// to unauthenticated so the rest of the app never sees a half-broken
// signed-in state.
package session
