// Package apiclient is a typed HTTP client for the betracked backend's
// authentication and profile endpoints.
//
// The client covers the four operations the session layer depends on:
// Register, Login, RefreshToken and Me. Requests and responses are JSON;
// authenticated calls attach a bearer token obtained from a TokenSource at
// request time, so the client always sends the freshest stored credential.
//
//	client, err := apiclient.New("https://api.betracked.app",
//		apiclient.WithTokenSource(store.AccessToken),
//	)
//
// Backend rejections are surfaced as *APIError carrying the HTTP status and
// the backend-provided message so the UI can display it verbatim; transport
// failures are wrapped with ErrRequestFailed.
package apiclient
