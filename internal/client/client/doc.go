// Package client implements the authenticated API client for the animal
// sighting service.
//
// # Overview
//
// HTTPClient talks JSON over HTTP to the service and exposes five calls:
// SignUp, SignIn, ListSightingNames, FetchSightingDetail and FetchImage.
// A successful SignIn stores the session token in the client; the list and
// detail calls attach it as "Authorization: Bearer <token>". The token lives
// only in memory and is replaced by the next successful SignIn. There is no
// sign-out, refresh, retry or offline cache.
//
// # Error Handling
//
// Every failure is classified and returned, never retried or swallowed:
//
//   - ErrEncoding: the request could not be built.
//   - ErrTransport: the exchange failed on the network.
//   - *ServerError: unexpected HTTP status (see StatusCode).
//   - ErrUnauthorized: HTTP 401, or ErrNotSignedIn when no token is held.
//   - ErrDecoding: the body did not have the expected shape.
//   - ErrEmptyBody: a body was required and none arrived.
//
// The underlying cause is wrapped next to the sentinel, so both errors.Is
// checks and the original message survive.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use. Calls block until done; use Go to
// run one in the background and receive its Result exactly once. A SignIn
// racing with an authenticated call may or may not be seen by that call.
package client
