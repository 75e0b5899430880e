// Package common contains shared constants and sentinel errors used across
// the animal spotter client and its reference server.
package common

const (
	// AuthorizationHeaderName carries the session token on authenticated requests.
	AuthorizationHeaderName = "Authorization"

	// BearerPrefix precedes the token inside the Authorization header value.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName correlates a client call with server-side log lines.
	RequestIDHeaderName = "X-Request-ID"

	// ContentTypeJSON is sent with every JSON request body.
	ContentTypeJSON = "application/json"
)
