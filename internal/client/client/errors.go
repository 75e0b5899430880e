package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEncoding     = errors.New("request encoding failed")
	ErrTransport    = errors.New("transport failure")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDecoding     = errors.New("response decoding failed")
	ErrEmptyBody    = errors.New("empty response body")

	// ErrNotSignedIn is returned without touching the network when an
	// authenticated call is made before the first successful SignIn.
	ErrNotSignedIn = fmt.Errorf("%w: no session token", ErrUnauthorized)
)

// ServerError reports a non-success HTTP status other than 401 on an
// authenticated call, or any non-200 status on sign-up and sign-in.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// StatusCode extracts the HTTP status from a *ServerError anywhere in err's
// chain. ok is false for every other error.
func StatusCode(err error) (code int, ok bool) {
	var se *ServerError
	if errors.As(err, &se) {
		return se.StatusCode, true
	}
	return 0, false
}
