// Package models defines the values exchanged between the sighting API
// client and its callers.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrEmptyCredentials is returned by Validate when either field is blank.
var ErrEmptyCredentials = errors.New("username and password must not be empty")

// Credentials is the sign-up / sign-in payload. It is built per request and
// never retained by the client. Password stays a byte slice so the caller
// can wipe it; it is encoded as a plain JSON string, not base64.
type Credentials struct {
	Username string
	Password []byte
}

// Validate reports whether both fields are non-empty.
func (c Credentials) Validate() error {
	if c.Username == "" || len(c.Password) == 0 {
		return ErrEmptyCredentials
	}
	return nil
}

// MarshalJSON writes {"username":...,"password":...} without turning the
// password into a string. The caller owns the result and may wipe it.
func (c Credentials) MarshalJSON() ([]byte, error) {
	if !utf8.Valid(c.Password) {
		return nil, errors.New("password is not valid UTF-8")
	}

	user, err := json.Marshal(c.Username)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(user)+len(c.Password)+32)
	out = append(out, `{"username":`...)
	out = append(out, user...)
	out = append(out, `,"password":`...)
	out = appendJSONString(out, c.Password)
	out = append(out, '}')
	return out, nil
}

func (c *Credentials) UnmarshalJSON(data []byte) error {
	var w struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.Username = w.Username
	c.Password = []byte(w.Password)
	return nil
}

// appendJSONString quotes s as a JSON string. Only the characters JSON
// requires to be escaped are touched.
func appendJSONString(dst, s []byte) []byte {
	const hex = "0123456789abcdef"

	dst = append(dst, '"')
	for _, b := range s {
		switch {
		case b == '"' || b == '\\':
			dst = append(dst, '\\', b)
		case b == '\n':
			dst = append(dst, '\\', 'n')
		case b == '\r':
			dst = append(dst, '\\', 'r')
		case b == '\t':
			dst = append(dst, '\\', 't')
		case b < 0x20:
			dst = append(dst, '\\', 'u', '0', '0', hex[b>>4], hex[b&0xf])
		default:
			dst = append(dst, b)
		}
	}
	return append(dst, '"')
}

// Bearer is the sign-in response body. Token is opaque to the client.
type Bearer struct {
	Token string `json:"token"`
}

// String keeps the password out of logs and %v output.
func (c Credentials) String() string {
	return fmt.Sprintf("{%s ***}", c.Username)
}
