// Package models holds the records the reference server stores.
package models

// User is an account. The password itself is never stored, only the salt
// and the verifier derived from it.
type User struct {
	ID       string
	UserName string
	Salt     []byte
	Verifier []byte
}
