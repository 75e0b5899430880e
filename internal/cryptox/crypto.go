// Package cryptox derives and checks password verifiers for the reference
// server. Passwords are never stored; only a salt and a verifier are.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/animalspotter/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the random salt stored next to each verifier.
const SaltSize = 32

// DeriveKey stretches password with argon2id (1 pass, 64 MiB, 4 lanes) into
// a 32-byte key.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key so the key itself is not kept at rest.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// NewVerifier draws a fresh salt and returns it together with the verifier
// for password.
func NewVerifier(password []byte) (salt, verifier []byte) {
	salt = common.GenerateRandByteArray(SaltSize)
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return salt, MakeVerifier(key)
}

// CheckPassword reports whether password matches the stored salt and
// verifier. The comparison is constant time.
func CheckPassword(password, salt, verifier []byte) bool {
	key := DeriveKey(password, salt)
	defer common.WipeByteArray(key)
	return subtle.ConstantTimeCompare(MakeVerifier(key), verifier) == 1
}
