// Package cryptox hashes and verifies passwords for the credential store.
//
// Hashes are self-describing strings: the algorithm, its cost parameters and
// the per-password random salt are all encoded in the stored value, so
// verification needs only the stored string and the candidate password.
package cryptox

import (
	"errors"
	"strings"
)

// ErrUnknownHash is returned when a stored hash has no recognised prefix.
var ErrUnknownHash = errors.New("unknown password hash format")

// Supported algorithm names, as used in configuration.
const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// Hasher produces encoded password hashes.
type Hasher interface {
	Hash(password []byte) (string, error)
}

// NewHasher returns the Hasher for the configured algorithm. bcryptCost is
// only used by bcrypt; out-of-range values fall back to the library default.
func NewHasher(algorithm string, bcryptCost int) (Hasher, error) {
	switch strings.ToLower(algorithm) {
	case "", AlgorithmBcrypt:
		return NewBcryptHasher(bcryptCost), nil
	case AlgorithmArgon2id:
		return NewArgon2Hasher(DefaultArgon2Params), nil
	default:
		return nil, errors.New("unsupported hash algorithm: " + algorithm)
	}
}

// Verify reports whether password matches the encoded hash. A mismatch is
// (false, nil); an error means the stored value itself is unusable.
func Verify(encoded string, password []byte) (bool, error) {
	switch {
	case isBcrypt(encoded):
		return verifyBcrypt(encoded, password)
	case strings.HasPrefix(encoded, argon2Prefix):
		return verifyArgon2(encoded, password)
	default:
		return false, ErrUnknownHash
	}
}
