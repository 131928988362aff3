// Package crypto implements the Vortex AEAD construction: nonce
// management, keystream expansion over the vortex block generator,
// keyed-MAC tagging, and authenticated decryption.
//
// This file (random.go) wraps the operating system CSPRNG and provides the
// zeroization and constant-time helpers the rest of the package builds on.
//
// Security Note: all random number generation uses crypto/rand, which
// sources entropy from the operating system's CSPRNG. A failure there is a
// critical system failure, never something to retry inside the library.
package crypto

import (
	"crypto/rand"
	"io"

	qerrors "github.com/vortexcipher/vortex-go/internal/errors"
)

// SecureRandom reads cryptographically secure random bytes into the
// provided slice.
func SecureRandom(b []byte) error {
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return qerrors.NewCryptoError("SecureRandom", qerrors.ErrEntropyFailure)
	}
	return nil
}

// SecureRandomBytes returns n cryptographically secure random bytes.
func SecureRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if err := SecureRandom(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MustSecureRandom reads cryptographically secure random bytes into the
// provided slice and panics if the system CSPRNG fails. Use only in
// contexts where entropy failure should be unrecoverable.
func MustSecureRandom(b []byte) {
	if err := SecureRandom(b); err != nil {
		panic("crypto: failed to read from CSPRNG: " + err.Error())
	}
}

// ConstantTimeCompare compares two byte slices in constant time with
// respect to their contents. Returns true if the slices are equal.
// Used for tag verification so no timing signal correlates with the
// position of the first mismatched byte.
func ConstantTimeCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var result byte
	for i := range a {
		result |= a[i] ^ b[i]
	}
	return result == 0
}

// Zeroize overwrites sensitive data with zeros. Call on key-derived
// scratch the moment it is no longer needed.
//
// Note: the Go runtime may have copied the data, and the compiler may in
// principle elide dead stores. For stronger guarantees, pair this with
// OS-level memory protections in deployments that need them.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroizeMultiple securely erases multiple byte slices.
func ZeroizeMultiple(slices ...[]byte) {
	for _, s := range slices {
		Zeroize(s)
	}
}
