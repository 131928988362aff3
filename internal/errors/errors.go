// Package errors defines the error taxonomy for the Vortex AEAD.
// Every failure surfaced by the library wraps one of these sentinels so
// callers can classify outcomes with errors.Is without parsing messages,
// and so no error text ever carries key or plaintext material.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for malformed inputs.
var (
	// ErrInvalidKeySize indicates a key that is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("vortex: invalid key size")

	// ErrInvalidNonceSize indicates a nonce that is not exactly 24 bytes.
	ErrInvalidNonceSize = errors.New("vortex: invalid nonce size")

	// ErrCiphertextTooShort indicates an envelope shorter than the
	// minimum nonce-plus-tag framing.
	ErrCiphertextTooShort = errors.New("vortex: ciphertext shorter than envelope framing")
)

// Sentinel errors for configuration.
var (
	// ErrInvalidRounds indicates a round count at or below the hard floor.
	ErrInvalidRounds = errors.New("vortex: round count below hard floor")
)

// Sentinel errors for authenticated decryption and nonce management.
var (
	// ErrAuthenticationFailed indicates the recomputed tag did not match.
	// No plaintext is released when this is returned.
	ErrAuthenticationFailed = errors.New("vortex: authentication failed")

	// ErrCounterExhausted indicates the message counter for a nonce base
	// has wrapped; the caller must generate a fresh base (and should
	// consider rekeying).
	ErrCounterExhausted = errors.New("vortex: nonce counter exhausted, new base required")

	// ErrEntropyFailure indicates the system CSPRNG failed. This should
	// be treated as a critical system failure, not retried.
	ErrEntropyFailure = errors.New("vortex: system entropy source failed")
)

// CryptoError wraps a cryptographic error with the operation that failed.
type CryptoError struct {
	Op  string // operation that failed, e.g. "aead.Decrypt"
	Err error  // underlying error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// NewCryptoError creates a new CryptoError.
func NewCryptoError(op string, err error) *CryptoError {
	return &CryptoError{Op: op, Err: err}
}

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
