// This file (nonce.go) implements nonce management for the Vortex AEAD.
//
// A message nonce is 192 bits: a 128-bit random base followed by 64 bits
// of monotonic message counter XORed with an associated-data binding
// digest. Only the base is ever random; within a stream the caller owns
// the counter and must keep it strictly increasing per base. Reuse of a
// (base, counter) pair under the same key exposes keystream and is a
// fatal caller error the library cannot detect.
//
// The AAD binding is the defense against associated-data substitution:
// two messages with identical (base, counter) but different AAD derive
// different nonces, so they never share keystream. The binding digest is
// SHAKE-256 over the AAD with a length-prefixed domain separator, the
// same framing discipline used throughout this package.
package crypto

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"sync/atomic"

	"github.com/vortexcipher/vortex-go/internal/constants"
	qerrors "github.com/vortexcipher/vortex-go/internal/errors"
)

// GenerateNonceBase returns a fresh 128-bit random nonce base.
// One base serves a whole stream of messages; pair it with a
// NonceSequence for the counters.
func GenerateNonceBase() ([constants.NonceBaseSize]byte, error) {
	var base [constants.NonceBaseSize]byte
	if err := SecureRandom(base[:]); err != nil {
		return base, err
	}
	return base, nil
}

// DeriveNonce deterministically derives the 192-bit message nonce from a
// base, a message counter, and the associated data. The counter occupies
// the trailing 8 bytes little-endian, XORed with the one-way AAD binding
// digest; the mix is not reversible to the AAD.
func DeriveNonce(base [constants.NonceBaseSize]byte, counter uint64, aad []byte) [constants.NonceSize]byte {
	var nonce [constants.NonceSize]byte
	copy(nonce[:constants.NonceBaseSize], base[:])

	bind := aadBindDigest(aad)
	var ctr [constants.NonceBindSize]byte
	binary.LittleEndian.PutUint64(ctr[:], counter)
	for i := 0; i < constants.NonceBindSize; i++ {
		nonce[constants.NonceBaseSize+i] = ctr[i] ^ bind[i]
	}
	return nonce
}

// aadBindDigest computes the 64-bit AAD binding value with SHAKE-256
// under a length-prefixed domain separator.
func aadBindDigest(aad []byte) [constants.NonceBindSize]byte {
	h := sha3.NewShake256()

	var lenBuf [4]byte
	domain := []byte(constants.DomainSeparatorAADBind)
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(domain)))
	h.Write(lenBuf[:])
	h.Write(domain)

	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(aad)))
	h.Write(lenBuf[:])
	h.Write(aad)

	var out [constants.NonceBindSize]byte
	_, _ = h.Read(out[:]) // SHAKE256.Read never fails
	return out
}

// NonceSequence is the caller-owned monotonic message counter for
// streaming mode, bound to one nonce base.
//
// The counter advances atomically, so one sequence may be shared across
// goroutines encrypting under the same key; each Next call returns a
// distinct counter value exactly once. This is the single piece of
// mutable shared state in the design. Persisting a sequence across
// process restarts means persisting Counter() and restoring with
// ResumeNonceSequence — restoring a stale counter value reuses nonces.
type NonceSequence struct {
	base [constants.NonceBaseSize]byte
	next atomic.Uint64
}

// NewNonceSequence creates a sequence with a fresh random base and the
// counter at zero.
func NewNonceSequence() (*NonceSequence, error) {
	base, err := GenerateNonceBase()
	if err != nil {
		return nil, err
	}
	return ResumeNonceSequence(base, 0), nil
}

// ResumeNonceSequence reconstructs a sequence from a persisted base and
// next-counter value. The caller is responsible for next being strictly
// greater than every counter already consumed under this base.
func ResumeNonceSequence(base [constants.NonceBaseSize]byte, next uint64) *NonceSequence {
	s := &NonceSequence{base: base}
	s.next.Store(next)
	return s
}

// Next derives the nonce for the next message, binding the given AAD,
// and advances the counter. Returns ErrCounterExhausted once the 64-bit
// counter space is consumed; the caller must then generate a fresh base.
func (s *NonceSequence) Next(aad []byte) ([constants.NonceSize]byte, error) {
	for {
		c := s.next.Load()
		if c == ^uint64(0) {
			// The final counter value is sacrificed so the sequence
			// saturates instead of wrapping back to reused values.
			return [constants.NonceSize]byte{}, qerrors.NewCryptoError("NonceSequence.Next", qerrors.ErrCounterExhausted)
		}
		if s.next.CompareAndSwap(c, c+1) {
			return DeriveNonce(s.base, c, aad), nil
		}
	}
}

// Base returns the sequence's nonce base for persistence.
func (s *NonceSequence) Base() [constants.NonceBaseSize]byte {
	return s.base
}

// Counter returns the next counter value that will be consumed, for
// persistence alongside Base.
func (s *NonceSequence) Counter() uint64 {
	return s.next.Load()
}
