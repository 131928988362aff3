// This file (aead.go) implements the Vortex AEAD engine.
//
// Wire format (byte-exact, little-endian where integers appear):
//
//	[0:24)            nonce
//	[24, 24+len)      ciphertext (same length as plaintext)
//	[24+len, +32)     tag = KeyedHash(key, aad || nonce || ciphertext)
//
// Encryption XORs plaintext with keystream expanded in 512-byte
// superblocks; the block counter starts at zero per message and advances
// by the lane count (8) per superblock. Decryption verifies the tag over
// the full 32 bytes in constant time before any keystream is regenerated;
// on mismatch no plaintext is produced, not even partially.
//
// CRITICAL: a repeated (key, nonce) pair exposes keystream. Single-shot
// Encrypt derives a fresh random base per call; streaming callers own the
// counter discipline via NonceSequence.
package crypto

import (
	"context"

	"github.com/vortexcipher/vortex-go/internal/constants"
	qerrors "github.com/vortexcipher/vortex-go/internal/errors"
	"github.com/vortexcipher/vortex-go/pkg/metrics"
	"github.com/vortexcipher/vortex-go/pkg/vortex"
)

// AEAD is a Vortex authenticated-encryption instance bound to one key.
//
// An AEAD is safe for concurrent use: every call works on its own scratch
// state and the key material is never mutated after construction. The only
// shared mutable state in the design is a streaming NonceSequence, which
// advances atomically.
type AEAD struct {
	key    [constants.KeySize]byte
	rounds int
	mac    KeyedHash
	logger *metrics.Logger
	tracer metrics.Tracer
	warnFn func(msg string)
}

// Option configures an AEAD instance.
type Option func(*AEAD)

// WithRounds sets the double-round count. The default is the recommended
// 20; reduced counts are validated against the security policy.
func WithRounds(rounds int) Option {
	return func(a *AEAD) { a.rounds = rounds }
}

// WithKeyedHash replaces the MAC primitive. The default is keyed
// BLAKE2b-256.
func WithKeyedHash(kh KeyedHash) Option {
	return func(a *AEAD) {
		if kh != nil {
			a.mac = kh
		}
	}
}

// WithLogger attaches a logger; the engine emits only advisory events
// (never key, nonce, plaintext, or tag material).
func WithLogger(l *metrics.Logger) Option {
	return func(a *AEAD) { a.logger = l }
}

// WithTracer attaches a tracer for encrypt/decrypt spans.
func WithTracer(t metrics.Tracer) Option {
	return func(a *AEAD) {
		if t != nil {
			a.tracer = t
		}
	}
}

// WithWarningFunc registers a callback for non-fatal policy warnings,
// such as an accepted-but-reduced round count.
func WithWarningFunc(fn func(msg string)) Option {
	return func(a *AEAD) { a.warnFn = fn }
}

// New creates an AEAD bound to the given 32-byte key.
//
// The key is copied; the caller keeps ownership of its slice and may
// zeroize it immediately. A round count at or below the policy hard floor
// fails with ErrInvalidRounds; a reduced-but-accepted count surfaces a
// warning through the logger and the WithWarningFunc callback and then
// proceeds.
func New(key []byte, opts ...Option) (*AEAD, error) {
	if len(key) != constants.KeySize {
		return nil, qerrors.NewCryptoError("aead.New", qerrors.ErrInvalidKeySize)
	}

	a := &AEAD{
		rounds: constants.RoundsRecommended,
		mac:    BLAKE2bKeyedHash,
		tracer: metrics.NoOpTracer{},
	}
	for _, opt := range opts {
		opt(a)
	}

	verdict, err := ValidateRounds(a.rounds)
	if err != nil {
		return nil, err
	}
	if verdict == RoundsReduced {
		a.warn("round count below recommended margin", a.rounds)
	}

	copy(a.key[:], key)
	return a, nil
}

// warn surfaces a non-fatal policy warning on every configured channel.
func (a *AEAD) warn(msg string, rounds int) {
	if a.logger != nil {
		a.logger.Warn(msg, metrics.Fields{
			"rounds":      rounds,
			"recommended": constants.RoundsRecommended,
		})
	}
	if a.warnFn != nil {
		a.warnFn(msg)
	}
}

// Rounds returns the configured double-round count.
func (a *AEAD) Rounds() int {
	return a.rounds
}

// Overhead returns the bytes the envelope adds to the plaintext length.
func (a *AEAD) Overhead() int {
	return constants.EnvelopeOverhead
}

// Zeroize erases the instance's key copy. The AEAD must not be used
// afterwards.
func (a *AEAD) Zeroize() {
	Zeroize(a.key[:])
}

// Encrypt authenticates and encrypts plaintext in single-shot mode: a
// fresh random nonce base is drawn, the message counter is zero, and the
// associated data is bound into the nonce. Returns the self-describing
// envelope nonce || ciphertext || tag.
func (a *AEAD) Encrypt(plaintext, aad []byte) ([]byte, error) {
	base, err := GenerateNonceBase()
	if err != nil {
		return nil, err
	}
	nonce := DeriveNonce(base, 0, aad)
	return a.seal(nonce, plaintext, aad, make([]byte, constants.EnvelopeOverhead+len(plaintext)))
}

// EncryptWithNonce authenticates and encrypts in streaming mode with a
// caller-derived nonce, normally obtained from NonceSequence.Next. The
// caller is responsible for never reusing a nonce under this key.
func (a *AEAD) EncryptWithNonce(nonce [constants.NonceSize]byte, plaintext, aad []byte) ([]byte, error) {
	return a.seal(nonce, plaintext, aad, make([]byte, constants.EnvelopeOverhead+len(plaintext)))
}

// EncryptPooled is Encrypt backed by the package buffer pool. The caller
// must hand the returned envelope to PutEnvelopeBuffer when done with it;
// the pool zeroes it on return.
func (a *AEAD) EncryptPooled(plaintext, aad []byte) ([]byte, error) {
	base, err := GenerateNonceBase()
	if err != nil {
		return nil, err
	}
	nonce := DeriveNonce(base, 0, aad)
	return a.seal(nonce, plaintext, aad, GetEnvelopeBuffer(constants.EnvelopeOverhead+len(plaintext)))
}

// seal fills the pre-sized envelope: nonce, ciphertext, tag.
func (a *AEAD) seal(nonce [constants.NonceSize]byte, plaintext, aad, envelope []byte) ([]byte, error) {
	_, end := a.tracer.StartSpan(context.Background(), metrics.SpanEncrypt,
		metrics.WithAttributes(metrics.SpanAttributes{
			MessageBytes:  int64(len(plaintext)),
			EnvelopeBytes: int64(len(envelope)),
			AADBytes:      int64(len(aad)),
			Rounds:        a.rounds,
		}.ToMap()))

	copy(envelope[:constants.NonceSize], nonce[:])

	ciphertext := envelope[constants.NonceSize : constants.NonceSize+len(plaintext)]
	a.xorKeystream(ciphertext, plaintext, &nonce)

	tag := a.mac(a.key[:], aad, nonce[:], ciphertext)
	copy(envelope[constants.NonceSize+len(plaintext):], tag[:])

	end(nil)
	return envelope, nil
}

// Decrypt verifies and decrypts an envelope produced by Encrypt or
// EncryptWithNonce under the same key and associated data.
//
// Malformed envelopes fail with ErrCiphertextTooShort. A tag mismatch
// fails with ErrAuthenticationFailed after a constant-time comparison of
// the full 32 bytes; keystream is only regenerated, and plaintext only
// allocated, after the tag has verified.
func (a *AEAD) Decrypt(envelope, aad []byte) ([]byte, error) {
	_, end := a.tracer.StartSpan(context.Background(), metrics.SpanDecrypt,
		metrics.WithAttributes(metrics.SpanAttributes{
			EnvelopeBytes: int64(len(envelope)),
			AADBytes:      int64(len(aad)),
			Rounds:        a.rounds,
		}.ToMap()))

	if len(envelope) < constants.MinEnvelopeSize {
		err := qerrors.NewCryptoError("aead.Decrypt", qerrors.ErrCiphertextTooShort)
		end(err)
		return nil, err
	}

	var nonce [constants.NonceSize]byte
	copy(nonce[:], envelope[:constants.NonceSize])
	ciphertext := envelope[constants.NonceSize : len(envelope)-constants.TagSize]
	received := envelope[len(envelope)-constants.TagSize:]

	tag := a.mac(a.key[:], aad, nonce[:], ciphertext)
	if !ConstantTimeCompare(tag[:], received) {
		err := qerrors.NewCryptoError("aead.Decrypt", qerrors.ErrAuthenticationFailed)
		end(err)
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	a.xorKeystream(plaintext, ciphertext, &nonce)

	end(nil)
	return plaintext, nil
}

// xorKeystream XORs src into dst through the keystream for nonce,
// expanding one superblock at a time. The final partial superblock uses
// only the needed prefix; the scratch buffer is zeroed and pooled on
// every path out.
func (a *AEAD) xorKeystream(dst, src []byte, nonce *[constants.NonceSize]byte) {
	if len(src) == 0 {
		return
	}

	ks := globalPool.GetSuperBlock()
	defer globalPool.PutSuperBlock(ks)

	var counter uint64
	for off := 0; off < len(src); off += constants.SuperBlockSize {
		vortex.GenerateBlock(&a.key, nonce, counter, a.rounds, ks)

		n := len(src) - off
		if n > constants.SuperBlockSize {
			n = constants.SuperBlockSize
		}
		for i := 0; i < n; i++ {
			dst[off+i] = src[off+i] ^ ks[i]
		}
		counter += constants.LaneCount
	}
}
