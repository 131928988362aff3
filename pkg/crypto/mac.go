// This file (mac.go) defines the keyed-MAC primitive consumed by the AEAD
// engine. The construction only depends on the KeyedHash contract, not on
// any particular hash internals; the default is keyed BLAKE2b-256, a
// proven keyed-hash MAC (RFC 7693) that needs no HMAC wrapper.
package crypto

import (
	"golang.org/x/crypto/blake2b"

	"github.com/vortexcipher/vortex-go/internal/constants"
)

// KeyedHash computes a 256-bit authentication tag over the concatenation
// of the message parts under the given key. Implementations must be
// deterministic and must process the parts exactly as if they were one
// contiguous message.
//
// The engine invokes it as KeyedHash(key, aad, nonce, ciphertext).
type KeyedHash func(key []byte, parts ...[]byte) [constants.TagSize]byte

// BLAKE2bKeyedHash is the default KeyedHash: keyed BLAKE2b-256.
// The key must be at most 64 bytes (the AEAD engine always passes its
// 32-byte key); larger keys panic, since that is a programming error
// rather than an input error.
func BLAKE2bKeyedHash(key []byte, parts ...[]byte) [constants.TagSize]byte {
	h, err := blake2b.New256(key)
	if err != nil {
		panic("crypto: keyed hash rejected key: " + err.Error())
	}
	for _, p := range parts {
		h.Write(p)
	}
	var tag [constants.TagSize]byte
	h.Sum(tag[:0])
	return tag
}
