// Package vortexgo provides authenticated encryption built on the Vortex
// lane-interleaved ARX stream cipher.
//
// Vortex expands keystream in 512-byte superblocks: eight 64-byte lanes
// driven by consecutive block counters, processed in SIMD-style lock-step
// through the ChaCha quarter-round and bound together by a fixed lane
// shuffle. The AEAD construction frames messages as
// nonce || ciphertext || tag, with a 192-bit nonce that cryptographically
// binds the associated data and a 256-bit keyed-BLAKE2b authentication tag
// verified in constant time before any plaintext is produced.
//
// # Quick Start
//
// Single-shot encryption with an automatically derived nonce:
//
//	import "github.com/vortexcipher/vortex-go/pkg/crypto"
//
//	aead, _ := crypto.New(key) // key is 32 bytes, caller-owned
//	envelope, _ := aead.Encrypt(plaintext, aad)
//	recovered, err := aead.Decrypt(envelope, aad)
//
// Streaming mode with a caller-owned nonce sequence:
//
//	seq, _ := crypto.NewNonceSequence()
//	nonce, _ := seq.Next(aad)
//	envelope, _ := aead.EncryptWithNonce(nonce, plaintext, aad)
//
// Raw keystream expansion, for analysis and interoperability testing:
//
//	import "github.com/vortexcipher/vortex-go/pkg/vortex"
//
//	var block [vortex.SuperBlockSize]byte
//	vortex.GenerateBlock(&key, &nonce, counter, 20, &block)
//
// # Package Structure
//
//   - pkg/crypto: AEAD engine, nonce management, keyed MAC, round policy,
//     secure random, power-on self-test
//   - pkg/vortex: the keystream generator (round core and block generator)
//   - pkg/metrics: structured logging and tracing hooks
//   - internal/constants: security parameters and wire-format constants
//   - internal/errors: error taxonomy for classifiable failures
//
// # Security Properties
//
//   - 256-bit key, 192-bit non-repeating nonce, 256-bit MAC tag
//   - associated data is both authenticated and bound into the nonce
//   - tag verification is constant time and precedes keystream work
//   - key-derived scratch is zeroed before buffers are reused
//   - encrypt and decrypt are safe to call concurrently; the streaming
//     nonce counter advances atomically
package vortexgo
