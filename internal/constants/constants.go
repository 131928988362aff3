// Package constants defines security parameters and wire-format constants for
// the Vortex lane-interleaved AEAD.
//
// Vortex is a 256-bit-key ARX stream cipher that expands keystream in
// 512-byte superblocks (eight 64-byte lanes processed in lock-step, coupled
// by a fixed lane shuffle) and authenticates with a 256-bit keyed MAC.
package constants

// Key, nonce and tag sizes (bytes).
const (
	// KeySize is the size of a Vortex key in bytes (256 bits).
	KeySize = 32

	// NonceSize is the size of a full message nonce in bytes (192 bits):
	// a 128-bit random base followed by a 64-bit message counter mixed
	// with the associated-data binding digest.
	NonceSize = 24

	// NonceBaseSize is the size of the random nonce base in bytes (128 bits).
	NonceBaseSize = 16

	// NonceBindSize is the number of counter-adjacent nonce bytes that
	// carry the associated-data binding (64 bits).
	NonceBindSize = 8

	// TagSize is the size of the authentication tag in bytes (256 bits).
	TagSize = 32
)

// Keystream geometry.
const (
	// LaneCount is the data-parallelism factor: the number of consecutive
	// block-counter values whose keystream is produced per generator call.
	LaneCount = 8

	// BlockSize is the size of one keystream lane in bytes.
	BlockSize = 64

	// SuperBlockSize is the keystream produced per generator invocation:
	// LaneCount lanes of BlockSize bytes.
	SuperBlockSize = LaneCount * BlockSize

	// StateWords is the number of 32-bit words in one lane of the
	// working state matrix.
	StateWords = 16
)

// Envelope framing: nonce || ciphertext || tag.
const (
	// EnvelopeOverhead is the number of bytes the envelope adds on top of
	// the plaintext length.
	EnvelopeOverhead = NonceSize + TagSize

	// MinEnvelopeSize is the smallest well-formed envelope (empty plaintext).
	MinEnvelopeSize = EnvelopeOverhead
)

// Round-count policy.
//
// A "round" is one full double round: column quarter-rounds, lane shuffle,
// diagonal quarter-rounds, lane shuffle. The recommended count of 20 carries
// the inherited ChaCha-equivalent security margin; reduced counts down to the
// hard floor are usable for benchmarking but are advisory-warned.
const (
	// RoundsRecommended is the default and recommended double-round count.
	RoundsRecommended = 20

	// RoundsHardFloor is the highest rejected double-round count: requests
	// at or below this value are a fatal configuration error.
	RoundsHardFloor = 8
)

// Domain separators for the hash derivations inside the AEAD construction.
const (
	// DomainSeparatorAADBind is used when binding associated data into
	// the nonce.
	DomainSeparatorAADBind = "vortex-v1-aad-bind"

	// DomainSeparatorSelfTest is used by the power-on self-test vectors.
	DomainSeparatorSelfTest = "vortex-v1-self-test"
)
