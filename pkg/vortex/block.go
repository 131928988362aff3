package vortex

import (
	"encoding/binary"

	"github.com/vortexcipher/vortex-go/internal/constants"
)

// Sizes re-exported for callers that do not want to import internal/constants.
const (
	// KeySize is the Vortex key size in bytes.
	KeySize = constants.KeySize
	// NonceSize is the full nonce size in bytes.
	NonceSize = constants.NonceSize
	// SuperBlockSize is the keystream produced per GenerateBlock call.
	SuperBlockSize = constants.SuperBlockSize
	// LaneCount is the number of consecutive block counters consumed per call.
	LaneCount = constants.LaneCount
)

// The constant first row of the state, shared with ChaCha ("expand 32-byte k").
const (
	j0 uint32 = 0x61707865 // expa
	j1 uint32 = 0x3320646e // nd 3
	j2 uint32 = 0x79622d32 // 2-by
	j3 uint32 = 0x6b206574 // te k
)

// state is the 16-group working matrix. It holds key-derived material and
// must not outlive a single GenerateBlock call.
type state [16]vec

// GenerateBlock expands one keystream superblock: the 64-byte blocks for
// counters counter+0 .. counter+7, interleaved through the lane shuffle,
// serialized lane by lane as little-endian 32-bit words into dst.
//
// The output is a pure function of (key, nonce, counter, rounds): repeated
// calls return identical bytes on every platform and on both internal code
// paths. rounds counts double rounds; it must be positive (the AEAD layer
// enforces the actual policy floor) or GenerateBlock panics.
//
// The working state is overwritten with zeros before returning so no
// key-derived words remain on the stack frame.
func GenerateBlock(key *[KeySize]byte, nonce *[NonceSize]byte, counter uint64, rounds int, dst *[SuperBlockSize]byte) {
	generateBlock(key, nonce, counter, rounds, dst, roundsWide)
}

// roundFunc runs the complete double-round schedule over a state.
type roundFunc func(s *state, rounds int)

func generateBlock(key *[KeySize]byte, nonce *[NonceSize]byte, counter uint64, rounds int, dst *[SuperBlockSize]byte, rf roundFunc) {
	if rounds <= 0 {
		panic("vortex: non-positive round count")
	}

	var s, initial state
	initState(&s, key, nonce, counter)
	initial = s

	rf(&s, rounds)

	// Feed-forward: fold the saved initial state back in so the round
	// permutation cannot be run backwards from the keystream.
	for i := range s {
		xorv(&s[i], &initial[i])
	}

	serialize(&s, dst)

	s = state{}
	initial = state{}
}

// initState assembles the 17 initialized groups: four constants, eight key
// words, four nonce-derived words, and the lane-indexed counter vector,
// which is folded into groups 12/13 by a 64-bit add per lane.
func initState(s *state, key *[KeySize]byte, nonce *[NonceSize]byte, counter uint64) {
	for l := 0; l < LaneCount; l++ {
		s[0][l] = j0
		s[1][l] = j1
		s[2][l] = j2
		s[3][l] = j3
	}

	for i := 0; i < 8; i++ {
		k := binary.LittleEndian.Uint32(key[i*4:])
		for l := 0; l < LaneCount; l++ {
			s[4+i][l] = k
		}
	}

	// Fold the six little-endian nonce words down to four. w4/w5 hold the
	// message counter half of the nonce, so for a fixed base distinct
	// messages land in distinct d0/d1; every nonce bit reaches the state.
	w0 := binary.LittleEndian.Uint32(nonce[0:])
	w1 := binary.LittleEndian.Uint32(nonce[4:])
	w2 := binary.LittleEndian.Uint32(nonce[8:])
	w3 := binary.LittleEndian.Uint32(nonce[12:])
	w4 := binary.LittleEndian.Uint32(nonce[16:])
	w5 := binary.LittleEndian.Uint32(nonce[20:])
	d0 := w0 ^ w4
	d1 := w1 ^ w5

	base := uint64(d1)<<32 | uint64(d0)
	for l := 0; l < LaneCount; l++ {
		t := base + counter + uint64(l)
		s[12][l] = uint32(t)
		s[13][l] = uint32(t >> 32)
		s[14][l] = w2
		s[15][l] = w3
	}
}

// roundsWide is the production round schedule on whole-group operations.
// Each double round: column quarter-rounds, shuffle of the odd column
// quadruples, diagonal quarter-rounds, shuffle of the even column
// quadruples. The schedule is fixed; it is not a tunable.
func roundsWide(s *state, rounds int) {
	for r := 0; r < rounds; r++ {
		quarterRound(&s[0], &s[4], &s[8], &s[12])
		quarterRound(&s[1], &s[5], &s[9], &s[13])
		quarterRound(&s[2], &s[6], &s[10], &s[14])
		quarterRound(&s[3], &s[7], &s[11], &s[15])

		shuffle(&s[1], &s[5], &s[9], &s[13])
		shuffle(&s[3], &s[7], &s[11], &s[15])

		quarterRound(&s[0], &s[5], &s[10], &s[15])
		quarterRound(&s[1], &s[6], &s[11], &s[12])
		quarterRound(&s[2], &s[7], &s[8], &s[13])
		quarterRound(&s[3], &s[4], &s[9], &s[14])

		shuffle(&s[0], &s[4], &s[8], &s[12])
		shuffle(&s[2], &s[6], &s[10], &s[14])
	}
}

// roundsRef is the scalar reference schedule: identical structure built on
// quarterRoundRef. It exists to prove the wide path bit-equal to a second,
// independently written rendition and as a portability fallback.
func roundsRef(s *state, rounds int) {
	column := [4][4]int{{0, 4, 8, 12}, {1, 5, 9, 13}, {2, 6, 10, 14}, {3, 7, 11, 15}}
	diagonal := [4][4]int{{0, 5, 10, 15}, {1, 6, 11, 12}, {2, 7, 8, 13}, {3, 4, 9, 14}}

	for r := 0; r < rounds; r++ {
		for _, q := range column {
			quarterRoundRef(&s[q[0]], &s[q[1]], &s[q[2]], &s[q[3]])
		}
		shuffle(&s[1], &s[5], &s[9], &s[13])
		shuffle(&s[3], &s[7], &s[11], &s[15])

		for _, q := range diagonal {
			quarterRoundRef(&s[q[0]], &s[q[1]], &s[q[2]], &s[q[3]])
		}
		shuffle(&s[0], &s[4], &s[8], &s[12])
		shuffle(&s[2], &s[6], &s[10], &s[14])
	}
}

// serialize writes the state lane by lane: lane l occupies
// dst[l*64 : (l+1)*64] as sixteen little-endian 32-bit words.
func serialize(s *state, dst *[SuperBlockSize]byte) {
	for l := 0; l < LaneCount; l++ {
		off := l * constants.BlockSize
		for i := 0; i < constants.StateWords; i++ {
			binary.LittleEndian.PutUint32(dst[off+i*4:], s[i][l])
		}
	}
}
