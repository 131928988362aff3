// Package vortex implements the Vortex keystream generator, a
// lane-interleaved ARX permutation derived from the ChaCha quarter-round.
//
// # Construction
//
// Vortex expands a (key, nonce, counter) triple into 512-byte keystream
// superblocks. The working state is a 16-row matrix where each row (a
// "group") holds eight 32-bit lanes, i.e. one 256-bit register on vector
// hardware:
//
//	 0:cccccccc   1:cccccccc   2:cccccccc   3:cccccccc
//	 4:kkkkkkkk   5:kkkkkkkk   6:kkkkkkkk   7:kkkkkkkk
//	 8:kkkkkkkk   9:kkkkkkkk  10:kkkkkkkk  11:kkkkkkkk
//	12:dddddddd  13:dddddddd  14:dddddddd  15:dddddddd
//
//	c=constant k=key d=nonce-derived (with the lane-indexed block
//	counter added into rows 12/13 as a 64-bit quantity)
//
// Unlike plain multi-block ChaCha, the eight lanes are not independent:
// after each quarter-round layer a fixed shuffle rotates the 64-bit
// sub-words of half the state groups, diffusing bits across lanes and
// binding the superblock into a single 512-byte unit. A scalar rendition
// must therefore reproduce the lane rotations exactly; the package carries
// an independently written reference path that is proven bit-equal to the
// wide path by the package tests.
//
// # Security Notes
//
// The quarter-round is bit-for-bit the ChaCha quarter-round (RFC 8439):
// the rotation amounts 16/12/8/7 and the operation order carry the
// inherited security argument and must not be altered. The shuffle is a
// fixed, data-independent permutation: no arithmetic, no secret-indexed
// memory access, constant time on all inputs.
package vortex

import "math/bits"

// vec is one working-state group: eight 32-bit lanes processed in
// lock-step, one 256-bit register on vector hardware.
type vec [8]uint32

// The following helpers are written as straight-line code over fixed-size
// arrays so the compiler can keep each vec in one wide register.

func addv(x, y *vec) {
	x[0] += y[0]
	x[1] += y[1]
	x[2] += y[2]
	x[3] += y[3]
	x[4] += y[4]
	x[5] += y[5]
	x[6] += y[6]
	x[7] += y[7]
}

func xorv(x, y *vec) {
	x[0] ^= y[0]
	x[1] ^= y[1]
	x[2] ^= y[2]
	x[3] ^= y[3]
	x[4] ^= y[4]
	x[5] ^= y[5]
	x[6] ^= y[6]
	x[7] ^= y[7]
}

func rotlv(x *vec, k int) {
	x[0] = bits.RotateLeft32(x[0], k)
	x[1] = bits.RotateLeft32(x[1], k)
	x[2] = bits.RotateLeft32(x[2], k)
	x[3] = bits.RotateLeft32(x[3], k)
	x[4] = bits.RotateLeft32(x[4], k)
	x[5] = bits.RotateLeft32(x[5], k)
	x[6] = bits.RotateLeft32(x[6], k)
	x[7] = bits.RotateLeft32(x[7], k)
}

// quarterRound applies the ChaCha ARX sequence to four state groups,
// identically and independently across all eight lanes:
// add, xor, rotate 16; add, xor, rotate 12; add, xor, rotate 8;
// add, xor, rotate 7.
func quarterRound(a, b, c, d *vec) {
	addv(a, b)
	xorv(d, a)
	rotlv(d, 16)

	addv(c, d)
	xorv(b, c)
	rotlv(b, 12)

	addv(a, b)
	xorv(d, a)
	rotlv(d, 8)

	addv(c, d)
	xorv(b, c)
	rotlv(b, 7)
}

// quarterRoundRef is the scalar reference rendition of quarterRound: the
// same arithmetic, one lane at a time. Kept deliberately independent of
// the wide helpers so the bit-equality tests compare two implementations
// rather than one implementation with itself.
func quarterRoundRef(a, b, c, d *vec) {
	for l := 0; l < 8; l++ {
		x, y, z, w := a[l], b[l], c[l], d[l]
		x += y
		w ^= x
		w = bits.RotateLeft32(w, 16)
		z += w
		y ^= z
		y = bits.RotateLeft32(y, 12)
		x += y
		w ^= x
		w = bits.RotateLeft32(w, 8)
		z += w
		y ^= z
		y = bits.RotateLeft32(y, 7)
		a[l], b[l], c[l], d[l] = x, y, z, w
	}
}

// laneRotate rotates the four 64-bit sub-words of a 256-bit group left by
// one position: lane l takes the value of lane (l+2) mod 8. On vector
// hardware this is a single fixed byte-shuffle; the mask is public and
// independent of the data.
func laneRotate(v *vec) {
	v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7] =
		v[2], v[3], v[4], v[5], v[6], v[7], v[0], v[1]
}

// shuffle applies laneRotate to each group of a state quadruple. It is the
// only operation that moves bits between lanes; without it the superblock
// would degenerate into eight independent streams.
func shuffle(s0, s1, s2, s3 *vec) {
	laneRotate(s0)
	laneRotate(s1)
	laneRotate(s2)
	laneRotate(s3)
}
