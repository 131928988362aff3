package crypto_test

import (
	"bytes"
	"testing"

	"github.com/vortexcipher/vortex-go/pkg/crypto"
)

func TestSecureRandom(t *testing.T) {
	a := make([]byte, 64)
	b := make([]byte, 64)
	if err := crypto.SecureRandom(a); err != nil {
		t.Fatalf("SecureRandom failed: %v", err)
	}
	if err := crypto.SecureRandom(b); err != nil {
		t.Fatalf("SecureRandom failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatal("two 64-byte draws collided")
	}
	if bytes.Equal(a, make([]byte, 64)) {
		t.Fatal("draw returned all zeros")
	}
}

func TestSecureRandomBytes(t *testing.T) {
	for _, n := range []int{0, 1, 32, 1024} {
		b, err := crypto.SecureRandomBytes(n)
		if err != nil {
			t.Fatalf("SecureRandomBytes(%d) failed: %v", n, err)
		}
		if len(b) != n {
			t.Fatalf("len = %d, want %d", len(b), n)
		}
	}
}

func TestConstantTimeCompare(t *testing.T) {
	cases := []struct {
		a, b []byte
		want bool
	}{
		{[]byte{}, []byte{}, true},
		{[]byte{1, 2, 3}, []byte{1, 2, 3}, true},
		{[]byte{1, 2, 3}, []byte{1, 2, 4}, false},
		{[]byte{1, 2, 3}, []byte{1, 2}, false},
		{nil, []byte{}, true},
	}
	for i, tc := range cases {
		if got := crypto.ConstantTimeCompare(tc.a, tc.b); got != tc.want {
			t.Errorf("case %d: got %v, want %v", i, got, tc.want)
		}
	}
}

func TestZeroize(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	crypto.Zeroize(b)
	if !bytes.Equal(b, make([]byte, 4)) {
		t.Fatal("Zeroize left residue")
	}

	x := []byte{5, 6}
	y := []byte{7, 8, 9}
	crypto.ZeroizeMultiple(x, y, nil)
	if x[0]|x[1]|y[0]|y[1]|y[2] != 0 {
		t.Fatal("ZeroizeMultiple left residue")
	}
}
