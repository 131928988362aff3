package crypto_test

import (
	"testing"

	"github.com/vortexcipher/vortex-go/internal/constants"
	"github.com/vortexcipher/vortex-go/pkg/crypto"
)

func TestKeyedHashDeterminism(t *testing.T) {
	key := testAEADKey()
	a := crypto.BLAKE2bKeyedHash(key, []byte("aad"), []byte("nonce"), []byte("ct"))
	b := crypto.BLAKE2bKeyedHash(key, []byte("aad"), []byte("nonce"), []byte("ct"))
	if a != b {
		t.Fatal("keyed hash is not deterministic")
	}
	if len(a) != constants.TagSize {
		t.Fatalf("tag size = %d, want %d", len(a), constants.TagSize)
	}
}

func TestKeyedHashKeySeparation(t *testing.T) {
	k1 := testAEADKey()
	k2 := testAEADKey()
	k2[0] ^= 1

	msg := []byte("same message")
	if crypto.BLAKE2bKeyedHash(k1, msg) == crypto.BLAKE2bKeyedHash(k2, msg) {
		t.Fatal("distinct keys produced identical tags")
	}
}

func TestKeyedHashInputSensitivity(t *testing.T) {
	key := testAEADKey()
	base := crypto.BLAKE2bKeyedHash(key, []byte("aad"), []byte("nonce"), []byte("ct"))

	variants := [][][]byte{
		{[]byte("aae"), []byte("nonce"), []byte("ct")},
		{[]byte("aad"), []byte("noncf"), []byte("ct")},
		{[]byte("aad"), []byte("nonce"), []byte("cu")},
		{[]byte("aad"), []byte("nonce")},
	}
	for i, parts := range variants {
		if crypto.BLAKE2bKeyedHash(key, parts...) == base {
			t.Errorf("variant %d produced the base tag", i)
		}
	}
}

// The parts are hashed as a plain concatenation, so re-splitting the
// same byte stream must give the same tag.
func TestKeyedHashConcatenationSemantics(t *testing.T) {
	key := testAEADKey()
	joined := crypto.BLAKE2bKeyedHash(key, []byte("abcdef"))
	split := crypto.BLAKE2bKeyedHash(key, []byte("ab"), []byte("cd"), []byte("ef"))
	if joined != split {
		t.Fatal("part boundaries changed the tag")
	}
}
