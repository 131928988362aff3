package crypto_test

import (
	"testing"

	"github.com/vortexcipher/vortex-go/internal/constants"
	"github.com/vortexcipher/vortex-go/pkg/crypto"
)

func TestSuperBlockPoolZeroing(t *testing.T) {
	pool := crypto.NewBufferPool()

	b := pool.GetSuperBlock()
	for i := range b {
		b[i] = 0xff
	}
	pool.PutSuperBlock(b)

	// Whether the pool hands the same array back or allocates a fresh
	// one, it must never carry previous contents.
	got := pool.GetSuperBlock()
	for i, v := range got {
		if v != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, v)
		}
	}
	pool.PutSuperBlock(got)
	pool.PutSuperBlock(nil) // must not panic
}

func TestEnvelopePoolSizes(t *testing.T) {
	pool := crypto.NewBufferPool()

	for _, size := range []int{1, 100, 4096 + constants.EnvelopeOverhead, 70000, 1 << 20, 4 << 20} {
		buf := pool.GetEnvelope(size)
		if len(buf) != size {
			t.Fatalf("size %d: len = %d", size, len(buf))
		}
		pool.PutEnvelope(buf)
	}

	if buf := pool.GetEnvelope(0); buf != nil {
		t.Fatal("zero-size request should return nil")
	}
}

func TestEnvelopePoolZeroing(t *testing.T) {
	pool := crypto.NewBufferPool()

	buf := pool.GetEnvelope(1000)
	for i := range buf {
		buf[i] = 0xab
	}
	pool.PutEnvelope(buf)

	got := pool.GetEnvelope(1000)
	for i, v := range got {
		if v != 0 {
			t.Fatalf("byte %d = %#x, want 0", i, v)
		}
	}
	pool.PutEnvelope(got)
}

func TestGlobalEnvelopeHelpers(t *testing.T) {
	buf := crypto.GetEnvelopeBuffer(256)
	if len(buf) != 256 {
		t.Fatalf("len = %d, want 256", len(buf))
	}
	crypto.PutEnvelopeBuffer(buf)
	crypto.PutEnvelopeBuffer(nil) // must not panic
}
