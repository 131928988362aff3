package crypto_test

import (
	"testing"

	"github.com/vortexcipher/vortex-go/pkg/crypto"
)

func TestRunSelfTest(t *testing.T) {
	result := crypto.RunSelfTest()
	if result == nil {
		t.Fatal("RunSelfTest returned nil")
	}
	if !result.Passed {
		t.Fatalf("self-test failed: %v", result.Errors)
	}
	if !result.KeystreamPassed || !result.RoundTripPassed || !result.RNGHealthPassed {
		t.Fatalf("sub-check failed: keystream=%v roundtrip=%v rng=%v",
			result.KeystreamPassed, result.RoundTripPassed, result.RNGHealthPassed)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("passing self-test reported errors: %v", result.Errors)
	}
}

func TestRunSelfTestCached(t *testing.T) {
	if crypto.RunSelfTest() != crypto.RunSelfTest() {
		t.Fatal("RunSelfTest should return the cached result")
	}
}
