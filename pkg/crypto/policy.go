// This file (policy.go) validates requested round counts against the
// security policy. The boundary is explicit and documented rather than
// inferred: counts at or below RoundsHardFloor (8) are rejected outright;
// counts between the floor and RoundsRecommended (20) are permitted for
// benchmarking but carry an advisory warning; the recommended count and
// above pass silently.
package crypto

import (
	"github.com/vortexcipher/vortex-go/internal/constants"
	qerrors "github.com/vortexcipher/vortex-go/internal/errors"
)

// RoundsVerdict classifies an accepted round count.
type RoundsVerdict int

const (
	// RoundsOK means the count meets the recommended margin.
	RoundsOK RoundsVerdict = iota

	// RoundsReduced means the count was accepted but sits below the
	// recommended margin; callers receive an advisory warning.
	RoundsReduced
)

// String returns a human-readable verdict name.
func (v RoundsVerdict) String() string {
	switch v {
	case RoundsOK:
		return "ok"
	case RoundsReduced:
		return "reduced"
	default:
		return "unknown"
	}
}

// ValidateRounds checks a requested double-round count against the policy.
// A count at or below the hard floor returns ErrInvalidRounds; this is
// fatal and the operation must not proceed. An accepted count returns the
// verdict that tells the caller whether to surface a warning.
func ValidateRounds(rounds int) (RoundsVerdict, error) {
	if rounds <= constants.RoundsHardFloor {
		return RoundsOK, qerrors.NewCryptoError("ValidateRounds", qerrors.ErrInvalidRounds)
	}
	if rounds < constants.RoundsRecommended {
		return RoundsReduced, nil
	}
	return RoundsOK, nil
}
