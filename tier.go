// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import (
	"fmt"
	"strings"
)

// Tier is a coarse quality level governing rendering cost.
// Tiers are totally ordered: TierLow < TierMedium < TierHigh < TierUltra.
type Tier int

const (
	// TierLow is the cheapest tier: capped pixel ratio, no bloom, small
	// particle populations. Mobile and low-memory devices start here.
	TierLow Tier = iota

	// TierMedium is the default tier when nothing is known about the device.
	TierMedium

	// TierHigh enables bloom, bump mapping and particle trails.
	TierHigh

	// TierUltra adds antialiasing and the largest populations.
	TierUltra
)

// String returns the lower-case tier name.
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	case TierUltra:
		return "ultra"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the four defined tiers.
func (t Tier) Valid() bool {
	return t >= TierLow && t <= TierUltra
}

// Up returns the next higher tier, or t itself at TierUltra.
func (t Tier) Up() Tier {
	if t >= TierUltra {
		return TierUltra
	}
	if t < TierLow {
		return TierLow
	}
	return t + 1
}

// Down returns the next lower tier, or t itself at TierLow.
func (t Tier) Down() Tier {
	if t <= TierLow {
		return TierLow
	}
	if t > TierUltra {
		return TierUltra
	}
	return t - 1
}

// ParseTier parses a tier name as produced by String. Matching ignores case
// and surrounding whitespace.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return TierLow, nil
	case "medium":
		return TierMedium, nil
	case "high":
		return TierHigh, nil
	case "ultra":
		return TierUltra, nil
	}
	return TierLow, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tier) UnmarshalText(text []byte) error {
	v, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
