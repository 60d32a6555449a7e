// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import "fmt"

// PowerPreference is the GPU power hint a renderer passes when it requests
// an adapter. It serializes as the WebGPU names "low-power" and
// "high-performance".
type PowerPreference uint8

const (
	PowerLowPower PowerPreference = iota
	PowerHighPerformance
)

func (p PowerPreference) String() string {
	switch p {
	case PowerLowPower:
		return "low-power"
	case PowerHighPerformance:
		return "high-performance"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (p PowerPreference) MarshalText() ([]byte, error) {
	if p > PowerHighPerformance {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPowerPreference, p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PowerPreference) UnmarshalText(text []byte) error {
	switch string(text) {
	case "low-power":
		*p = PowerLowPower
	case "high-performance":
		*p = PowerHighPerformance
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPowerPreference, text)
	}
	return nil
}
