// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import "errors"

// ErrUnknownTier is returned when a tier name or value is not one of
// low, medium, high or ultra.
var ErrUnknownTier = errors.New("quality: unknown tier")

// ErrNoProber is reported (and logged) when detection runs without a
// feature prober. Detection still succeeds with MinimalFeatures.
var ErrNoProber = errors.New("quality: no feature prober")

// ErrUnknownPowerPreference is returned when decoding a power preference
// other than low-power or high-performance.
var ErrUnknownPowerPreference = errors.New("quality: unknown power preference")
