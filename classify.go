// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import "regexp"

// Classifier thresholds.
const (
	mobileViewportWidth = 768 // narrower viewports are treated as mobile
	highTierCores       = 8
	ultraTierCores      = 10
	ultraTierMemoryGB   = 8
	ultraTierTexture    = 4096
	lowMemoryGB         = 4 // known memory at or below this forces TierLow
)

var mobileUA = regexp.MustCompile(`(?i)Android|iPhone|iPad|iPod|Mobile`)

// IsMobileUserAgent reports whether a browser user agent string belongs to
// a phone or tablet.
func IsMobileUserAgent(ua string) bool {
	return mobileUA.MatchString(ua)
}

// HostInfo is the device metadata the classifier looks at.
type HostInfo struct {
	// MemoryGB is the device memory in gigabytes. Zero means unknown.
	MemoryGB float64

	// Cores is the logical core count.
	Cores int

	// ViewportWidth is the logical viewport width in pixels. Zero means
	// unknown and does not count as a narrow viewport.
	ViewportWidth int

	// MobileUA is true when the host identifies as a mobile device.
	MobileUA bool
}

// Mobile reports whether the host counts as mobile for classification:
// a mobile user agent or a known viewport narrower than 768 pixels.
func (h HostInfo) Mobile() bool {
	return h.MobileUA || (h.ViewportWidth > 0 && h.ViewportWidth < mobileViewportWidth)
}

// Classify picks the initial quality tier for a device.
//
// Rules are applied in order and each later rule overrides the result of
// the earlier ones:
//  1. medium by default
//  2. low on mobile or a viewport narrower than 768
//  3. low without the modern graphics API
//  4. high on desktop with the modern API and at least 8 cores
//  5. ultra on desktop with the modern API, at least 10 cores, 8GB or
//     unknown memory and 4096px textures
//  6. low whenever memory is known and at most 4GB
//
// Rule 6 runs last so low-memory devices end up at TierLow even when they
// qualified for high or ultra.
func Classify(host HostInfo, f DeviceFeatures) Tier {
	mobile := host.Mobile()
	memKnown := host.MemoryGB > 0

	tier := TierMedium

	if mobile {
		tier = TierLow
	}
	if !f.ModernAPI {
		tier = TierLow
	}

	if !mobile && f.ModernAPI && host.Cores >= highTierCores {
		tier = TierHigh
	}
	if !mobile && f.ModernAPI && host.Cores >= ultraTierCores &&
		(host.MemoryGB >= ultraTierMemoryGB || !memKnown) &&
		f.MaxTextureSize >= ultraTierTexture {
		tier = TierUltra
	}

	if memKnown && host.MemoryGB <= lowMemoryGB {
		tier = TierLow
	}

	return tier
}
