// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

// defaultCores is assumed when the host cannot report a core count.
const defaultCores = 4

// Environment supplies device metadata from the host.
//
// A browser host reads these from navigator and window (use
// IsMobileUserAgent for the mobile flag); package hostenv provides a native
// implementation.
type Environment interface {
	// DeviceMemoryGB returns installed memory in gigabytes, or 0 if unknown.
	DeviceMemoryGB() float64

	// LogicalCores returns the logical core count, or 0 if unknown.
	LogicalCores() int

	// IsMobile reports whether the device is a phone or tablet.
	IsMobile() bool

	// Viewport returns the current window geometry.
	Viewport() Viewport
}

// DeviceCapabilities bundles everything the renderer needs: the tier, the
// probed features, the display and the settings derived from them.
type DeviceCapabilities struct {
	Tier     Tier             `json:"tier"`
	Features DeviceFeatures   `json:"features"`
	Display  DisplayInfo      `json:"display"`
	Settings GraphicsSettings `json:"settings"`
}

// withTier returns a copy re-derived for a new tier.
func (c DeviceCapabilities) withTier(t Tier) DeviceCapabilities {
	c.Tier = t
	c.Settings = DeriveSettings(c.Tier, c.Features, c.Display)
	return c
}

// withDisplay returns a copy re-derived for a new display.
func (c DeviceCapabilities) withDisplay(d DisplayInfo) DeviceCapabilities {
	c.Display = d
	c.Settings = DeriveSettings(c.Tier, c.Features, c.Display)
	return c
}

// Detect probes the device once and classifies it.
//
// Detection never fails: a nil or failing prober yields MinimalFeatures, and
// an environment without metadata is classified with neutral defaults
// (unknown memory, 4 cores, 1280x720). A nil env is allowed.
func Detect(env Environment, p Prober) DeviceCapabilities {
	features := probeFeatures(p)

	host := HostInfo{Cores: defaultCores}
	var vp Viewport
	if env != nil {
		host.MemoryGB = env.DeviceMemoryGB()
		if n := env.LogicalCores(); n > 0 {
			host.Cores = n
		}
		host.MobileUA = env.IsMobile()
		vp = env.Viewport()
	}
	if !(host.MemoryGB > 0) {
		host.MemoryGB = 0
	}

	display := NewDisplayInfo(vp, false)
	host.ViewportWidth = display.Width
	display.Mobile = host.Mobile()

	tier := Classify(host, features)
	caps := DeviceCapabilities{
		Tier:     tier,
		Features: features,
		Display:  display,
		Settings: DeriveSettings(tier, features, display),
	}

	Logger().Info("quality: capabilities detected",
		"tier", tier,
		"modernAPI", features.ModernAPI,
		"maxTextureSize", features.MaxTextureSize,
		"memoryGB", host.MemoryGB,
		"cores", host.Cores,
		"mobile", display.Mobile,
		"width", display.Width,
		"pixelRatio", display.PixelRatio,
	)
	return caps
}
