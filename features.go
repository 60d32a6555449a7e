// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import "sync"

// minimalMaxTextureSize is the texture limit assumed when no graphics
// context could be created at all.
const minimalMaxTextureSize = 1024

// DeviceFeatures describes the hardware capabilities reported by a feature
// probe. It is computed once per session and never modified afterwards.
type DeviceFeatures struct {
	// ModernAPI is true when a modern graphics API (Vulkan, Metal, DX12,
	// WebGL2) is available. A legacy-only context leaves it false.
	ModernAPI bool `json:"modernApi"`

	// Instancing reports support for instanced draw calls.
	Instancing bool `json:"instancing"`

	// FloatTextures reports support for floating point texture formats.
	FloatTextures bool `json:"floatTextures"`

	// MaxTextureSize is the largest supported 2D texture dimension in pixels.
	MaxTextureSize int `json:"maxTextureSize"`
}

// MinimalFeatures returns the conservative record used when no graphics
// context can be created.
func MinimalFeatures() DeviceFeatures {
	return DeviceFeatures{MaxTextureSize: minimalMaxTextureSize}
}

// Prober inspects the graphics runtime and reports its capabilities.
//
// Implementations create a throwaway context (preferring the modern API,
// falling back to the legacy one) and release it before returning.
// See package gpuprobe for wgpu-based implementations.
type Prober interface {
	Probe() (DeviceFeatures, error)
}

// ProberFunc adapts an ordinary function to the Prober interface.
type ProberFunc func() (DeviceFeatures, error)

// Probe calls f.
func (f ProberFunc) Probe() (DeviceFeatures, error) { return f() }

// onceProber runs the wrapped prober on first use and caches the outcome.
type onceProber struct {
	once     sync.Once
	p        Prober
	features DeviceFeatures
	err      error
}

// ProbeOnce wraps p so that the underlying probe runs at most once.
// Every call returns the first outcome: a failed probe is final for the
// session and is never retried.
func ProbeOnce(p Prober) Prober {
	if op, ok := p.(*onceProber); ok {
		return op
	}
	return &onceProber{p: p}
}

func (o *onceProber) Probe() (DeviceFeatures, error) {
	o.once.Do(func() {
		if o.p == nil {
			o.features, o.err = MinimalFeatures(), ErrNoProber
			return
		}
		o.features, o.err = o.p.Probe()
		if o.err != nil {
			o.features = MinimalFeatures()
		}
	})
	return o.features, o.err
}

// probeFeatures runs p and degrades any failure to MinimalFeatures.
// The error is logged, never returned.
func probeFeatures(p Prober) DeviceFeatures {
	if p == nil {
		Logger().Warn("quality: no feature prober, using minimal features", "error", ErrNoProber)
		return MinimalFeatures()
	}
	f, err := p.Probe()
	if err != nil {
		Logger().Warn("quality: feature probe failed, using minimal features", "error", err)
		return MinimalFeatures()
	}
	if f.MaxTextureSize <= 0 {
		f.MaxTextureSize = minimalMaxTextureSize
	}
	return f
}
