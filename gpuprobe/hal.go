// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpuprobe

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/quality"
	"github.com/gogpu/wgpu/hal"
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

// InstanceFactory creates HAL instances. Every hal backend (and
// hal/noop.API in tests) satisfies it.
type InstanceFactory interface {
	CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error)
}

// Candidate is one backend the HAL prober may try.
type Candidate struct {
	Name    string
	Factory InstanceFactory
	// Modern marks a modern API backend. Legacy backends report instancing
	// but no modern API and no float textures.
	Modern bool
}

// HAL probes GPU capabilities by opening and immediately destroying a
// device on the first usable backend.
type HAL struct {
	candidates []Candidate
	power      gputypes.PowerPreference
}

// New creates a HAL prober over explicit candidates, tried in order. It
// prefers a high-performance adapter; see Prefer.
func New(candidates ...Candidate) *HAL {
	return &HAL{candidates: candidates, power: gputypes.PowerPreferenceHighPerformance}
}

// Prefer sets the power preference used to pick among several adapters of
// one backend, typically AdapterPowerPreference of the active settings.
func (p *HAL) Prefer(pp gputypes.PowerPreference) *HAL {
	p.power = pp
	return p
}

// Default returns a HAL prober over the registered Vulkan, Metal and DX12
// backends, followed by GL as the legacy fallback. The result is wrapped
// with quality.ProbeOnce so the device is opened once per process.
func Default() quality.Prober {
	var cs []Candidate
	for _, b := range []struct {
		name    string
		backend gputypes.Backend
		modern  bool
	}{
		{"vulkan", gputypes.BackendVulkan, true},
		{"metal", gputypes.BackendMetal, true},
		{"dx12", gputypes.BackendDX12, true},
		{"gl", gputypes.BackendGL, false},
	} {
		if be, ok := hal.GetBackend(b.backend); ok {
			cs = append(cs, Candidate{Name: b.name, Factory: be, Modern: b.modern})
		}
	}
	return quality.ProbeOnce(New(cs...))
}

// Probe implements quality.Prober.
func (p *HAL) Probe() (quality.DeviceFeatures, error) {
	if len(p.candidates) == 0 {
		return quality.MinimalFeatures(), ErrNoBackend
	}

	var errs []error
	for _, c := range p.candidates {
		f, err := probeCandidate(c, p.power)
		if err == nil {
			return f, nil
		}
		quality.Logger().Debug("gpuprobe: backend unusable", "backend", c.Name, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", c.Name, err))
	}
	return quality.MinimalFeatures(), fmt.Errorf("%w: %w", ErrNoBackend, errors.Join(errs...))
}

func probeCandidate(c Candidate, pp gputypes.PowerPreference) (quality.DeviceFeatures, error) {
	if c.Factory == nil {
		return quality.DeviceFeatures{}, ErrNoBackend
	}
	instance, err := c.Factory.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return quality.DeviceFeatures{}, fmt.Errorf("create instance: %w", err)
	}
	defer instance.Destroy()

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return quality.DeviceFeatures{}, ErrNoAdapter
	}
	selected := selectAdapter(adapters, pp)

	// The adapter reports what the hardware supports; the default limits
	// only stand in when a backend leaves them unset.
	limits := selected.Capabilities.Limits
	if limits.MaxTextureDimension2D == 0 {
		limits = gputypes.DefaultLimits()
	}
	openDev, err := selected.Adapter.Open(gputypes.Features(0), limits)
	if err != nil {
		return quality.DeviceFeatures{}, fmt.Errorf("open device: %w", err)
	}
	openDev.Device.Destroy()

	f := quality.DeviceFeatures{
		ModernAPI:      c.Modern,
		Instancing:     true,
		FloatTextures:  c.Modern,
		MaxTextureSize: int(limits.MaxTextureDimension2D),
	}
	quality.Logger().Info("gpuprobe: adapter probed",
		"backend", c.Name,
		"adapter", selected.Info.Name,
		"maxTextureSize", f.MaxTextureSize)
	return f, nil
}

// selectAdapter picks by device type: discrete before integrated for
// high performance, the reverse for low power, and the first adapter
// reported when neither is present.
func selectAdapter(adapters []hal.ExposedAdapter, pp gputypes.PowerPreference) *hal.ExposedAdapter {
	order := []gputypes.DeviceType{gputypes.DeviceTypeDiscreteGPU, gputypes.DeviceTypeIntegratedGPU}
	if pp == gputypes.PowerPreferenceLowPower {
		order[0], order[1] = order[1], order[0]
	}
	for _, want := range order {
		for i := range adapters {
			if adapters[i].Info.DeviceType == want {
				return &adapters[i]
			}
		}
	}
	return &adapters[0]
}
