// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpuprobe implements quality.Prober on top of gogpu/wgpu.
//
// Two probers are provided:
//
//   - [HAL] opens a throwaway device through the wgpu HAL. Modern backends
//     (Vulkan, Metal, DX12) are tried first, then the legacy GL backend.
//   - [FromProvider] inspects a device the host application already owns
//     (gpucontext.DeviceProvider) without creating anything.
//
// Build with -tags nogpu to compile a stub whose Default prober always
// fails, which makes detection fall back to quality.MinimalFeatures.
package gpuprobe

import "errors"

var (
	// ErrNoBackend is returned when no wgpu HAL backend is registered.
	ErrNoBackend = errors.New("gpuprobe: no graphics backend available")

	// ErrNoAdapter is returned when a backend reports no adapters.
	ErrNoAdapter = errors.New("gpuprobe: no GPU adapter available")

	// ErrNoDevice is returned when a device provider has no device.
	ErrNoDevice = errors.New("gpuprobe: device provider has no device")
)
