// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuprobe

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/quality"
)

// defaultProviderTextureSize is the WebGPU default 2D texture limit, which
// every conforming device supports.
const defaultProviderTextureSize = 8192

// ProviderOption configures FromProvider.
type ProviderOption func(*providerOptions)

type providerOptions struct {
	maxTextureSize int
	instancing     bool
}

// WithMaxTextureSize sets the texture limit the host negotiated for its
// device. Non-positive values are ignored.
func WithMaxTextureSize(n int) ProviderOption {
	return func(o *providerOptions) {
		if n > 0 {
			o.maxTextureSize = n
		}
	}
}

// WithoutInstancing reports instancing as unsupported, for hosts running
// on a restricted downlevel device.
func WithoutInstancing() ProviderOption {
	return func(o *providerOptions) {
		o.instancing = false
	}
}

// FromProvider returns a prober that reads capabilities from a device the
// host already owns. It never creates or destroys GPU resources.
//
// A shared gpucontext device with a presentable surface format is a
// WebGPU-class device and reports the modern API with float textures. An
// undefined surface format means the host has no modern surface to present
// to, and the device is reported with legacy features.
func FromProvider(dp gpucontext.DeviceProvider, opts ...ProviderOption) quality.Prober {
	o := providerOptions{maxTextureSize: defaultProviderTextureSize, instancing: true}
	for _, opt := range opts {
		opt(&o)
	}
	return quality.ProberFunc(func() (quality.DeviceFeatures, error) {
		if dp == nil || dp.Device() == nil {
			return quality.MinimalFeatures(), ErrNoDevice
		}
		presentable := dp.SurfaceFormat() != gputypes.TextureFormatUndefined
		f := quality.DeviceFeatures{
			ModernAPI:      presentable,
			Instancing:     o.instancing,
			FloatTextures:  presentable,
			MaxTextureSize: o.maxTextureSize,
		}
		quality.Logger().Info("gpuprobe: using host device",
			"presentable", presentable,
			"maxTextureSize", f.MaxTextureSize)
		return f, nil
	})
}
