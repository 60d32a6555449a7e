// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build nogpu

package gpuprobe

import "github.com/gogpu/quality"

// Default returns a prober that always fails with ErrNoBackend.
func Default() quality.Prober {
	return quality.ProberFunc(func() (quality.DeviceFeatures, error) {
		return quality.MinimalFeatures(), ErrNoBackend
	})
}
