// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpuprobe

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/quality"
)

// AdapterPowerPreference maps a settings power hint to the value passed in
// gputypes.RequestAdapterOptions when the renderer opens its real device.
func AdapterPowerPreference(p quality.PowerPreference) gputypes.PowerPreference {
	if p == quality.PowerHighPerformance {
		return gputypes.PowerPreferenceHighPerformance
	}
	return gputypes.PowerPreferenceLowPower
}
