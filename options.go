// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import "time"

// Default frame monitor parameters.
const (
	DefaultWindow   = 4 * time.Second
	DefaultCooldown = 9 * time.Second
)

// Thresholds are the rolling-average FPS limits that drive tier changes.
type Thresholds struct {
	// DowngradeHigh: below this, TierUltra and TierHigh step down.
	DowngradeHigh float64
	// DowngradeMedium: below this, TierMedium steps down to TierLow.
	DowngradeMedium float64
	// UpgradeMedium: above this, TierMedium steps up to TierHigh.
	UpgradeMedium float64
	// UpgradeHigh: above this, TierHigh steps up to TierUltra.
	UpgradeHigh float64
}

// DefaultThresholds returns the 38/30/56/58 FPS limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DowngradeHigh:   38,
		DowngradeMedium: 30,
		UpgradeMedium:   56,
		UpgradeHigh:     58,
	}
}

// MonitorOption configures a FrameMonitor (and the Controller that owns one).
//
// Example:
//
//	m := quality.NewFrameMonitor(quality.TierHigh, onChange,
//	    quality.WithCooldown(5*time.Second))
type MonitorOption func(*monitorOptions)

type monitorOptions struct {
	window     time.Duration
	cooldown   time.Duration
	thresholds Thresholds
}

func defaultMonitorOptions() monitorOptions {
	return monitorOptions{
		window:     DefaultWindow,
		cooldown:   DefaultCooldown,
		thresholds: DefaultThresholds(),
	}
}

// WithWindow sets the trailing time window used for the rolling average.
// Non-positive values are ignored.
func WithWindow(d time.Duration) MonitorOption {
	return func(o *monitorOptions) {
		if d > 0 {
			o.window = d
		}
	}
}

// WithCooldown sets the minimum interval between two tier changes.
// Negative values are ignored; zero disables the cooldown.
func WithCooldown(d time.Duration) MonitorOption {
	return func(o *monitorOptions) {
		if d >= 0 {
			o.cooldown = d
		}
	}
}

// WithThresholds replaces the FPS limits.
func WithThresholds(t Thresholds) MonitorOption {
	return func(o *monitorOptions) {
		o.thresholds = t
	}
}
