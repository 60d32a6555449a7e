// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import (
	"time"

	"github.com/gogpu/quality/internal/window"
)

// fpsWithoutSamples is reported while the window is empty.
const fpsWithoutSamples = 60

// FrameStats is a snapshot of the frame monitor state.
type FrameStats struct {
	Samples       int
	MeanFrameTime time.Duration
	FPS           float64
	Tier          Tier
	LastChange    time.Time // zero until the first frame
}

// FrameMonitor watches frame timing and steps the quality tier up or down.
//
// Every frame feeds one sample into a trailing window (4s by default). Once
// the cooldown (9s by default) has passed since the last change, the
// rolling average FPS is compared against Thresholds:
//
//	fps < 38 at ultra or high   -> one step down
//	fps < 30 at medium          -> low
//	fps > 56 at medium          -> high
//	fps > 58 at high            -> ultra
//
// A change never moves more than one tier and never happens twice within
// the cooldown. The cooldown starts at the first recorded frame.
//
// FrameMonitor is owned by a single render loop and is not safe for
// concurrent use. Use Controller when other goroutines need to read the
// result.
type FrameMonitor struct {
	opts     monitorOptions
	onChange func(Tier)
	samples  *window.Window

	tier       Tier
	lastFrame  time.Time
	lastChange time.Time
}

// NewFrameMonitor creates a monitor starting at initial. onChange is called
// synchronously from RecordFrame with the new tier; it may be nil.
func NewFrameMonitor(initial Tier, onChange func(Tier), opts ...MonitorOption) *FrameMonitor {
	o := defaultMonitorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !initial.Valid() {
		initial = TierLow
	}
	return &FrameMonitor{
		opts:     o,
		onChange: onChange,
		samples:  window.New(o.window),
		tier:     initial,
	}
}

// Tier returns the current tier.
func (m *FrameMonitor) Tier() Tier { return m.tier }

// FPS returns the rolling average frame rate over the window.
func (m *FrameMonitor) FPS() float64 {
	mean := m.samples.Mean()
	if mean <= 0 {
		return fpsWithoutSamples
	}
	return float64(time.Second) / float64(mean)
}

// Stats returns a snapshot of the monitor state.
func (m *FrameMonitor) Stats() FrameStats {
	return FrameStats{
		Samples:       m.samples.Len(),
		MeanFrameTime: m.samples.Mean(),
		FPS:           m.FPS(),
		Tier:          m.tier,
		LastChange:    m.lastChange,
	}
}

// RecordFrame records a rendered frame at now and may change the tier.
//
// The first frame only establishes the timing reference. Zero timestamps and
// timestamps that do not advance are skipped without recording a sample.
func (m *FrameMonitor) RecordFrame(now time.Time) {
	if now.IsZero() {
		return
	}
	if m.lastFrame.IsZero() {
		m.lastFrame = now
		if m.lastChange.IsZero() {
			m.lastChange = now
		}
		return
	}

	dt := now.Sub(m.lastFrame)
	if dt <= 0 {
		if dt < 0 {
			// Clock went backwards: resync instead of recording garbage.
			m.lastFrame = now
		}
		return
	}
	m.lastFrame = now

	m.samples.Add(window.Sample{At: now, Delta: dt})
	m.samples.Trim(now)

	if now.Sub(m.lastChange) < m.opts.cooldown {
		return
	}

	fps := m.FPS()
	next := m.decide(fps)
	Logger().Debug("quality: frame monitor evaluate",
		"fps", fps, "samples", m.samples.Len(), "tier", m.tier, "next", next)
	if next != m.tier {
		m.change(next, now)
	}
}

// decide applies the threshold rules in order; the first match wins.
func (m *FrameMonitor) decide(fps float64) Tier {
	th := m.opts.thresholds
	switch {
	case fps < th.DowngradeHigh && (m.tier == TierUltra || m.tier == TierHigh):
		return m.tier.Down()
	case fps < th.DowngradeMedium && m.tier == TierMedium:
		return TierLow
	case fps > th.UpgradeMedium && m.tier == TierMedium:
		return TierHigh
	case fps > th.UpgradeHigh && m.tier == TierHigh:
		return TierUltra
	}
	return m.tier
}

func (m *FrameMonitor) change(next Tier, now time.Time) {
	prev := m.tier
	m.tier = next
	m.lastChange = now
	Logger().Info("quality: tier changed", "from", prev, "to", next, "fps", m.FPS())
	if m.onChange != nil {
		m.onChange(next)
	}
}

// SetTier overrides the current tier without calling onChange. The
// cooldown restarts at the most recent frame, or at the next one when
// timing was reset.
func (m *FrameMonitor) SetTier(t Tier) {
	if !t.Valid() {
		return
	}
	m.tier = t
	m.lastChange = m.lastFrame
}

// ResetTiming forgets the previous frame and all samples. Call it when the
// scene stops rendering (hidden tab, off-screen) so the pause is not
// measured as one very long frame. The cooldown keeps running.
func (m *FrameMonitor) ResetTiming() {
	m.lastFrame = time.Time{}
	m.samples.Reset()
}
