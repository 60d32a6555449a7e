// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package quality adapts the rendering cost of a 3D scene to the device it
// runs on.
//
// # Overview
//
// The package has four parts, used in this order:
//
//   - Feature probing ([Prober], see package gpuprobe): one throwaway graphics
//     context reports API level, instancing and texture limits.
//   - Classification ([Classify]): device memory, core count, mobile signals
//     and features select one [Tier].
//   - Derivation ([DeriveSettings]): a pure function from tier, features and
//     display to a complete [GraphicsSettings] record.
//   - Monitoring ([FrameMonitor], [Controller]): the render loop reports every
//     frame; the rolling average FPS steps the tier up or down, one tier at a
//     time and at most once per cooldown.
//
// # Quick Start
//
//	caps := quality.Detect(hostenv.New(hostenv.WithViewport(vp)), gpuprobe.Default())
//	ctrl := quality.NewController(caps)
//	ctrl.Subscribe(func(c quality.DeviceCapabilities) {
//	    renderer.Apply(c.Settings)
//	})
//
//	// In the render loop:
//	ctrl.RecordFrame(time.Now())
//
//	// In the window resize handler:
//	ctrl.Resize(quality.Viewport{Width: w, Height: h, PixelRatio: dpr})
//
// # Failure Model
//
// Nothing in this package fails loudly. A failed probe degrades to
// [MinimalFeatures], unknown memory or core counts are neutral, and
// malformed frame timestamps are skipped. Enable logging with [SetLogger]
// to see what happened.
package quality
