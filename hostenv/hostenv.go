// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hostenv implements quality.Environment for native hosts using
// gopsutil for memory and CPU metadata.
//
// Values are read once in New; the viewport can be updated later with
// SetViewport as the window resizes.
package hostenv

import (
	"math"
	"runtime"
	"sync"

	"github.com/gogpu/quality"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	bytesPerGB = 1 << 30
	minBucket  = 0.25
)

// Host is a quality.Environment backed by the running machine.
type Host struct {
	memoryGB float64
	cores    int
	mobile   bool

	mu       sync.Mutex
	viewport quality.Viewport
}

var _ quality.Environment = (*Host)(nil)

// Option configures a Host.
type Option func(*config)

type config struct {
	memoryGB *float64
	cores    *int
	mobile   *bool
	viewport quality.Viewport
	mem      func() (uint64, error)
	cpus     func() (int, error)
}

// WithViewport sets the initial window geometry.
func WithViewport(vp quality.Viewport) Option {
	return func(c *config) { c.viewport = vp }
}

// WithMemoryGB overrides the detected memory. Zero means unknown.
func WithMemoryGB(gb float64) Option {
	return func(c *config) { c.memoryGB = &gb }
}

// WithCores overrides the detected logical core count.
func WithCores(n int) Option {
	return func(c *config) { c.cores = &n }
}

// WithMobile overrides the mobile flag, which otherwise follows GOOS.
func WithMobile(mobile bool) Option {
	return func(c *config) { c.mobile = &mobile }
}

// New reads host metadata. Detected memory is bucketed like
// navigator.deviceMemory so the classifier thresholds mean the same on
// native hosts. Failures from gopsutil are logged and leave the value
// unknown; New itself never fails.
func New(opts ...Option) *Host {
	c := config{
		mem:  totalMemory,
		cpus: func() (int, error) { return cpu.Counts(true) },
	}
	for _, opt := range opts {
		opt(&c)
	}

	h := &Host{viewport: c.viewport}

	switch {
	case c.memoryGB != nil:
		h.memoryGB = *c.memoryGB
	default:
		if total, err := c.mem(); err != nil {
			quality.Logger().Warn("hostenv: memory unavailable", "error", err)
		} else {
			h.memoryGB = memoryBucket(total)
		}
	}

	switch {
	case c.cores != nil:
		h.cores = *c.cores
	default:
		n, err := c.cpus()
		if err != nil || n <= 0 {
			quality.Logger().Debug("hostenv: cpu count unavailable, using runtime", "error", err)
			n = runtime.NumCPU()
		}
		h.cores = n
	}

	if c.mobile != nil {
		h.mobile = *c.mobile
	} else {
		h.mobile = mobileOS(runtime.GOOS)
	}
	return h
}

func totalMemory() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

// memoryBucket converts installed bytes to the power-of-two gigabyte value a
// browser reports as navigator.deviceMemory: the nearer of the powers of two
// around the exact size, so an "8 GB" machine with 7.45 GiB reports 8.
// Zero stays unknown.
func memoryBucket(total uint64) float64 {
	if total == 0 {
		return 0
	}
	gb := float64(total) / bytesPerGB
	lower := math.Exp2(math.Floor(math.Log2(gb)))
	if gb-lower >= 2*lower-gb {
		lower *= 2
	}
	return max(lower, minBucket)
}

func mobileOS(goos string) bool {
	return goos == "android" || goos == "ios"
}

// DeviceMemoryGB implements quality.Environment.
func (h *Host) DeviceMemoryGB() float64 { return h.memoryGB }

// LogicalCores implements quality.Environment.
func (h *Host) LogicalCores() int { return h.cores }

// IsMobile implements quality.Environment.
func (h *Host) IsMobile() bool { return h.mobile }

// Viewport implements quality.Environment.
func (h *Host) Viewport() quality.Viewport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.viewport
}

// SetViewport records a new window geometry.
func (h *Host) SetViewport(vp quality.Viewport) {
	h.mu.Lock()
	h.viewport = vp
	h.mu.Unlock()
}
