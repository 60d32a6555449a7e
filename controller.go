// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import (
	"sync"
	"sync/atomic"
	"time"
)

// Controller owns the active DeviceCapabilities of a scene.
//
// It feeds frames into a FrameMonitor, re-derives settings whenever the tier
// or the display changes, and publishes every new record to subscribers as
// a single "capabilities changed" event. The active record is swapped
// atomically, so Capabilities never observes a partially updated value.
//
// RecordFrame is meant to be called from the render loop. Resize, SetTier and
// SetVisible may be called from other goroutines (window event listeners);
// updates are serialised internally. Subscribers run synchronously on the
// goroutine that caused the change, outside the internal lock, and must not
// block.
type Controller struct {
	caps atomic.Pointer[DeviceCapabilities]

	mu      sync.Mutex
	monitor *FrameMonitor
	pending *DeviceCapabilities // set by the monitor callback under mu
	subs    []subscriber
	nextID  uint64
	hidden  bool
	closed  bool
}

type subscriber struct {
	id uint64
	fn func(DeviceCapabilities)
}

// NewController creates a controller starting from caps, usually the
// result of Detect. The options configure the frame monitor.
func NewController(caps DeviceCapabilities, opts ...MonitorOption) *Controller {
	if !caps.Tier.Valid() {
		caps = caps.withTier(TierLow)
	}
	c := &Controller{}
	c.caps.Store(&caps)
	c.monitor = NewFrameMonitor(caps.Tier, c.onTierChange, opts...)
	return c
}

// Capabilities returns the active record.
func (c *Controller) Capabilities() DeviceCapabilities {
	return *c.caps.Load()
}

// Settings returns the active graphics settings.
func (c *Controller) Settings() GraphicsSettings {
	return c.caps.Load().Settings
}

// Stats returns a snapshot of the frame monitor.
func (c *Controller) Stats() FrameStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.monitor.Stats()
}

// Subscribe registers fn to be called with every new capabilities record.
// The returned function removes the subscription; calling it more than
// once is harmless.
func (c *Controller) Subscribe(fn func(DeviceCapabilities)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return func() {}
	}
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { c.unsubscribe(id) })
	}
}

func (c *Controller) unsubscribe(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
			return
		}
	}
}

// RecordFrame feeds one rendered frame into the monitor. If the monitor
// changes tier, settings are re-derived and published before RecordFrame
// returns. Frames are ignored while the controller is hidden or closed.
func (c *Controller) RecordFrame(now time.Time) {
	c.mu.Lock()
	if c.closed || c.hidden {
		c.mu.Unlock()
		return
	}
	c.monitor.RecordFrame(now)
	next := c.pending
	c.pending = nil
	c.publishLocked(next)
}

// onTierChange runs inside monitor.RecordFrame with c.mu held.
func (c *Controller) onTierChange(t Tier) {
	next := c.caps.Load().withTier(t)
	c.pending = &next
}

// Resize recomputes the display for a new viewport and re-derives settings.
// The tier and the mobile flag are kept.
func (c *Controller) Resize(vp Viewport) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	cur := c.caps.Load()
	next := cur.withDisplay(cur.Display.Resized(vp))
	Logger().Info("quality: display resized",
		"width", next.Display.Width, "height", next.Display.Height,
		"pixelRatio", next.Display.PixelRatio)
	c.publishLocked(&next)
}

// SetTier forces a tier, for example from a user quality menu. The monitor
// continues from the new tier and its cooldown restarts.
func (c *Controller) SetTier(t Tier) {
	if !t.Valid() {
		return
	}
	c.mu.Lock()
	if c.closed || c.caps.Load().Tier == t {
		c.mu.Unlock()
		return
	}
	c.monitor.SetTier(t)
	next := c.caps.Load().withTier(t)
	Logger().Info("quality: tier set", "tier", t)
	c.publishLocked(&next)
}

// SetVisible pauses (false) or resumes (true) frame processing. Hiding
// drops the frame timing reference so the pause is not measured.
func (c *Controller) SetVisible(visible bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hidden == !visible {
		return
	}
	c.hidden = !visible
	if c.hidden {
		c.monitor.ResetTiming()
	}
}

// Close stops frame processing and drops all subscribers. The last
// capabilities record stays readable.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.subs = nil
	c.pending = nil
}

// publishLocked stores next (if non-nil), releases c.mu and notifies
// subscribers.
func (c *Controller) publishLocked(next *DeviceCapabilities) {
	if next == nil {
		c.mu.Unlock()
		return
	}
	c.caps.Store(next)
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(*next)
	}
}
