// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package metrics exports quality controller state as Prometheus metrics.
//
// A Collector is fed from a controller subscription and from periodic
// frame statistics:
//
//	c := metrics.NewCollector(prometheus.DefaultRegisterer, "solar")
//	cancel := ctrl.Subscribe(c.Observe)
//	defer cancel()
//	c.Observe(ctrl.Capabilities())
//	...
//	c.ObserveStats(ctrl.Stats())
package metrics

import (
	"sync"

	"github.com/gogpu/quality"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for the tier_changes_total direction label.
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Collector holds the quality metrics. It is safe for concurrent use.
type Collector struct {
	tier        prometheus.Gauge
	tierChanges *prometheus.CounterVec
	fps         prometheus.Gauge
	frameTime   prometheus.Gauge
	pixelRatio  prometheus.Gauge
	shadowMap   prometheus.Gauge
	population  *prometheus.GaugeVec

	mu       sync.Mutex
	lastTier quality.Tier
	seen     bool
}

// NewCollector creates the metrics and registers them with reg. A nil reg
// leaves them unregistered. Like promauto, it panics if a metric with the
// same name is already registered.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	f := promauto.With(reg)
	return &Collector{
		tier: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "quality",
			Name:      "tier",
			Help:      "Current quality tier (0 low, 1 medium, 2 high, 3 ultra)",
		}),
		tierChanges: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "quality",
			Name:      "tier_changes_total",
			Help:      "Number of tier changes by direction",
		}, []string{"direction"}),
		fps: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "quality",
			Name:      "fps",
			Help:      "Frames per second over the monitor window",
		}),
		frameTime: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "quality",
			Name:      "mean_frame_time_seconds",
			Help:      "Mean frame time over the monitor window",
		}),
		pixelRatio: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "quality",
			Name:      "pixel_ratio",
			Help:      "Render pixel ratio after the tier cap",
		}),
		shadowMap: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "quality",
			Name:      "shadow_map_size",
			Help:      "Shadow map resolution in pixels",
		}),
		population: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "quality",
			Name:      "population",
			Help:      "Configured scene population by object kind",
		}, []string{"kind"}),
	}
}

// Observe records a capability snapshot. Its signature matches
// quality.Controller.Subscribe.
func (c *Collector) Observe(caps quality.DeviceCapabilities) {
	c.mu.Lock()
	if c.seen && caps.Tier != c.lastTier {
		dir := DirectionUp
		if caps.Tier < c.lastTier {
			dir = DirectionDown
		}
		c.tierChanges.WithLabelValues(dir).Inc()
	}
	c.lastTier = caps.Tier
	c.seen = true
	c.mu.Unlock()

	s := caps.Settings
	c.tier.Set(float64(caps.Tier))
	c.pixelRatio.Set(s.PixelRatio)
	c.shadowMap.Set(float64(s.ShadowMapSize))
	c.population.WithLabelValues("stars").Set(float64(s.StarCount))
	c.population.WithLabelValues("asteroids").Set(float64(s.AsteroidCount))
	c.population.WithLabelValues("debris").Set(float64(s.DebrisCount))
	c.population.WithLabelValues("comets").Set(float64(s.CometCount))
	c.population.WithLabelValues("shooting_stars").Set(float64(s.ShootingStarCount))
}

// ObserveStats records frame monitor statistics.
func (c *Collector) ObserveStats(st quality.FrameStats) {
	c.fps.Set(st.FPS)
	c.frameTime.Set(st.MeanFrameTime.Seconds())
}
