// Command qualityprobe detects the rendering quality tier of this machine
// and optionally replays a synthetic frame stream through the adaptive
// controller.
//
// Usage:
//
//	qualityprobe [-width 1920 -height 1080 -dpr 2] [-tier high] [-json]
//	qualityprobe -simulate-fps 25 -duration 30s
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/quality"
	"github.com/gogpu/quality/gpuprobe"
	"github.com/gogpu/quality/hostenv"
	"github.com/gogpu/quality/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type config struct {
	viewport quality.Viewport
	mobile   *bool
	memoryGB float64 // negative: detect
	cores    int     // zero: detect
	tier     string
	json     bool
	metrics  bool
	fps      float64
	duration time.Duration

	prober quality.Prober
}

func main() {
	var (
		width    = flag.Int("width", 1280, "viewport width in logical pixels")
		height   = flag.Int("height", 720, "viewport height in logical pixels")
		dpr      = flag.Float64("dpr", 1, "device pixel ratio")
		mobile   = flag.Bool("mobile", false, "treat the device as mobile (default: detect)")
		memory   = flag.Float64("memory", -1, "device memory in GB (default: detect, 0: unknown)")
		cores    = flag.Int("cores", 0, "logical cores (default: detect)")
		tier     = flag.String("tier", "", "force a tier: low, medium, high or ultra")
		asJSON   = flag.Bool("json", false, "print capabilities as JSON")
		dump     = flag.Bool("metrics", false, "print Prometheus metrics after the run")
		fps      = flag.Float64("simulate-fps", 0, "replay frames at this rate through the controller")
		duration = flag.Duration("duration", 20*time.Second, "length of the simulated frame stream")
		verbose  = flag.Bool("v", false, "log detection and tier changes to stderr")
	)
	flag.Parse()

	if *verbose {
		quality.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := config{
		viewport: quality.Viewport{Width: *width, Height: *height, PixelRatio: *dpr},
		memoryGB: *memory,
		cores:    *cores,
		tier:     *tier,
		json:     *asJSON,
		metrics:  *dump,
		fps:      *fps,
		duration: *duration,
		prober:   gpuprobe.Default(),
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "mobile" {
			cfg.mobile = mobile
		}
	})

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("qualityprobe: %v", err)
	}
}

func run(cfg config, w io.Writer) error {
	opts := []hostenv.Option{hostenv.WithViewport(cfg.viewport)}
	if cfg.mobile != nil {
		opts = append(opts, hostenv.WithMobile(*cfg.mobile))
	}
	if cfg.memoryGB >= 0 {
		opts = append(opts, hostenv.WithMemoryGB(cfg.memoryGB))
	}
	if cfg.cores > 0 {
		opts = append(opts, hostenv.WithCores(cfg.cores))
	}

	caps := quality.Detect(hostenv.New(opts...), cfg.prober)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg, "qualityprobe")

	ctrl := quality.NewController(caps)
	defer ctrl.Close()
	collector.Observe(ctrl.Capabilities())

	if cfg.tier != "" {
		t, err := quality.ParseTier(cfg.tier)
		if err != nil {
			return err
		}
		ctrl.SetTier(t)
		collector.Observe(ctrl.Capabilities())
	}

	p := message.NewPrinter(language.English)
	if cfg.fps > 0 {
		cancel := ctrl.Subscribe(func(c quality.DeviceCapabilities) {
			collector.Observe(c)
			st := ctrl.Stats()
			p.Fprintf(w, "%8v  tier -> %-6v  fps %.1f  stars %d\n",
				st.LastChange.Sub(simulationStart).Round(time.Millisecond), c.Tier, st.FPS, c.Settings.StarCount)
		})
		simulate(ctrl, cfg.fps, cfg.duration)
		cancel()
		collector.ObserveStats(ctrl.Stats())
	}

	if cfg.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ctrl.Capabilities()); err != nil {
			return fmt.Errorf("encode capabilities: %w", err)
		}
	} else {
		report(p, w, ctrl.Capabilities())
	}

	if cfg.metrics {
		return writeMetrics(w, reg)
	}
	return nil
}

// simulationStart anchors the synthetic clock.
var simulationStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// simulate feeds frames spaced 1/fps apart covering d of synthetic time.
func simulate(ctrl *quality.Controller, fps float64, d time.Duration) {
	step := time.Duration(float64(time.Second) / fps)
	if step <= 0 {
		return
	}
	for at := simulationStart; at.Sub(simulationStart) <= d; at = at.Add(step) {
		ctrl.RecordFrame(at)
	}
}

func report(p *message.Printer, w io.Writer, c quality.DeviceCapabilities) {
	s := c.Settings
	p.Fprintf(w, "tier           %v\n", c.Tier)
	p.Fprintf(w, "modern api     %t  instancing %t  float textures %t  max texture %d\n",
		c.Features.ModernAPI, c.Features.Instancing, c.Features.FloatTextures, c.Features.MaxTextureSize)
	p.Fprintf(w, "display        %dx%d @%.2f  retina %t  mobile %t\n",
		c.Display.Width, c.Display.Height, c.Display.PixelRatio, c.Display.Retina, c.Display.Mobile)
	p.Fprintf(w, "pixel ratio    %.2f  shadow map %d  antialias %t\n", s.PixelRatio, s.ShadowMapSize, s.Antialias)
	p.Fprintf(w, "frame cap      %d fps  gpu %v\n", s.TargetFPS, s.PowerPreference)
	p.Fprintf(w, "planets        %d segments  %d textures  bump %t  moons %t\n",
		s.PlanetSegments, s.PlanetTextureSize, s.BumpMap, s.Moons)
	p.Fprintf(w, "post           bloom %t (%.2f)  pixelation %d  noise %.3f\n",
		s.Bloom, s.BloomIntensity, s.PixelationLevel, s.NoiseIntensity)
	p.Fprintf(w, "population     %d stars  %d asteroids  %d debris  %d comets  %d shooting stars\n",
		s.StarCount, s.AsteroidCount, s.DebrisCount, s.CometCount, s.ShootingStarCount)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	var errs []error
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
