// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import (
	"errors"
	"reflect"
	"testing"
)

var allTiers = []Tier{TierLow, TierMedium, TierHigh, TierUltra}

func TestDeriveSettingsDeterministic(t *testing.T) {
	f := modern(8192)
	d := NewDisplayInfo(Viewport{Width: 1920, Height: 1080, PixelRatio: 2}, false)
	for _, tier := range allTiers {
		a := DeriveSettings(tier, f, d)
		b := DeriveSettings(tier, f, d)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("DeriveSettings(%v) not deterministic:\n%+v\n%+v", tier, a, b)
		}
	}
}

func TestDeriveSettingsPixelRatioBound(t *testing.T) {
	ratios := []float64{0.5, 1, 1.25, 1.5, 2, 3, 4}
	for _, tier := range allTiers {
		for _, r := range ratios {
			d := DisplayInfo{Width: 1280, Height: 720, PixelRatio: r}
			got := DeriveSettings(tier, modern(8192), d).PixelRatio
			bound := min(r, PixelRatioCap(tier))
			if got > bound {
				t.Errorf("tier %v ratio %v: PixelRatio = %v, exceeds %v", tier, r, got, bound)
			}
		}
	}
}

func TestDeriveSettingsPixelRatioCaps(t *testing.T) {
	tests := []struct {
		tier Tier
		want float64
	}{
		{TierLow, 1.1},
		{TierMedium, 1.35},
		{TierHigh, 1.75},
		{TierUltra, 2},
	}
	d := DisplayInfo{Width: 2560, Height: 1440, PixelRatio: 3, Retina: true}
	for _, tt := range tests {
		if got := DeriveSettings(tt.tier, modern(8192), d).PixelRatio; got != tt.want {
			t.Errorf("DeriveSettings(%v).PixelRatio = %v, want %v", tt.tier, got, tt.want)
		}
	}
}

func TestDeriveSettingsUnknownPixelRatio(t *testing.T) {
	d := DisplayInfo{Width: 800, Height: 600}
	if got := DeriveSettings(TierUltra, modern(8192), d).PixelRatio; got != 1 {
		t.Errorf("PixelRatio with zero display ratio = %v, want 1", got)
	}
}

func TestDeriveSettingsTextureBound(t *testing.T) {
	for _, tier := range allTiers {
		for _, maxTex := range []int{64, 128, 200, 256, 1024, 16384} {
			f := modern(maxTex)
			got := DeriveSettings(tier, f, NewDisplayInfo(Viewport{}, false)).PlanetTextureSize
			if got > maxTex {
				t.Errorf("tier %v maxTex %d: PlanetTextureSize = %d", tier, maxTex, got)
			}
		}
	}
}

func TestDeriveSettingsTable(t *testing.T) {
	d := NewDisplayInfo(Viewport{Width: 1920, Height: 1080, PixelRatio: 1}, false)
	tests := []struct {
		tier        Tier
		shadow      int
		texture     int
		segments    int
		stars       int
		asteroids   int
		effectsRich bool
		antialias   bool
		moons       bool
	}{
		{TierLow, 256, 192, 32, 1400, 50, false, false, false},
		{TierMedium, 512, 256, 44, 2400, 85, false, false, true},
		{TierHigh, 1024, 384, 56, 3800, 140, true, false, true},
		{TierUltra, 2048, 512, 64, 5000, 220, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			s := DeriveSettings(tt.tier, modern(8192), d)
			if s.ShadowMapSize != tt.shadow {
				t.Errorf("ShadowMapSize = %d, want %d", s.ShadowMapSize, tt.shadow)
			}
			if s.PlanetTextureSize != tt.texture {
				t.Errorf("PlanetTextureSize = %d, want %d", s.PlanetTextureSize, tt.texture)
			}
			if s.PlanetSegments != tt.segments {
				t.Errorf("PlanetSegments = %d, want %d", s.PlanetSegments, tt.segments)
			}
			if s.StarCount != tt.stars {
				t.Errorf("StarCount = %d, want %d", s.StarCount, tt.stars)
			}
			if s.AsteroidCount != tt.asteroids {
				t.Errorf("AsteroidCount = %d, want %d", s.AsteroidCount, tt.asteroids)
			}
			if s.Bloom != tt.effectsRich || s.BumpMap != tt.effectsRich || s.ParticleTrails != tt.effectsRich {
				t.Errorf("Bloom/BumpMap/ParticleTrails = %v/%v/%v, want %v",
					s.Bloom, s.BumpMap, s.ParticleTrails, tt.effectsRich)
			}
			if s.Antialias != tt.antialias {
				t.Errorf("Antialias = %v, want %v", s.Antialias, tt.antialias)
			}
			if s.Moons != tt.moons {
				t.Errorf("Moons = %v, want %v", s.Moons, tt.moons)
			}
			if !s.Bloom && s.BloomIntensity != 0 {
				t.Errorf("BloomIntensity = %v with bloom disabled", s.BloomIntensity)
			}
		})
	}
}

func TestDeriveSettingsInstancingFollowsFeatures(t *testing.T) {
	d := NewDisplayInfo(Viewport{}, false)
	if DeriveSettings(TierHigh, DeviceFeatures{ModernAPI: true, MaxTextureSize: 4096}, d).InstancedRendering {
		t.Error("InstancedRendering should be false without instancing support")
	}
	if !DeriveSettings(TierLow, DeviceFeatures{Instancing: true, MaxTextureSize: 4096}, d).InstancedRendering {
		t.Error("InstancedRendering should follow features at every tier")
	}
}

func TestDeriveSettingsInvalidTier(t *testing.T) {
	d := NewDisplayInfo(Viewport{}, false)
	got := DeriveSettings(Tier(42), modern(8192), d)
	want := DeriveSettings(TierLow, modern(8192), d)
	if !reflect.DeepEqual(got, want) {
		t.Error("invalid tier should derive TierLow settings")
	}
	if PixelRatioCap(Tier(-3)) != PixelRatioCap(TierLow) {
		t.Error("PixelRatioCap of invalid tier should match TierLow")
	}
}

func TestFallbackSettings(t *testing.T) {
	s := FallbackSettings()
	if s.PixelRatio != 1 || s.Bloom || s.Antialias {
		t.Errorf("FallbackSettings() = %+v, want a conservative record", s)
	}
}

func TestDeriveSettingsFrameCapAndPower(t *testing.T) {
	d := NewDisplayInfo(Viewport{Width: 1920, Height: 1080, PixelRatio: 1}, false)
	tests := []struct {
		tier  Tier
		fps   int
		power PowerPreference
	}{
		{TierLow, 24, PowerLowPower},
		{TierMedium, 30, PowerLowPower},
		{TierHigh, 45, PowerHighPerformance},
		{TierUltra, 60, PowerHighPerformance},
	}
	for _, tt := range tests {
		s := DeriveSettings(tt.tier, modern(8192), d)
		if s.TargetFPS != tt.fps {
			t.Errorf("%v: TargetFPS = %d, want %d", tt.tier, s.TargetFPS, tt.fps)
		}
		if s.PowerPreference != tt.power {
			t.Errorf("%v: PowerPreference = %v, want %v", tt.tier, s.PowerPreference, tt.power)
		}
	}
}

func TestPowerPreferenceText(t *testing.T) {
	for _, p := range []PowerPreference{PowerLowPower, PowerHighPerformance} {
		b, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", p, err)
		}
		var got PowerPreference
		if err := got.UnmarshalText(b); err != nil || got != p {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", b, got, err, p)
		}
	}
	var p PowerPreference
	if err := p.UnmarshalText([]byte("default")); !errors.Is(err, ErrUnknownPowerPreference) {
		t.Errorf("UnmarshalText(default) error = %v, want ErrUnknownPowerPreference", err)
	}
	if _, err := PowerPreference(7).MarshalText(); !errors.Is(err, ErrUnknownPowerPreference) {
		t.Errorf("MarshalText(7) error = %v, want ErrUnknownPowerPreference", err)
	}
}
