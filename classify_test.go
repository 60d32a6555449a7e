// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import "testing"

func modern(maxTex int) DeviceFeatures {
	return DeviceFeatures{ModernAPI: true, Instancing: true, FloatTextures: true, MaxTextureSize: maxTex}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		host     HostInfo
		features DeviceFeatures
		want     Tier
	}{
		{
			name:     "workstation is ultra",
			host:     HostInfo{MemoryGB: 16, Cores: 12, ViewportWidth: 1920},
			features: modern(8192),
			want:     TierUltra,
		},
		{
			name:     "low memory overrides ultra",
			host:     HostInfo{MemoryGB: 3, Cores: 12, ViewportWidth: 1920},
			features: modern(8192),
			want:     TierLow,
		},
		{
			name:     "mobile user agent",
			host:     HostInfo{MemoryGB: 16, Cores: 12, ViewportWidth: 1920, MobileUA: true},
			features: modern(8192),
			want:     TierLow,
		},
		{
			name:     "narrow viewport counts as mobile",
			host:     HostInfo{MemoryGB: 16, Cores: 12, ViewportWidth: 600},
			features: modern(8192),
			want:     TierLow,
		},
		{
			name:     "unknown memory permits ultra",
			host:     HostInfo{Cores: 16, ViewportWidth: 1920},
			features: modern(16384),
			want:     TierUltra,
		},
		{
			name:     "small texture limit stops at high",
			host:     HostInfo{MemoryGB: 32, Cores: 16, ViewportWidth: 1920},
			features: modern(2048),
			want:     TierHigh,
		},
		{
			name:     "6GB blocks ultra but allows high",
			host:     HostInfo{MemoryGB: 6, Cores: 12, ViewportWidth: 1920},
			features: modern(8192),
			want:     TierHigh,
		},
		{
			name:     "8 cores is high",
			host:     HostInfo{MemoryGB: 16, Cores: 8, ViewportWidth: 1920},
			features: modern(8192),
			want:     TierHigh,
		},
		{
			name:     "default desktop is medium",
			host:     HostInfo{MemoryGB: 8, Cores: 4, ViewportWidth: 1440},
			features: modern(8192),
			want:     TierMedium,
		},
		{
			name:     "legacy API is low",
			host:     HostInfo{MemoryGB: 16, Cores: 16, ViewportWidth: 1920},
			features: DeviceFeatures{Instancing: true, MaxTextureSize: 8192},
			want:     TierLow,
		},
		{
			name:     "minimal features are low",
			host:     HostInfo{Cores: 4, ViewportWidth: 1280},
			features: MinimalFeatures(),
			want:     TierLow,
		},
		{
			name:     "exactly 4GB is low",
			host:     HostInfo{MemoryGB: 4, Cores: 8, ViewportWidth: 1920},
			features: modern(8192),
			want:     TierLow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.host, tt.features); got != tt.want {
				t.Errorf("Classify(%+v, %+v) = %v, want %v", tt.host, tt.features, got, tt.want)
			}
		})
	}
}

func TestClassifyMobileNeverHigher(t *testing.T) {
	for _, mem := range []float64{0, 2, 4, 6, 8, 16} {
		for _, cores := range []int{1, 4, 8, 10, 12, 32} {
			for _, f := range []DeviceFeatures{MinimalFeatures(), modern(2048), modern(4096), modern(16384)} {
				desktop := Classify(HostInfo{MemoryGB: mem, Cores: cores, ViewportWidth: 1920}, f)
				mobile := Classify(HostInfo{MemoryGB: mem, Cores: cores, ViewportWidth: 1920, MobileUA: true}, f)
				if mobile > desktop {
					t.Errorf("mem=%v cores=%d features=%+v: mobile %v > desktop %v", mem, cores, f, mobile, desktop)
				}
			}
		}
	}
}

func TestClassifyLowMemoryAlwaysLow(t *testing.T) {
	for _, mem := range []float64{0.5, 1, 2, 3, 3.9, 4} {
		for _, cores := range []int{2, 8, 16, 64} {
			for _, tex := range []int{1024, 4096, 16384} {
				host := HostInfo{MemoryGB: mem, Cores: cores, ViewportWidth: 2560}
				if got := Classify(host, modern(tex)); got != TierLow {
					t.Errorf("Classify(%+v, tex=%d) = %v, want low", host, tex, got)
				}
			}
		}
	}
}

func TestClassifyUnknownViewportWidth(t *testing.T) {
	host := HostInfo{MemoryGB: 16, Cores: 12}
	if host.Mobile() {
		t.Error("zero ViewportWidth counted as mobile")
	}
	if got := Classify(host, modern(8192)); got != TierUltra {
		t.Errorf("Classify(%+v) = %v, want ultra", host, got)
	}
	if !(HostInfo{ViewportWidth: 767}).Mobile() {
		t.Error("767px viewport should count as mobile")
	}
	if !(HostInfo{MobileUA: true}).Mobile() {
		t.Error("mobile user agent should count as mobile with an unknown width")
	}
}

func TestIsMobileUserAgent(t *testing.T) {
	tests := []struct {
		ua   string
		want bool
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", true},
		{"Mozilla/5.0 (Linux; Android 14; Pixel 8)", true},
		{"Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)", true},
		{"something mobile safari", true},
		{"Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/130.0", false},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsMobileUserAgent(tt.ua); got != tt.want {
			t.Errorf("IsMobileUserAgent(%q) = %v, want %v", tt.ua, got, tt.want)
		}
	}
}
