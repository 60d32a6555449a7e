// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

// GraphicsSettings is the full renderer configuration for one
// (tier, features, display) combination.
//
// Settings are derived by DeriveSettings and replaced wholesale whenever an
// input changes. Never patch individual fields of a published record.
type GraphicsSettings struct {
	PixelRatio    float64 `json:"pixelRatio"`
	ShadowMapSize int     `json:"shadowMapSize"`
	Antialias     bool    `json:"antialias"`

	PlanetSegments    int  `json:"planetSegments"`
	PlanetTextureSize int  `json:"planetTextureSize"`
	BumpMap           bool `json:"enableBumpMap"`
	Atmosphere        bool `json:"enableAtmosphere"`
	Rings             bool `json:"enableRings"`
	Moons             bool `json:"enableMoons"`

	Bloom               bool    `json:"enableBloom"`
	BloomIntensity      float64 `json:"bloomIntensity"`
	SSAO                bool    `json:"enableSSAO"`
	LensFlare           bool    `json:"enableLensFlare"`
	VolumetricLighting  bool    `json:"enableVolumetricLighting"`
	Pixelation          bool    `json:"enablePixelation"`
	PixelationLevel     int     `json:"pixelationLevel"`
	ChromaticAberration bool    `json:"enableChromaticAberration"`
	Noise               bool    `json:"enableNoise"`
	NoiseIntensity      float64 `json:"noiseIntensity"`

	StarCount         int `json:"starCount"`
	AsteroidCount     int `json:"asteroidCount"`
	DebrisCount       int `json:"debrisCount"`
	CometCount        int `json:"cometCount"`
	ShootingStarCount int `json:"shootingStarCount"`

	SmoothCamera    bool    `json:"enableSmoothCamera"`
	CameraLerpSpeed float64 `json:"cameraLerpSpeed"`
	ParticleTrails  bool    `json:"enableParticleTrails"`

	MaxLODDistance     float64 `json:"maxLodDistance"`
	FrustumCulling     bool    `json:"frustumCulling"`
	InstancedRendering bool    `json:"instancedRendering"`

	// TargetFPS caps how often the scene is redrawn.
	TargetFPS       int             `json:"targetFps"`
	PowerPreference PowerPreference `json:"powerPreference"`
}

// tierParams holds the per-tier constants. Indexed by Tier.
type tierParams struct {
	pixelRatioCap   float64
	textureBase     int
	segments        int
	shadowMapSize   int
	bloomIntensity  float64
	starCount       int
	asteroidCount   int
	debrisCount     int
	cometCount      int
	shootingStars   int
	pixelationLevel int
	noiseIntensity  float64
	cameraLerpSpeed float64
	maxLODDistance  float64
	targetFPS       int
}

var tierTable = [...]tierParams{
	TierLow: {
		pixelRatioCap: 1.1, textureBase: 192, segments: 32, shadowMapSize: 256,
		starCount: 1400, asteroidCount: 50, debrisCount: 20, cometCount: 1, shootingStars: 4,
		pixelationLevel: 7, noiseIntensity: 0, cameraLerpSpeed: 0.05, maxLODDistance: 240,
		targetFPS: 24,
	},
	TierMedium: {
		pixelRatioCap: 1.35, textureBase: 256, segments: 44, shadowMapSize: 512,
		starCount: 2400, asteroidCount: 85, debrisCount: 35, cometCount: 2, shootingStars: 6,
		pixelationLevel: 6, noiseIntensity: 0.055, cameraLerpSpeed: 0.055, maxLODDistance: 280,
		targetFPS: 30,
	},
	TierHigh: {
		pixelRatioCap: 1.75, textureBase: 384, segments: 56, shadowMapSize: 1024, bloomIntensity: 0.65,
		starCount: 3800, asteroidCount: 140, debrisCount: 60, cometCount: 3, shootingStars: 10,
		pixelationLevel: 5, noiseIntensity: 0.05, cameraLerpSpeed: 0.06, maxLODDistance: 320,
		targetFPS: 45,
	},
	TierUltra: {
		pixelRatioCap: 2, textureBase: 512, segments: 64, shadowMapSize: 2048, bloomIntensity: 0.85,
		starCount: 5000, asteroidCount: 220, debrisCount: 90, cometCount: 5, shootingStars: 14,
		pixelationLevel: 4, noiseIntensity: 0.045, cameraLerpSpeed: 0.07, maxLODDistance: 360,
		targetFPS: 60,
	},
}

func paramsFor(t Tier) tierParams {
	if !t.Valid() {
		return tierTable[TierLow]
	}
	return tierTable[t]
}

// PixelRatioCap returns the highest pixel ratio a tier renders at.
// Invalid tiers get the TierLow cap.
func PixelRatioCap(t Tier) float64 {
	return paramsFor(t).pixelRatioCap
}

// DeriveSettings computes the graphics settings for a tier on a given device
// and display. It is a pure function: identical inputs always produce
// identical settings.
//
// The pixel ratio is min(display ratio, PixelRatioCap(tier)); an unknown
// (non-positive) display ratio counts as 1.
// The planet texture size never exceeds features.MaxTextureSize.
// Bloom, bump mapping and particle trails are enabled only at TierHigh and
// TierUltra, which also request the high-performance GPU. Invalid tiers are
// treated as TierLow.
func DeriveSettings(tier Tier, features DeviceFeatures, display DisplayInfo) GraphicsSettings {
	if !tier.Valid() {
		tier = TierLow
	}
	p := paramsFor(tier)
	rich := tier >= TierHigh

	textureSize := p.textureBase
	if features.MaxTextureSize > 0 && features.MaxTextureSize < textureSize {
		textureSize = features.MaxTextureSize
	}

	s := GraphicsSettings{
		PixelRatio:    pixelRatio(display.PixelRatio, p.pixelRatioCap),
		ShadowMapSize: p.shadowMapSize,
		Antialias:     tier == TierUltra,

		PlanetSegments:    p.segments,
		PlanetTextureSize: textureSize,
		BumpMap:           rich,
		Atmosphere:        true,
		Rings:             true,
		Moons:             tier != TierLow,

		Bloom:               rich,
		SSAO:                false,
		LensFlare:           false,
		VolumetricLighting:  false,
		Pixelation:          true,
		PixelationLevel:     p.pixelationLevel,
		ChromaticAberration: tier != TierLow,
		Noise:               tier != TierLow,
		NoiseIntensity:      p.noiseIntensity,

		StarCount:         p.starCount,
		AsteroidCount:     p.asteroidCount,
		DebrisCount:       p.debrisCount,
		CometCount:        p.cometCount,
		ShootingStarCount: p.shootingStars,

		SmoothCamera:    true,
		CameraLerpSpeed: p.cameraLerpSpeed,
		ParticleTrails:  rich,

		MaxLODDistance:     p.maxLODDistance,
		FrustumCulling:     true,
		InstancedRendering: features.Instancing,

		TargetFPS:       p.targetFPS,
		PowerPreference: PowerLowPower,
	}
	if rich {
		s.PowerPreference = PowerHighPerformance
	}
	if s.Bloom {
		s.BloomIntensity = p.bloomIntensity
	}
	return s
}

// FallbackSettings returns a conservative record that keeps a scene usable
// when detection cannot run at all.
func FallbackSettings() GraphicsSettings {
	return GraphicsSettings{
		PixelRatio:          1,
		ShadowMapSize:       512,
		PlanetSegments:      48,
		PlanetTextureSize:   256,
		Atmosphere:          true,
		Rings:               true,
		Moons:               true,
		Pixelation:          true,
		PixelationLevel:     6,
		ChromaticAberration: true,
		Noise:               true,
		NoiseIntensity:      0.05,
		StarCount:           2000,
		AsteroidCount:       50,
		DebrisCount:         25,
		CometCount:          2,
		ShootingStarCount:   5,
		SmoothCamera:        true,
		CameraLerpSpeed:     0.06,
		MaxLODDistance:      300,
		FrustumCulling:      true,
		InstancedRendering:  true,
		TargetFPS:           30,
		PowerPreference:     PowerLowPower,
	}
}

// pixelRatio never exceeds either the native ratio or the tier cap.
func pixelRatio(native, limit float64) float64 {
	if !(native > 0) {
		native = 1
	}
	return min(native, limit)
}
