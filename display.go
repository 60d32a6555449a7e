// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

// Fallback viewport used when the host cannot report one.
const (
	defaultViewportWidth  = 1280
	defaultViewportHeight = 720
)

// Viewport is the raw window geometry reported by the host.
type Viewport struct {
	Width      int
	Height     int
	PixelRatio float64 // device pixels per logical pixel
}

// DisplayInfo describes the display the scene renders to. It is replaced
// wholesale on every resize.
type DisplayInfo struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	PixelRatio float64 `json:"pixelRatio"`
	Retina     bool    `json:"retina"`
	Mobile     bool    `json:"mobile"`
}

// NewDisplayInfo builds a DisplayInfo from a host viewport. Non-positive
// dimensions fall back to 1280x720 and a non-positive (or NaN) pixel ratio
// to 1.
func NewDisplayInfo(vp Viewport, mobile bool) DisplayInfo {
	d := DisplayInfo{
		Width:      vp.Width,
		Height:     vp.Height,
		PixelRatio: vp.PixelRatio,
		Mobile:     mobile,
	}
	if d.Width <= 0 || d.Height <= 0 {
		d.Width, d.Height = defaultViewportWidth, defaultViewportHeight
	}
	if !(d.PixelRatio > 0) {
		d.PixelRatio = 1
	}
	d.Retina = d.PixelRatio > 1
	return d
}

// Resized returns a copy of d with new geometry. The mobile flag is a
// property of the device, not the window, and is kept.
func (d DisplayInfo) Resized(vp Viewport) DisplayInfo {
	return NewDisplayInfo(vp, d.Mobile)
}
