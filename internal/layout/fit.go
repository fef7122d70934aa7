// Package layout sizes the sprite frame to the window.
package layout

import (
	"math"

	"github.com/iburimskiy/heart-sprite/internal/config"
)

// Size is a display size in pixels.
type Size struct {
	W, H int
}

// Rect is a placed size; X and Y are the top-left corner.
type Rect struct {
	X, Y float64
	W, H int
}

// Fit scales a natural frame size down to fit the viewport, keeping the aspect
// ratio and a margin. It never scales up. Missing natural dimensions fall back
// to the default frame size.
func Fit(naturalW, naturalH, viewW, viewH int) Size {
	if naturalW <= 0 {
		naturalW = config.FallbackFrameWidth
	}
	if naturalH <= 0 {
		naturalH = config.FallbackFrameHeight
	}

	maxW := int(math.Floor(float64(viewW) * config.FitMargin))
	if maxW > config.DisplayWidth {
		maxW = config.DisplayWidth
	}
	maxH := int(math.Floor(float64(viewH) * config.FitMargin))

	scale := math.Min(float64(maxW)/float64(naturalW), float64(maxH)/float64(naturalH))
	scale = math.Min(scale, 1)
	if scale < 0 {
		scale = 0
	}

	return Size{
		W: int(math.Round(float64(naturalW) * scale)),
		H: int(math.Round(float64(naturalH) * scale)),
	}
}

// Centered places s in the middle of the viewport.
func Centered(s Size, viewW, viewH int) Rect {
	return Rect{
		X: float64(viewW)/2 - float64(s.W)/2,
		Y: float64(viewH)/2 - float64(s.H)/2,
		W: s.W,
		H: s.H,
	}
}
