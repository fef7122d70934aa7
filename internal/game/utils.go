package game

import (
	"image/color"

	"github.com/iburimskiy/heart-sprite/internal/particle"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fade turns a heart colour and an alpha in [0, 1] into a straight-alpha colour.
func fade(c particle.RGB, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * clamp01(alpha))}
}
