// Package particle implements the floating heart effect: a heart record with
// a pure per-tick transition and a bounded system that spawns and prunes them.
package particle

import "github.com/iburimskiy/heart-sprite/internal/config"

// RGB is an opaque 8-bit colour.
type RGB struct {
	R, G, B uint8
}

// Heart is one particle. Values are updated by Step, never in place.
type Heart struct {
	X, Y   float64
	Size   float64
	VX, VY float64

	Life    int // ticks remaining
	MaxLife int // ticks at creation

	Color RGB
}

// Step advances the heart by one tick.
func (h Heart) Step() Heart {
	h.X += h.VX
	h.Y += h.VY
	h.Life--
	return h
}

// Dead reports whether the heart ran out of life or floated past the top margin.
func (h Heart) Dead() bool {
	return h.Life <= 0 || h.Y+h.Size < config.HeartDeadZone
}

// Alpha is the fade factor in [0, 1], proportional to the remaining life.
func (h Heart) Alpha() float64 {
	if h.MaxLife <= 0 {
		return 0
	}
	a := float64(h.Life) / float64(h.MaxLife)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Shape is the geometry of a heart relative to its position: two lobes and
// a downward pointing triangle.
type Shape struct {
	Radius float64

	LeftX, RightX, LobeY float64

	// Triangle vertices, clockwise from the top left.
	Tri [3][2]float64
}

// Shape returns the lobes and triangle that make up the drawn heart.
func (h Heart) Shape() Shape {
	s := h.Size
	r := s * 0.28
	return Shape{
		Radius: r,
		LeftX:  -r,
		RightX: r,
		LobeY:  -r / 2,
		Tri: [3][2]float64{
			{-s * 0.6, -r / 2},
			{0, s},
			{s * 0.6, -r / 2},
		},
	}
}
