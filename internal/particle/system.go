package particle

import (
	"math/rand"

	"github.com/iburimskiy/heart-sprite/internal/config"
)

// Spawn ranges. Positions are fractions of the viewport.
const (
	spawnMinX, spawnMaxX = 0.1, 0.9
	spawnMinY, spawnMaxY = 0.6, 0.95

	minSize, maxSize = 24.0, 80.0
	minVX, maxVX     = -0.4, 0.4
	minVY, maxVY     = -2.0, -0.6
	minLife, maxLife = 80, 200

	minRed, maxRed     = 200, 255
	minGreen, maxGreen = 80, 160
	minBlue, maxBlue   = 120, 220
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// System owns the live hearts. Storage is a dense slice; dead hearts are
// removed by swapping in the last element.
type System struct {
	Cadence int // ticks between spawn attempts
	Max     int // population cap

	hearts []Heart
	rng    Rand
}

// NewSystem returns a system with the default cadence and cap.
func NewSystem(rng Rand) *System {
	return &System{
		Cadence: config.HeartSpawnCadence,
		Max:     config.MaxHearts,
		hearts:  make([]Heart, 0, config.MaxHearts),
		rng:     rng,
	}
}

// Len returns the number of live hearts.
func (s *System) Len() int { return len(s.hearts) }

// Each calls fn for every live heart.
func (s *System) Each(fn func(Heart)) {
	for _, h := range s.hearts {
		fn(h)
	}
}

// Reset drops every heart.
func (s *System) Reset() {
	s.hearts = s.hearts[:0]
}

// Spawn adds one heart when tick falls on the cadence and the system is not
// full. A full system drops the request. Width and height are the viewport.
func (s *System) Spawn(tick uint64, width, height float64) bool {
	cadence := s.Cadence
	if cadence < 1 {
		cadence = 1
	}
	if tick%uint64(cadence) != 0 || len(s.hearts) >= s.Max {
		return false
	}
	s.hearts = append(s.hearts, s.newHeart(width, height))
	return true
}

func (s *System) newHeart(width, height float64) Heart {
	life := minLife + s.rng.Intn(maxLife-minLife+1)
	return Heart{
		X:       s.between(width*spawnMinX, width*spawnMaxX),
		Y:       s.between(height*spawnMinY, height*spawnMaxY),
		Size:    s.between(minSize, maxSize),
		VX:      s.between(minVX, maxVX),
		VY:      s.between(minVY, maxVY),
		Life:    life,
		MaxLife: life,
		Color: RGB{
			R: uint8(minRed + s.rng.Intn(maxRed-minRed+1)),
			G: uint8(minGreen + s.rng.Intn(maxGreen-minGreen+1)),
			B: uint8(minBlue + s.rng.Intn(maxBlue-minBlue+1)),
		},
	}
}

func (s *System) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Advance steps every heart once, hands it to draw and prunes it if dead.
// draw may be nil.
func (s *System) Advance(draw func(Heart)) {
	for i := 0; i < len(s.hearts); {
		h := s.hearts[i].Step()
		if draw != nil {
			draw(h)
		}
		if h.Dead() {
			// The swapped-in heart has not been stepped yet; revisit index i.
			last := len(s.hearts) - 1
			s.hearts[i] = s.hearts[last]
			s.hearts = s.hearts[:last]
			continue
		}
		s.hearts[i] = h
		i++
	}
}

// Tick runs one spawn attempt followed by Advance.
func (s *System) Tick(tick uint64, width, height float64, draw func(Heart)) {
	s.Spawn(tick, width, height)
	s.Advance(draw)
}
