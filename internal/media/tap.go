package media

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last samples into a ring buffer so
// the game loop can read the current amplitude of what is being played.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	window    int
	mu        sync.RWMutex
}

// NewTap keeps ringSize samples and measures the level over the last window.
func NewTap(src beep.Streamer, ringSize, window int) *Tap {
	if window > ringSize {
		window = ringSize
	}
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
		window: window,
	}
}

func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.filled += n
		if t.filled > len(t.buffer) {
			t.filled = len(t.buffer)
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *Tap) Err() error { return t.Source.Err() }

// Level returns the RMS of the most recent window of mono samples, 0 before
// anything was played.
func (t *Tap) Level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.window
	if n > t.filled {
		n = t.filled
	}
	if n == 0 {
		return 0
	}

	var sumSquares float64
	idx := t.nextIndex
	for i := 0; i < n; i++ {
		idx--
		if idx < 0 {
			idx = len(t.buffer) - 1
		}
		mono := (t.buffer[idx][0] + t.buffer[idx][1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Sqrt(sumSquares / float64(n))
}
