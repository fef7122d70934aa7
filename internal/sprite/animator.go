package sprite

// State is the animator's play state.
type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Animator cycles a frame index on a tick cadence. It starts Paused.
type Animator struct {
	frames  int
	frame   int
	counter int
	state   State
}

// NewAnimator returns a paused animator over n frames.
func NewAnimator(n int) *Animator {
	if n < 1 {
		n = 1
	}
	return &Animator{frames: n}
}

func (a *Animator) Frame() int    { return a.frame }
func (a *Animator) Frames() int   { return a.frames }
func (a *Animator) Counter() int  { return a.counter }
func (a *Animator) State() State  { return a.state }
func (a *Animator) Playing() bool { return a.state == Playing }

// Toggle flips between Paused and Playing. Frame and counter are kept.
func (a *Animator) Toggle() {
	if a.state == Playing {
		a.state = Paused
	} else {
		a.state = Playing
	}
}

func (a *Animator) SetPlaying(on bool) {
	if on {
		a.state = Playing
	} else {
		a.state = Paused
	}
}

// Advance counts one tick. Once the counter reaches interval the frame moves
// forward and wraps. Does nothing while paused.
func (a *Animator) Advance(interval int) {
	if a.state != Playing {
		return
	}
	if interval < 1 {
		interval = 1
	}
	a.counter++
	if a.counter >= interval {
		a.counter = 0
		a.frame = (a.frame + 1) % a.frames
	}
}
