package scene

import (
	"strconv"

	"github.com/iburimskiy/heart-sprite/internal/config"
	"github.com/iburimskiy/heart-sprite/internal/timing"
)

// Status is the overlay text.
type Status struct {
	Hint  string
	Music string
	Speed string
}

// StatusLines builds the overlay for the current animation state, music and
// frame interval.
func StatusLines(playing bool, p timing.Player, interval int) Status {
	var st Status
	if playing {
		st.Hint = "Click to stop the animation (right click: hearts)"
	} else {
		st.Hint = "Click to start the animation (right click: hearts)"
	}

	switch {
	case p == nil:
		st.Music = "Music: not loaded (place " + config.MusicFile + ")"
	case p.IsPlaying():
		st.Music = "Music: playing"
	default:
		st.Music = "Music: stopped"
	}

	st.Speed = "Speed: " + strconv.FormatFloat(timing.Multiplier(interval), 'f', -1, 64) + "x"
	return st
}
