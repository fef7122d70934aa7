package config

import "image/color"

const (
	WindowWidth  = 960
	WindowHeight = 540

	// Sprite frames
	FrameCount          = 8
	FallbackFrameWidth  = 491
	FallbackFrameHeight = 71
	DisplayWidth        = 491
	FitMargin           = 0.9

	// Audio-driven frame timing
	BaseFrameDelay = 6
	LevelSmoothing = 0.12
	LevelCeiling   = 0.2
	MinSpeed       = 0.5
	MaxSpeed       = 2.0

	// Heart particles
	HeartSpawnCadence = 12
	MaxHearts         = 120
	HeartDeadZone     = -50

	// Music
	MusicVolume    = 0.6
	VisualRingSize = 8192
	LevelWindow    = 1024

	// Assets
	FramesDir = "1"
	MusicFile = "music.mp3"

	// Status overlay
	StatusHintY  = 8
	StatusMusicY = 26
	StatusSpeedY = 42
)

var BackgroundColor = color.RGBA{R: 0xFF, G: 0xD2, B: 0xD2, A: 0xFF}
