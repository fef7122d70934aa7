package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/heart-sprite/internal/config"
	"github.com/iburimskiy/heart-sprite/internal/game"
	"github.com/iburimskiy/heart-sprite/internal/media"
)

func main() {
	var (
		framesDir = flag.String("frames", config.FramesDir, "Directory holding the sprite frames 0.png..7.png")
		musicPath = flag.String("music", config.MusicFile, "Background music file (wav, mp3, flac)")
		pick      = flag.Bool("pick", false, "Choose the music file with a dialog")
		volume    = flag.Float64("volume", config.MusicVolume, "Music volume, 0..1")
		seed      = flag.Int64("seed", 0, "Heart random seed (0: time based)")
		hearts    = flag.Bool("hearts", false, "Start with the heart effect on")
	)
	flag.Parse()

	if *pick {
		path, err := pickMusic()
		if err != nil {
			log.Printf("[main] Warning: file dialog failed: %v", err)
		} else if path != "" {
			*musicPath = path
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g := game.New(game.Options{
		FramesDir: *framesDir,
		MusicPath: *musicPath,
		Volume:    *volume,
		Seed:      *seed,
		Hearts:    *hearts,
	})

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Heart Sprite - Click: animation + music, Right click: hearts, Esc/Q: Quit")

	err := ebiten.RunGame(g)
	if cerr := g.Close(); cerr != nil {
		log.Printf("[main] Warning: closing music: %v", cerr)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

// pickMusic asks for an audio file. A cancelled dialog returns "".
func pickMusic() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Background Music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: media.Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
