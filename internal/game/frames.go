package game

import (
	"fmt"
	_ "image/png"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// frameSet holds the sprite frames. Frames that failed to load are nil.
type frameSet []*ebiten.Image

// loadFrames reads dir/0.png .. dir/(n-1).png. It returns an empty set when
// no frame could be loaded.
func loadFrames(dir string, n int) frameSet {
	frames := make(frameSet, n)
	loaded := 0
	for i := range frames {
		path := filepath.Join(dir, fmt.Sprintf("%d.png", i))
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			log.Printf("[frames] Warning: could not load %s: %v", path, err)
			continue
		}
		frames[i] = img
		loaded++
	}
	log.Printf("[frames] loaded %d of %d frames from %s", loaded, n, dir)
	if loaded == 0 {
		return nil
	}
	return frames
}

func (f frameSet) Len() int { return len(f) }

func (f frameSet) Size(i int) (int, int, bool) {
	if i < 0 || i >= len(f) || f[i] == nil {
		return 0, 0, false
	}
	b := f[i].Bounds()
	return b.Dx(), b.Dy(), true
}
