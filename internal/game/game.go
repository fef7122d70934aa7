package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/heart-sprite/internal/config"
	"github.com/iburimskiy/heart-sprite/internal/media"
	"github.com/iburimskiy/heart-sprite/internal/particle"
	"github.com/iburimskiy/heart-sprite/internal/scene"
)

type Options struct {
	FramesDir string
	MusicPath string // empty: no music
	Volume    float64
	Seed      int64
	Hearts    bool // start with the heart effect on
}

// Game is the ebiten host of the scene. Update runs one scene tick and keeps
// its draw calls; Draw replays them onto the screen.
type Game struct {
	state  *scene.State
	events scene.Dispatcher

	frames frameSet
	music  *media.Music

	rec    scene.Recorder
	screen screenRenderer

	width, height int
	touches       []ebiten.TouchID
}

func New(opts Options) *Game {
	g := &Game{
		state:  scene.NewState(particle.NewRand(opts.Seed), opts.Hearts),
		frames: loadFrames(opts.FramesDir, config.FrameCount),
		width:  config.WindowWidth,
		height: config.WindowHeight,
	}
	g.screen.frames = g.frames

	if opts.MusicPath != "" {
		m, err := media.LoadMusic(opts.MusicPath)
		if err != nil {
			log.Printf("[music] Warning: could not load %s: %v", opts.MusicPath, err)
		} else {
			m.SetVolume(opts.Volume)
			g.music = m
			log.Printf("[music] loaded %s", opts.MusicPath)
		}
	}

	music := &scene.MusicListener{}
	if g.music != nil {
		music.Audio = g.music
	}
	g.events.Subscribe(scene.AnimationListener(g.state.Anim))
	g.events.Subscribe(music)
	g.events.Subscribe(scene.HeartsListener(g.state))
	return g
}

func (g *Game) env() scene.Env {
	env := scene.Env{Width: g.width, Height: g.height}
	if g.frames != nil {
		env.Frames = g.frames
	}
	if g.music != nil {
		env.Player = g.music
		env.Level = g.music
	}
	return env
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.touches = inpututil.AppendJustPressedTouchIDs(g.touches[:0])
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || len(g.touches) > 0 {
		g.events.Dispatch(scene.ToggleAnimation)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.events.Dispatch(scene.ToggleHearts)
	}

	g.rec.Reset()
	g.state.Step(g.env(), &g.rec)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.dst = screen
	g.rec.Replay(&g.screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close stops the music.
func (g *Game) Close() error {
	if g.music == nil {
		return nil
	}
	return g.music.Close()
}
