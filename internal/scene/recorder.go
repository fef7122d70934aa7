package scene

import (
	"image/color"

	"github.com/iburimskiy/heart-sprite/internal/layout"
	"github.com/iburimskiy/heart-sprite/internal/particle"
)

type OpKind int

const (
	OpBackground OpKind = iota
	OpHeart
	OpFrame
	OpText
)

// Op is one recorded draw call. Only the fields of its kind are set.
type Op struct {
	Kind  OpKind
	Color color.RGBA
	Heart particle.Heart
	Frame int
	Dst   layout.Rect
	Text  string
	X, Y  int
}

// Recorder is a Renderer that keeps the draw calls of a tick so they can be
// replayed later, e.g. from the host's draw callback.
type Recorder struct {
	Ops []Op
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) Background(c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpBackground, Color: c})
}

func (r *Recorder) Heart(h particle.Heart) {
	r.Ops = append(r.Ops, Op{Kind: OpHeart, Heart: h})
}

func (r *Recorder) Frame(index int, dst layout.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpFrame, Frame: index, Dst: dst})
}

func (r *Recorder) Text(s string, centerX, y int) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: s, X: centerX, Y: y})
}

// Replay sends the recorded calls to dst in order.
func (r *Recorder) Replay(dst Renderer) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpBackground:
			dst.Background(op.Color)
		case OpHeart:
			dst.Heart(op.Heart)
		case OpFrame:
			dst.Frame(op.Frame, op.Dst)
		case OpText:
			dst.Text(op.Text, op.X, op.Y)
		}
	}
}
