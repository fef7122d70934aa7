package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/heart-sprite/internal/layout"
	"github.com/iburimskiy/heart-sprite/internal/particle"
)

const (
	glyphWidth  = 7 // basicfont.Face7x13
	glyphAscent = 11
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	textColor = color.NRGBA{R: 0, G: 0, B: 0, A: 120}
)

func init() {
	whiteImage.Fill(color.White)
}

// screenRenderer draws scene calls onto an ebiten image.
type screenRenderer struct {
	dst    *ebiten.Image
	frames frameSet

	vertices []ebiten.Vertex
	indices  []uint16
}

func (r *screenRenderer) Background(c color.RGBA) {
	r.dst.Fill(c)
}

func (r *screenRenderer) Heart(h particle.Heart) {
	clr := fade(h.Color, h.Alpha())
	sh := h.Shape()

	vector.DrawFilledCircle(r.dst, float32(h.X+sh.LeftX), float32(h.Y+sh.LobeY), float32(sh.Radius), clr, true)
	vector.DrawFilledCircle(r.dst, float32(h.X+sh.RightX), float32(h.Y+sh.LobeY), float32(sh.Radius), clr, true)

	var path vector.Path
	path.MoveTo(float32(h.X+sh.Tri[0][0]), float32(h.Y+sh.Tri[0][1]))
	path.LineTo(float32(h.X+sh.Tri[1][0]), float32(h.Y+sh.Tri[1][1]))
	path.LineTo(float32(h.X+sh.Tri[2][0]), float32(h.Y+sh.Tri[2][1]))
	path.Close()

	r.vertices, r.indices = path.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	cr, cg, cb, ca := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = cr
		r.vertices[i].ColorG = cg
		r.vertices[i].ColorB = cb
		r.vertices[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	r.dst.DrawTriangles(r.vertices, r.indices, whiteSubImage, op)
}

func (r *screenRenderer) Frame(index int, dst layout.Rect) {
	if index < 0 || index >= len(r.frames) || r.frames[index] == nil {
		return
	}
	img := r.frames[index]
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.W)/float64(b.Dx()), float64(dst.H)/float64(b.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	r.dst.DrawImage(img, op)
}

func (r *screenRenderer) Text(s string, centerX, y int) {
	x := centerX - len([]rune(s))*glyphWidth/2
	text.Draw(r.dst, s, basicfont.Face7x13, x, y+glyphAscent, textColor)
}
