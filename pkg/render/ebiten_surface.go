package render

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// whitePixel is the center of a 3x3 white image, so scaled draws never
// sample past its edge.
func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// EbitenSurface draws onto an ebiten image.
type EbitenSurface struct {
	dst   *ebiten.Image
	fonts *FontSet
}

var _ Surface = (*EbitenSurface)(nil)

func NewEbitenSurface(dst *ebiten.Image, fonts *FontSet) *EbitenSurface {
	return &EbitenSurface{dst: dst, fonts: fonts}
}

func (s *EbitenSurface) Clear(c color.Color) {
	s.dst.Fill(c)
}

// FillRect stretches a white pixel over the local rectangle and lets GeoM
// apply the transform.
func (s *EbitenSurface) FillRect(t Transform, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Rotate(t.Angle)
	op.GeoM.Translate(t.X, t.Y)
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(whitePixel(), op)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *EbitenSurface) DrawText(str string, x, y, size float64, c color.Color) {
	text.Draw(s.dst, str, s.fonts.Face(size), int(x), int(y), c)
}

func (s *EbitenSurface) MeasureText(str string, size float64) float64 {
	return float64(text.BoundString(s.fonts.Face(size), str).Dx())
}

func (s *EbitenSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
