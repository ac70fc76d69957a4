package render

import (
	"image/color"
	"unicode/utf8"
)

// OpKind names a recorded drawing call.
type OpKind string

const (
	OpClear  OpKind = "clear"
	OpRect   OpKind = "rect"
	OpCircle OpKind = "circle"
	OpText   OpKind = "text"
)

// Op is one recorded drawing call.
type Op struct {
	Kind      OpKind
	Transform Transform
	X, Y      float64
	W, H      float64
	R         float64
	Size      float64
	Text      string
	Color     color.RGBA
}

// Recorder is a headless Surface that keeps every call in order.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

var _ Surface = (*Recorder)(nil)

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: ToRGBA(c)})
}

func (r *Recorder) FillRect(t Transform, x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Transform: t, X: x, Y: y, W: w, H: h, Color: ToRGBA(c)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: cx, Y: cy, R: radius, Color: ToRGBA(c)})
}

func (r *Recorder) DrawText(s string, x, y, size float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, X: x, Y: y, Size: size, Text: s, Color: ToRGBA(c)})
}

// RecorderGlyphWidth is the advance of every rune on a Recorder, relative to
// the font size.
const RecorderGlyphWidth = 0.5

func (r *Recorder) MeasureText(s string, size float64) float64 {
	return float64(utf8.RuneCountInString(s)) * size * RecorderGlyphWidth
}

func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

// Filter returns the recorded calls of one kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// Texts returns every drawn string in order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.Filter(OpText) {
		texts = append(texts, op.Text)
	}
	return texts
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
