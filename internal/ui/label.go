// internal/ui/label.go
package ui

import (
	"image/color"

	"go-spin-sticks/pkg/render"
)

// Label - однострочный текст, центрированный по горизонтали.
type Label struct {
	Text     string
	Y        float64 // baseline, relative to the surface center
	FontSize float64
	Color    color.Color
}

func (l *Label) Draw(s render.Surface) {
	w, h := s.Size()
	width := s.MeasureText(l.Text, l.FontSize)
	s.DrawText(l.Text, (w-width)/2, h/2+l.Y, l.FontSize, l.Color)
}
