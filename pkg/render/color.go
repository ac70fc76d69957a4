package render

import (
	"image/color"
	"math"
)

// Palette holds every color the game draws with.
type Palette struct {
	Background  color.RGBA
	Disc        color.RGBA
	Stick       color.RGBA
	Text        color.RGBA
	Overlay     color.RGBA
	OverlayText color.RGBA
}

// Over composites a premultiplied src over an opaque dst.
func Over(dst, src color.RGBA) color.RGBA {
	k := 1 - float64(src.A)/255
	mix := func(d, s uint8) uint8 {
		return uint8(math.Min(255, float64(s)+float64(d)*k+0.5))
	}
	return color.RGBA{R: mix(dst.R, src.R), G: mix(dst.G, src.G), B: mix(dst.B, src.B), A: 255}
}

// ToRGBA converts any color to 8-bit premultiplied RGBA.
func ToRGBA(c color.Color) color.RGBA {
	if rgba, ok := c.(color.RGBA); ok {
		return rgba
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
