package render

import (
	"fmt"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSet parses a TrueType font once and hands out faces per size.
type FontSet struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontSet parses ttf data.
func NewFontSet(ttf []byte) (*FontSet, error) {
	tt, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &FontSet{font: tt, faces: make(map[float64]font.Face)}, nil
}

// NewDefaultFontSet uses the Go Regular font bundled with x/image.
func NewDefaultFontSet() (*FontSet, error) {
	return NewFontSet(goregular.TTF)
}

// Face returns the face for size, creating it on first use. If the face
// cannot be built the fixed 7x13 bitmap face is used instead.
func (f *FontSet) Face(size float64) font.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("[Fonts] size %.0f: %v, using fallback face", size, err)
		face = basicfont.Face7x13
	}
	f.faces[size] = face
	return face
}
