package render

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"go-spin-sticks/pkg/utils"
)

// CellSurface draws the logical canvas onto a terminal grid. Each cell is
// filled when its center falls inside a shape; shapes thinner than a cell
// are widened so they never vanish.
type CellSurface struct {
	screen        tcell.Screen
	width, height float64
	bg            color.RGBA
}

var _ Surface = (*CellSurface)(nil)

// NewCellSurface maps a width x height logical canvas onto screen.
func NewCellSurface(screen tcell.Screen, width, height float64) *CellSurface {
	return &CellSurface{
		screen: screen,
		width:  width,
		height: height,
		bg:     color.RGBA{0, 0, 0, 255},
	}
}

func (s *CellSurface) grid() (cw, ch float64, cols, rows int) {
	cols, rows = s.screen.Size()
	cols, rows = max(cols, 1), max(rows, 1)
	return s.width / float64(cols), s.height / float64(rows), cols, rows
}

func (s *CellSurface) Clear(c color.Color) {
	s.bg = ToRGBA(c)
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(s.bg)))
}

func (s *CellSurface) FillRect(t Transform, x, y, w, h float64, c color.Color) {
	cw, ch, cols, rows := s.grid()
	m := math.Max(cw, ch) / 2
	if w < 2*m {
		x -= m - w/2
		w = 2 * m
	}
	if h < 2*m {
		y -= m - h/2
		h = 2 * m
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{x, y}, {x + w, y}, {x, y + h}, {x + w, y + h}} {
		px, py := t.Apply(p[0], p[1])
		minX, maxX = math.Min(minX, px), math.Max(maxX, px)
		minY, maxY = math.Min(minY, py), math.Max(maxY, py)
	}
	if maxX < 0 || maxY < 0 || minX > s.width || minY > s.height {
		return
	}

	src := ToRGBA(c)
	c0, c1 := utils.Clamp(int(minX/cw), 0, cols-1), utils.Clamp(int(maxX/cw), 0, cols-1)
	r0, r1 := utils.Clamp(int(minY/ch), 0, rows-1), utils.Clamp(int(maxY/ch), 0, rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			lx, ly := t.Invert((float64(col)+0.5)*cw, (float64(row)+0.5)*ch)
			if lx < x || lx > x+w || ly < y || ly > y+h {
				continue
			}
			s.paint(col, row, src)
		}
	}
}

func (s *CellSurface) FillCircle(cx, cy, r float64, c color.Color) {
	cw, ch, cols, rows := s.grid()
	r = math.Max(r, math.Max(cw, ch)/2)

	src := ToRGBA(c)
	c0, c1 := utils.Clamp(int((cx-r)/cw), 0, cols-1), utils.Clamp(int((cx+r)/cw), 0, cols-1)
	r0, r1 := utils.Clamp(int((cy-r)/ch), 0, rows-1), utils.Clamp(int((cy+r)/ch), 0, rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if utils.Distance(cx, cy, (float64(col)+0.5)*cw, (float64(row)+0.5)*ch) <= r {
				s.paint(col, row, src)
			}
		}
	}
}

// DrawText writes s on the row that holds the middle of the glyphs, keeping
// whatever background is already in those cells.
func (s *CellSurface) DrawText(str string, x, y, size float64, c color.Color) {
	cw, ch, cols, rows := s.grid()
	row := int((y - size*0.35) / ch)
	if row < 0 || row >= rows {
		return
	}
	fg := toTcell(ToRGBA(c))
	col := int(x / cw)
	for _, r := range str {
		if col >= cols {
			break
		}
		if col >= 0 {
			_, _, style, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, r, nil, style.Foreground(fg))
		}
		col++
	}
}

// MeasureText counts one cell per rune, matching DrawText.
func (s *CellSurface) MeasureText(str string, size float64) float64 {
	cw, _, _, _ := s.grid()
	return float64(utf8.RuneCountInString(str)) * cw
}

func (s *CellSurface) Size() (float64, float64) {
	return s.width, s.height
}

// paint fills one cell. Translucent colors are composited over what the
// cell already shows, so an overlay dims the scene instead of hiding it.
func (s *CellSurface) paint(col, row int, src color.RGBA) {
	if src.A == 255 {
		s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(toTcell(src)))
		return
	}
	mainc, combc, style, _ := s.screen.GetContent(col, row)
	fg, bg, _ := style.Decompose()
	style = style.
		Foreground(toTcell(Over(s.fromTcell(fg), src))).
		Background(toTcell(Over(s.fromTcell(bg), src)))
	s.screen.SetContent(col, row, mainc, combc, style)
}

func (s *CellSurface) fromTcell(c tcell.Color) color.RGBA {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return s.bg
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
