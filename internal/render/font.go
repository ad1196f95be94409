package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// A 3x5 pixel face with a 4px advance. Four 6px lines plus padding fit the
// 32px panel height, which the stock 7x13 faces cannot.
const (
	glyphWidth   = 3
	glyphHeight  = 5
	glyphAdvance = 4
	lineHeight   = 8
)

// glyphOrder fixes each rune's row offset inside the mask. Uppercase only;
// drawText upcases its input before rasterizing.
const glyphOrder = " ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.:@/-'&?,"

var glyphRows = map[rune][glyphHeight]string{
	' ': {"...", "...", "...", "...", "..."},
	'A': {".X.", "X.X", "XXX", "X.X", "X.X"},
	'B': {"XX.", "X.X", "XX.", "X.X", "XX."},
	'C': {".XX", "X..", "X..", "X..", ".XX"},
	'D': {"XX.", "X.X", "X.X", "X.X", "XX."},
	'E': {"XXX", "X..", "XX.", "X..", "XXX"},
	'F': {"XXX", "X..", "XX.", "X..", "X.."},
	'G': {".XX", "X..", "X.X", "X.X", ".XX"},
	'H': {"X.X", "X.X", "XXX", "X.X", "X.X"},
	'I': {"XXX", ".X.", ".X.", ".X.", "XXX"},
	'J': {"..X", "..X", "..X", "X.X", ".X."},
	'K': {"X.X", "X.X", "XX.", "X.X", "X.X"},
	'L': {"X..", "X..", "X..", "X..", "XXX"},
	'M': {"X.X", "XXX", "X.X", "X.X", "X.X"},
	'N': {"XX.", "X.X", "X.X", "X.X", "X.X"},
	'O': {".X.", "X.X", "X.X", "X.X", ".X."},
	'P': {"XX.", "X.X", "XX.", "X..", "X.."},
	'Q': {".X.", "X.X", "X.X", ".X.", "..X"},
	'R': {"XX.", "X.X", "XX.", "X.X", "X.X"},
	'S': {".XX", "X..", ".X.", "..X", "XX."},
	'T': {"XXX", ".X.", ".X.", ".X.", ".X."},
	'U': {"X.X", "X.X", "X.X", "X.X", ".XX"},
	'V': {"X.X", "X.X", "X.X", "X.X", ".X."},
	'W': {"X.X", "X.X", "X.X", "XXX", "X.X"},
	'X': {"X.X", "X.X", ".X.", "X.X", "X.X"},
	'Y': {"X.X", "X.X", ".X.", ".X.", ".X."},
	'Z': {"XXX", "..X", ".X.", "X..", "XXX"},
	'0': {".X.", "X.X", "X.X", "X.X", ".X."},
	'1': {".X.", "XX.", ".X.", ".X.", "XXX"},
	'2': {"XX.", "..X", ".X.", "X..", "XXX"},
	'3': {"XXX", "..X", ".X.", "..X", "XX."},
	'4': {"X.X", "X.X", "XXX", "..X", "..X"},
	'5': {"XXX", "X..", "XX.", "..X", "XX."},
	'6': {".XX", "X..", "XX.", "X.X", ".X."},
	'7': {"XXX", "..X", ".X.", ".X.", ".X."},
	'8': {".X.", "X.X", ".X.", "X.X", ".X."},
	'9': {".X.", "X.X", ".XX", "..X", "XX."},
	'.': {"...", "...", "...", "...", ".X."},
	':': {"...", ".X.", "...", ".X.", "..."},
	'@': {".XX", "X.X", "XXX", "X..", ".XX"},
	'/': {"..X", "..X", ".X.", "X..", "X.."},
	'-': {"...", "...", "XXX", "...", "..."},
	'\'': {".X.", ".X.", "...", "...", "..."},
	'&': {".X.", "X.X", ".X.", "X.X", ".XX"},
	'?': {"XX.", "..X", ".X.", "...", ".X."},
	',': {"...", "...", "...", ".X.", "X.."},
}

var (
	faceOnce sync.Once
	face     *basicfont.Face
)

// Face returns the shared bitmap face. The mask is built once.
func Face() *basicfont.Face {
	faceOnce.Do(buildFace)
	return face
}

func buildFace() {
	runes := []rune(glyphOrder)
	mask := image.NewAlpha(image.Rect(0, 0, glyphWidth, glyphHeight*len(runes)))
	ranges := make([]basicfont.Range, 0, len(runes))
	for i, r := range runes {
		rows := glyphRows[r]
		for y := 0; y < glyphHeight; y++ {
			for x := 0; x < glyphWidth; x++ {
				if rows[y][x] == 'X' {
					mask.SetAlpha(x, i*glyphHeight+y, color.Alpha{A: 0xff})
				}
			}
		}
		ranges = append(ranges, basicfont.Range{Low: r, High: r + 1, Offset: i})
	}
	face = &basicfont.Face{
		Advance: glyphAdvance,
		Width:   glyphWidth,
		Height:  lineHeight,
		Ascent:  glyphHeight,
		Descent: 0,
		Mask:    mask,
		Ranges:  ranges,
	}
}

// sanitize upcases the text and replaces anything outside the glyph set, so
// unknown runes occupy a cell instead of silently collapsing the line.
func sanitize(s string) string {
	s = strings.ToUpper(s)
	return strings.Map(func(r rune) rune {
		if _, ok := glyphRows[r]; ok {
			return r
		}
		return '?'
	}, s)
}

// drawText rasterizes s with its baseline at (x, y).
func drawText(dst draw.Image, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: Face(),
		Dot:  fixed.P(x, y),
	}
	d.DrawString(sanitize(s))
}

// textWidth reports the pixel width of s in the bitmap face.
func textWidth(s string) int {
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return n*glyphAdvance - 1
}
