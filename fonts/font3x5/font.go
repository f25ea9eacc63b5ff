package font3x5

import (
	"image/color"
	"unicode"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is a 3x5 uppercase bitmap font on a 4x6 cell.
//
// It implements tinyfont.Fonter. Lowercase letters draw as uppercase and
// unknown runes draw as '?'. Concurrent access is not safe due to internal
// glyph reuse.
var Font tinyfont.Fonter = &font3x5{}

const (
	glyphW  = 3
	glyphH  = 5
	advance = glyphW + 1
	lineH   = glyphH + 1
)

type font3x5 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows, ok := lookup(g.r)
	if !ok {
		return
	}
	for row := 0; row < glyphH; row++ {
		b := rows[row]
		// Bit2 is the leftmost pixel.
		for col := 0; col < glyphW; col++ {
			if b&(0b100>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(glyphH-1-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    glyphW,
		Height:   glyphH,
		XAdvance: advance,
		XOffset:  0,
		YOffset:  -(glyphH - 1),
	}
}

func (f *font3x5) GetYAdvance() uint8 { return lineH }

func (f *font3x5) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func lookup(r rune) ([glyphH]byte, bool) {
	if r == ' ' {
		return [glyphH]byte{}, false
	}
	if rows, ok := glyphs[unicode.ToUpper(r)]; ok {
		return rows, true
	}
	return glyphs['?'], true
}

var glyphs = map[rune][glyphH]byte{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},

	'A': {0b010, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b011, 0b100, 0b100, 0b100, 0b011},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b110, 0b100, 0b111},
	'F': {0b111, 0b100, 0b110, 0b100, 0b100},
	'G': {0b011, 0b100, 0b101, 0b101, 0b011},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b010},
	'K': {0b101, 0b101, 0b110, 0b101, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b111, 0b101, 0b101},
	'N': {0b110, 0b101, 0b101, 0b101, 0b101},
	'O': {0b010, 0b101, 0b101, 0b101, 0b010},
	'P': {0b110, 0b101, 0b110, 0b100, 0b100},
	'Q': {0b010, 0b101, 0b101, 0b110, 0b011},
	'R': {0b110, 0b101, 0b110, 0b101, 0b101},
	'S': {0b011, 0b100, 0b010, 0b001, 0b110},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b111, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},

	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	',': {0b000, 0b000, 0b000, 0b010, 0b100},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'+': {0b000, 0b010, 0b111, 0b010, 0b000},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	'=': {0b000, 0b111, 0b000, 0b111, 0b000},
	'/': {0b001, 0b001, 0b010, 0b100, 0b100},
	'(': {0b001, 0b010, 0b010, 0b010, 0b001},
	')': {0b100, 0b010, 0b010, 0b010, 0b100},
	'?': {0b111, 0b001, 0b010, 0b000, 0b010},
}
