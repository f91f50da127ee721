package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/css-color-tools/pkg/csscolor"
)

// labelHeight is the strip under each palette cell holding its hex label.
const labelHeight = 9

// PaletteOptions lays out a palette sheet.
type PaletteOptions struct {
	Columns     int
	CellSize    int
	CheckerSize int
}

// Palette renders one square cell per color, left to right and top to bottom,
// each with its "#RRGGBBAA" value printed underneath. Fewer colors than
// Columns shrink the sheet to fit.
func Palette(colors []csscolor.Color, opts PaletteOptions) (*RenderResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("palette needs at least one color")
	}
	if opts.Columns <= 0 || opts.CellSize <= 0 || opts.CheckerSize <= 0 {
		return nil, fmt.Errorf("invalid palette layout: %d columns, cell %d, checker %d",
			opts.Columns, opts.CellSize, opts.CheckerSize)
	}

	columns := min(opts.Columns, len(colors))
	rows := (len(colors) + columns - 1) / columns
	rowHeight := opts.CellSize + labelHeight
	if err := checkArea(columns*opts.CellSize, rows*rowHeight); err != nil {
		return nil, err
	}

	sheet := imaging.New(columns*opts.CellSize, rows*rowHeight, color.White)
	cell := SwatchOptions{Width: opts.CellSize, Height: opts.CellSize, CheckerSize: opts.CheckerSize}
	for i, c := range colors {
		x := (i % columns) * opts.CellSize
		y := (i / columns) * rowHeight
		sheet = imaging.Paste(sheet, composite(c, cell), image.Pt(x, y))
		drawLabel(sheet, x+1, y+opts.CellSize+2, c.ToHexColorString(),
			color.NRGBA{A: 0xFF}, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	}
	return encodePNG(sheet)
}

// glyphs is a 3x5 pixel font covering what hex color labels need.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'A': {"010", "101", "111", "101", "101"},
	'B': {"110", "101", "110", "101", "110"},
	'C': {"011", "100", "100", "100", "011"},
	'D': {"110", "101", "101", "101", "110"},
	'E': {"111", "100", "110", "100", "111"},
	'F': {"111", "100", "110", "100", "100"},
	'#': {"101", "111", "101", "111", "101"},
}

// drawLabel prints text at (x, y) on a bg box. Characters without a glyph
// leave a blank cell; anything outside img is clipped.
func drawLabel(img draw.Image, x, y int, text string, fg, bg color.Color) {
	const charWidth = 4
	bounds := img.Bounds()
	set := func(px, py int, c color.Color) {
		if (image.Point{X: px, Y: py}).In(bounds) {
			img.Set(px, py, c)
		}
	}

	labelWidth := len(text) * charWidth
	for dy := -1; dy < labelHeight-2; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			set(x+dx, y+dy, bg)
		}
	}

	cx := x
	for _, ch := range text {
		for row, line := range glyphs[ch] {
			for col, pixel := range line {
				if pixel == '1' {
					set(cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
