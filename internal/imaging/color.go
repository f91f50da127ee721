package imaging

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/ironsheep/css-color-tools/internal/namedcolors"
	"github.com/ironsheep/css-color-tools/pkg/csscolor"
)

// Channels are the straight-alpha 8-bit components of a color.
type Channels struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// CSSColor describes one color in the forms csscolor reads and writes.
//
// Every string field parses back to the same color except RGB, whose alpha is
// rounded to three decimals.
type CSSColor struct {
	Hex      string   `json:"hex"`            // "#RRGGBBAA"
	Number   string   `json:"number"`         // "0xAARRGGBB"
	RGB      string   `json:"rgb"`            // "rgb(R G B / a)"
	Name     string   `json:"name,omitempty"` // CSS keyword, when one matches exactly
	Channels Channels `json:"channels"`
}

// NewCSSColor fills in every representation of c.
func NewCSSColor(c csscolor.Color) CSSColor {
	result := CSSColor{
		Hex:      c.ToHexColorString(),
		Number:   c.ToHexNumberString(),
		RGB:      c.ToRgbColorString(),
		Channels: Channels{R: c.R(), G: c.G(), B: c.B(), A: c.A()},
	}
	if name, ok := namedcolors.NameOf(color.RGBA(c.NRGBA())); ok {
		result.Name = name
	}
	return result
}

// SampleCSSColor reads the pixel at (x, y). Coordinates are 0-based from the
// top-left corner and must lie inside the image bounds.
//
// The pixel is un-premultiplied, so a half-transparent red reads as
// #FF000080 rather than #80000080.
func SampleCSSColor(img image.Image, x, y int) (*CSSColor, error) {
	if !(image.Point{X: x, Y: y}).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	c := NewCSSColor(csscolor.FromColor(img.At(x, y)))
	return &c, nil
}

// Region is a rectangle with (X1, Y1) inclusive and (X2, Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// ColorFrequency is one entry of a dominant-color palette.
type ColorFrequency struct {
	Color      CSSColor `json:"color"`
	Percentage float64  `json:"percentage"` // share of pixels, 0-100
}

// DominantColorsResult lists colors most frequent first.
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"`
}

// DominantCSSColors returns up to count of the most common colors in img, or
// in region when it is non-nil.
//
// Each channel is quantized down to a multiple of 16 before counting so that
// near-identical shades fall into one bucket; #F0F0F0 and #FAFAFA both count
// as #F0F0F0. Alpha is ignored and every result is opaque. Ties are broken by
// hex value so the output is stable.
func DominantCSSColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	bounds := img.Bounds()
	if region != nil {
		r := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if r.Empty() || !r.In(bounds) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds", region.X1, region.Y1, region.X2, region.Y2)
		}
		bounds = r
	}

	counts := make(map[csscolor.Color]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := csscolor.FromColor(img.At(x, y))
			quantized, err := csscolor.New(255, float64(c.R()/16*16), float64(c.G()/16*16), float64(c.B()/16*16))
			if err != nil {
				return nil, err
			}
			counts[quantized]++
			total++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	for c, n := range counts {
		colors = append(colors, ColorFrequency{
			Color:      NewCSSColor(c),
			Percentage: float64(n) / float64(total) * 100,
		})
	}
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Percentage != colors[j].Percentage {
			return colors[i].Percentage > colors[j].Percentage
		}
		return colors[i].Color.Hex < colors[j].Color.Hex
	})
	if len(colors) > count {
		colors = colors[:count]
	}
	return &DominantColorsResult{Colors: colors}, nil
}
