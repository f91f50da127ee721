package server

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/css-color-tools/internal/colorspace"
	"github.com/ironsheep/css-color-tools/internal/namedcolors"
	"github.com/ironsheep/css-color-tools/pkg/csscolor"
)

// Description is the css_color_describe result. Coordinates ignore alpha.
type Description struct {
	ParseResult
	HSL     [3]float64   `json:"hsl"`   // hue degrees, saturation and lightness in [0, 1]
	HSV     [3]float64   `json:"hsv"`   // hue degrees, saturation and value in [0, 1]
	Lab     [3]float64   `json:"lab"`   // CIE L*a*b*, D65
	Luv     [3]float64   `json:"luv"`   // CIE L*u*v*, D65
	Nearest []NamedMatch `json:"nearest"`
}

// NamedMatch is a CSS named color and its CIEDE2000 distance from the
// described color. A distance of 0 is an exact match.
type NamedMatch struct {
	Name     string  `json:"name"`
	Hex      string  `json:"hex"`
	Distance float64 `json:"distance"`
}

func describe(input string, c csscolor.Color, nearest int) Description {
	cf := c.Colorful()
	h, s, l := cf.Hsl()
	hv, sv, v := cf.Hsv()
	lab1, lab2, lab3 := cf.Lab()
	luv1, luv2, luv3 := cf.Luv()
	return Description{
		ParseResult: newParseResult(input, c),
		HSL:         round3(h, s, l),
		HSV:         round3(hv, sv, v),
		Lab:         round3(lab1, lab2, lab3),
		Luv:         round3(luv1, luv2, luv3),
		Nearest:     nearestNames(cf, nearest),
	}
}

// nearestNames ranks the opaque named colors by perceptual distance from
// target and returns the first n. Ties keep alphabetical order.
func nearestNames(target colorful.Color, n int) []NamedMatch {
	var matches []NamedMatch
	for _, name := range namedcolors.Names() {
		rgba, _ := namedcolors.Lookup(name)
		if rgba.A != 0xFF {
			continue
		}
		ref, _ := colorful.MakeColor(rgba)
		matches = append(matches, NamedMatch{
			Name:     name,
			Hex:      csscolor.FromNRGBA(color.NRGBA(rgba)).ToHexColorString(),
			Distance: colorspace.Round(target.DistanceCIEDE2000(ref), 4),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if n < len(matches) {
		matches = matches[:max(n, 0)]
	}
	return matches
}

func round3(a, b, c float64) [3]float64 {
	return [3]float64{colorspace.Round(a, 3), colorspace.Round(b, 3), colorspace.Round(c, 3)}
}
