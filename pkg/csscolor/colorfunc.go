package csscolor

import (
	"fmt"
	"strings"

	"github.com/ironsheep/css-color-tools/internal/colorspace"
)

// colorFuncSpaces are the spaces color() accepts, with the channel keywords
// relative syntax exposes for each.
var colorFuncSpaces = map[string][3]string{
	"srgb":         {"r", "g", "b"},
	"srgb-linear":  {"r", "g", "b"},
	"display-p3":   {"r", "g", "b"},
	"a98-rgb":      {"r", "g", "b"},
	"prophoto-rgb": {"r", "g", "b"},
	"rec2020":      {"r", "g", "b"},
	"xyz":          {"x", "y", "z"},
	"xyz-d50":      {"x", "y", "z"},
	"xyz-d65":      {"x", "y", "z"},
}

// ColorFuncParser accepts color(<space> c1 c2 c3 [/ alpha]) and the relative
// form color(from <color> <space> c1 c2 c3 [/ alpha]). Components are
// numbers, percentages (100% is 1) or none. In the relative form a component
// may also name a channel of the origin color converted into <space>, or
// alpha; without an explicit alpha the origin's alpha is kept.
type ColorFuncParser struct {
	// Colors parses the origin color of the relative form.
	Colors Resolver
}

// Name implements Grammar.
func (ColorFuncParser) Name() string { return "color" }

// Parse implements Grammar.
func (p ColorFuncParser) Parse(input string, opts Options) (Color, error) {
	call, err := parseCall(strings.ToLower(input), "color")
	if err != nil {
		return Color{}, err
	}
	tokens, err := call.words()
	if err != nil {
		return Color{}, fmt.Errorf("color(): %w", err)
	}

	// Channel values available to relative syntax, keyed by keyword.
	var channels map[string]float64
	alpha := 255.0

	if len(tokens) > 0 && tokens[0] == "from" {
		if p.Colors == nil || len(tokens) != 6 {
			return Color{}, fmt.Errorf("color(from ...): %d arguments: %w", len(tokens), errArgumentCount)
		}
		origin, err := p.Colors.Parse(tokens[1], opts)
		if err != nil {
			return Color{}, fmt.Errorf("color(from ...): origin %q: %w", tokens[1], err)
		}
		names, ok := colorFuncSpaces[tokens[2]]
		if !ok {
			return Color{}, fmt.Errorf("color(): %q: %w", tokens[2], errColorSpace)
		}
		space, _ := colorspace.LookupSpace(tokens[2])
		o := origin.rgba()
		c1, c2, c3 := colorspace.FromSRGB(space, o.R, o.G, o.B)
		channels = map[string]float64{names[0]: c1, names[1]: c2, names[2]: c3, "alpha": o.A}
		alpha = float64(origin.A())
		tokens = tokens[2:]
	} else if len(tokens) != 4 {
		return Color{}, fmt.Errorf("color(): %d arguments: %w", len(tokens), errArgumentCount)
	}

	if _, ok := colorFuncSpaces[tokens[0]]; !ok {
		return Color{}, fmt.Errorf("color(): %q: %w", tokens[0], errColorSpace)
	}
	space, _ := colorspace.LookupSpace(tokens[0])

	var c [3]float64
	for i, tok := range tokens[1:] {
		if v, ok := channels[tok]; ok {
			c[i] = v
			continue
		}
		if c[i], err = parseNumberOrPercentage(tok, 1); err != nil {
			return Color{}, fmt.Errorf("color(): component %d: %w", i+1, err)
		}
	}

	if call.hasAlpha {
		alphaArg := call.alphaText()
		if v, ok := channels[alphaArg]; ok {
			alpha = quantize(v)
		} else if alpha, err = parseAlpha(alphaArg); err != nil {
			return Color{}, fmt.Errorf("color(): %w", err)
		}
	}

	r, g, b := colorspace.ToSRGB(space, c[0], c[1], c[2])
	return fromComputed(alpha, r, g, b)
}
