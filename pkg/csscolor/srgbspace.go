package csscolor

import (
	"fmt"
	"math"
	"strings"

	"github.com/ironsheep/css-color-tools/internal/colorspace"
	"github.com/ironsheep/css-color-tools/internal/cssunit"
)

// channelFunc turns the three color arguments of rgb(), hsl() or hwb() into
// integer sRGB channels. "none" has already been replaced by "0".
type channelFunc func(args []string) (r, g, b float64, err error)

// parseSRGBSpace implements the argument grammar shared by rgb(), hsl() and
// hwb() and their "a" aliases. Both the modern "c1 c2 c3 / alpha" form and
// the legacy "c1, c2, c3[, alpha]" form are accepted, as is a hybrid where
// commas are mixed with a slash alpha, e.g. "rgba(123, 45, 67 / 0.5)".
func parseSRGBSpace(input, name string, convert channelFunc) (Color, error) {
	call, err := parseCall(strings.ToLower(input), name, name+"a")
	if err != nil {
		return Color{}, err
	}

	var args []string
	var commaAlpha string
	hasCommaAlpha := false

	if call.hasCommas() {
		params := call.params()
		// The comma after the first argument may be missing:
		// "rgb(100 200, 255)" reads as three arguments.
		if first := call.groups[0]; !call.hasAlpha && len(first) > 1 {
			params = append([]string{first[0], strings.Join(first[1:], " ")}, params[1:]...)
		}
		if len(params) < 3 || len(params) > 4 || (call.hasAlpha && len(params) == 4) {
			return Color{}, fmt.Errorf("%s(): %d arguments: %w", name, len(params), errArgumentCount)
		}
		args = params[:3]
		if len(params) == 4 {
			commaAlpha, hasCommaAlpha = params[3], true
		}
	} else {
		args = call.groups[0]
		if len(args) != 3 {
			return Color{}, fmt.Errorf("%s(): %d arguments: %w", name, len(args), errArgumentCount)
		}
	}

	for i := range args {
		args[i] = noneAsZero(args[i])
	}
	r, g, b, err := convert(args)
	if err != nil {
		return Color{}, fmt.Errorf("%s(): %w", name, err)
	}

	alpha := 255.0
	switch {
	case call.hasAlpha:
		alpha, err = parseAlpha(call.alphaText())
	case hasCommaAlpha:
		alpha, err = parseAlpha(commaAlpha)
	}
	if err != nil {
		return Color{}, fmt.Errorf("%s(): %w", name, err)
	}
	return New(alpha, r, g, b)
}

// RGBParser accepts rgb() and rgba(). Channels are numbers in [0, 255] or
// percentages; out-of-range values are clamped and rounded up.
type RGBParser struct{}

// Name implements Grammar.
func (RGBParser) Name() string { return "rgb" }

// Parse implements Grammar.
func (RGBParser) Parse(input string, _ Options) (Color, error) {
	return parseSRGBSpace(input, "rgb", rgbChannels)
}

func rgbChannels(args []string) (r, g, b float64, err error) {
	var v [3]float64
	for i, arg := range args {
		n, err := parseNumberOrPercentage(arg, 255)
		if err != nil {
			return 0, 0, 0, err
		}
		v[i] = math.Ceil(clamp(n, 0, 255))
	}
	return v[0], v[1], v[2], nil
}

// HSLParser accepts hsl() and hsla(). The hue may carry any angle unit and
// defaults to degrees; saturation and lightness are percentages whose '%'
// may be omitted.
type HSLParser struct{}

// Name implements Grammar.
func (HSLParser) Name() string { return "hsl" }

// Parse implements Grammar.
func (HSLParser) Parse(input string, _ Options) (Color, error) {
	return parseSRGBSpace(input, "hsl", hslChannels)
}

func hslChannels(args []string) (r, g, b float64, err error) {
	h, c1, c2, err := parseHueTriple(args)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = colorspace.HSLToRGB(h, c1, c2)
	return quantize(r), quantize(g), quantize(b), nil
}

// HWBParser accepts hwb() and hwba().
type HWBParser struct{}

// Name implements Grammar.
func (HWBParser) Name() string { return "hwb" }

// Parse implements Grammar.
func (HWBParser) Parse(input string, _ Options) (Color, error) {
	return parseSRGBSpace(input, "hwb", hwbChannels)
}

func hwbChannels(args []string) (r, g, b float64, err error) {
	h, w, bl, err := parseHueTriple(args)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = colorspace.HWBToRGB(h, w, bl)
	return quantize(r), quantize(g), quantize(b), nil
}

// parseHueTriple reads "hue pct pct", returning the percentages as fractions
// clamped to [0, 1].
func parseHueTriple(args []string) (h, c1, c2 float64, err error) {
	if h, err = cssunit.ParseHue(args[0]); err != nil {
		return 0, 0, 0, fmt.Errorf("hue: %w", err)
	}
	if c1, err = cssunit.ParsePercentageValue(args[1]); err != nil {
		return 0, 0, 0, err
	}
	if c2, err = cssunit.ParsePercentageValue(args[2]); err != nil {
		return 0, 0, 0, err
	}
	return h, clamp(c1/100, 0, 1), clamp(c2/100, 0, 1), nil
}
