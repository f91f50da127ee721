package csscolor

import (
	"fmt"
	"math"
	"strings"

	"github.com/ironsheep/css-color-tools/internal/colorspace"
	"github.com/ironsheep/css-color-tools/internal/cssunit"
)

// ColorMixParser accepts
//
//	color-mix(in <space> [<method> hue], <color> [<pct>], <color> [<pct>])
//
// The two colors are parsed through Colors, so they may be any supported
// expression including another color-mix().
type ColorMixParser struct {
	Colors Resolver
}

// Name implements Grammar.
func (ColorMixParser) Name() string { return "color-mix" }

// mixStop is one color argument with its optional percentage.
type mixStop struct {
	color       Color
	fraction    float64
	hasFraction bool
}

// Parse implements Grammar.
func (p ColorMixParser) Parse(input string, opts Options) (Color, error) {
	call, err := parseCall(strings.ToLower(input), "color-mix")
	if err != nil {
		return Color{}, err
	}
	if p.Colors == nil {
		return Color{}, fmt.Errorf("color-mix(): no color resolver: %w", errSyntax)
	}
	if call.hasAlpha {
		return Color{}, fmt.Errorf("color-mix(): unexpected '/': %w", errSyntax)
	}
	args := call.groups
	if len(args) != 3 {
		return Color{}, fmt.Errorf("color-mix(): %d arguments: %w", len(args), errArgumentCount)
	}

	space, method, err := parseInterpolation(args[0])
	if err != nil {
		return Color{}, err
	}
	s1, err := p.parseStop(args[1], opts)
	if err != nil {
		return Color{}, err
	}
	s2, err := p.parseStop(args[2], opts)
	if err != nil {
		return Color{}, err
	}
	f1, f2, err := mixFractions(s1, s2)
	if err != nil {
		return Color{}, err
	}

	mixed := colorspace.Mix(space, method, s1.color.rgba(), s2.color.rgba(), f1, f2)
	return fromComputed(mixedAlpha(mixed.A), mixed.R, mixed.G, mixed.B)
}

// parseInterpolation reads "in <space> [<method> hue]". A hue method is only
// allowed on polar spaces and defaults to shorter.
func parseInterpolation(words []string) (colorspace.Space, colorspace.HueMethod, error) {
	clause := strings.Join(words, " ")
	if len(words) < 2 || words[0] != "in" {
		return 0, 0, fmt.Errorf("color-mix(): interpolation %q: %w", clause, errSyntax)
	}
	space, ok := colorspace.LookupSpace(words[1])
	if !ok {
		return 0, 0, fmt.Errorf("color-mix(): %q: %w", words[1], errColorSpace)
	}

	switch len(words) {
	case 2:
		return space, colorspace.Shorter, nil
	case 4:
		if !space.IsPolar() {
			return 0, 0, fmt.Errorf("color-mix(): %s is not polar: %w", space, errHueMethod)
		}
		if words[3] != "hue" {
			return 0, 0, fmt.Errorf("color-mix(): expected \"hue\", got %q: %w", words[3], errSyntax)
		}
		method, ok := colorspace.LookupHueMethod(words[2])
		if !ok {
			return 0, 0, fmt.Errorf("color-mix(): %q: %w", words[2], errHueMethod)
		}
		return space, method, nil
	default:
		if !space.IsPolar() {
			return 0, 0, fmt.Errorf("color-mix(): %s is not polar: %w", space, errHueMethod)
		}
		return 0, 0, fmt.Errorf("color-mix(): interpolation %q: %w", clause, errSyntax)
	}
}

// parseStop reads "<color> [<pct>]". The percentage may also come first.
func (p ColorMixParser) parseStop(tokens []string, opts Options) (mixStop, error) {
	var stop mixStop
	switch len(tokens) {
	case 1:
	case 2:
		pct := tokens[1]
		if strings.HasSuffix(tokens[0], "%") {
			pct, tokens[0] = tokens[0], tokens[1]
		}
		v, err := cssunit.ParsePercentage(pct)
		if err != nil {
			return mixStop{}, fmt.Errorf("color-mix(): percentage: %w", err)
		}
		stop.fraction, stop.hasFraction = clamp(v.Number/100, 0, 1), true
	default:
		return mixStop{}, fmt.Errorf("color-mix(): color argument %q: %w", strings.Join(tokens, " "), errSyntax)
	}

	c, err := p.Colors.Parse(tokens[0], opts)
	if err != nil {
		return mixStop{}, fmt.Errorf("color-mix(): %q: %w", tokens[0], err)
	}
	stop.color = c
	return stop, nil
}

// mixFractions normalises the two weights: both default to 0.5, a single
// given weight leaves the remainder to the other, and two given weights are
// scaled to sum to 1.
func mixFractions(s1, s2 mixStop) (float64, float64, error) {
	switch {
	case !s1.hasFraction && !s2.hasFraction:
		return 0.5, 0.5, nil
	case s1.hasFraction && s2.hasFraction:
		sum := s1.fraction + s2.fraction
		if sum == 0 {
			return 0, 0, fmt.Errorf("color-mix(): %w", errFractions)
		}
		return s1.fraction / sum, s2.fraction / sum, nil
	case s1.hasFraction:
		return s1.fraction, 1 - s1.fraction, nil
	default:
		return 1 - s2.fraction, s2.fraction, nil
	}
}

// mixedAlpha truncates the interpolated alpha to a channel value. The small
// bias keeps results such as 0.99999999 from dropping a whole step.
func mixedAlpha(a float64) float64 {
	return math.Floor(clamp(a, 0, 1)*255 + 1e-6)
}
