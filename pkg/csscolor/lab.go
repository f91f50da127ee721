package csscolor

import (
	"fmt"
	"strings"

	"github.com/ironsheep/css-color-tools/internal/colorspace"
	"github.com/ironsheep/css-color-tools/internal/cssunit"
)

// labFamily describes one of oklab(), oklch(), lab() and lch(). All four share
// the "c1 c2 c3 [/ alpha]" argument list with space separators only.
type labFamily struct {
	name  string
	space colorspace.Space
	// components maps the three arguments to coordinates in space, in the
	// order colorspace.ToSRGB expects.
	components func(args []string) (c1, c2, c3 float64, err error)
}

func (f labFamily) parse(input string) (Color, error) {
	call, err := parseCall(strings.ToLower(input), f.name)
	if err != nil {
		return Color{}, err
	}
	args, err := call.words()
	if err != nil {
		return Color{}, fmt.Errorf("%s(): %w", f.name, err)
	}
	if len(args) != 3 {
		return Color{}, fmt.Errorf("%s(): %d arguments: %w", f.name, len(args), errArgumentCount)
	}
	for i := range args {
		args[i] = noneAsZero(args[i])
	}

	c1, c2, c3, err := f.components(args)
	if err != nil {
		return Color{}, fmt.Errorf("%s(): %w", f.name, err)
	}
	alpha := 255.0
	if call.hasAlpha {
		if alpha, err = parseAlpha(call.alphaText()); err != nil {
			return Color{}, fmt.Errorf("%s(): %w", f.name, err)
		}
	}
	r, g, b := colorspace.ToSRGB(f.space, c1, c2, c3)
	return fromComputed(alpha, r, g, b)
}

// OklabParser accepts oklab(L a b [/ alpha]). L is a number or percentage
// clamped to [0, 1]; a and b are numbers or percentages where ±100% is ±0.4.
type OklabParser struct{}

// Name implements Grammar.
func (OklabParser) Name() string { return "oklab" }

// Parse implements Grammar.
func (OklabParser) Parse(input string, _ Options) (Color, error) {
	return labFamily{name: "oklab", space: colorspace.Oklab, components: oklabComponents}.parse(input)
}

func oklabComponents(args []string) (l, a, b float64, err error) {
	if l, err = parseNumberOrPercentage(args[0], 1); err != nil {
		return 0, 0, 0, err
	}
	if a, err = parseOklabAxis(args[1]); err != nil {
		return 0, 0, 0, err
	}
	if b, err = parseOklabAxis(args[2]); err != nil {
		return 0, 0, 0, err
	}
	return clamp(l, 0, 1), a, b, nil
}

// parseOklabAxis maps a percentage onto [-0.4, 0.4] with 0% at -0.4.
func parseOklabAxis(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		v, err := cssunit.ParsePercentage(s)
		if err != nil {
			return 0, err
		}
		return v.Number/100*0.8 - 0.4, nil
	}
	return cssunit.ParseDecimal(s)
}

// OklchParser accepts oklch(L C H [/ alpha]). 100% chroma is 0.4.
type OklchParser struct{}

// Name implements Grammar.
func (OklchParser) Name() string { return "oklch" }

// Parse implements Grammar.
func (OklchParser) Parse(input string, _ Options) (Color, error) {
	return labFamily{name: "oklch", space: colorspace.Oklch, components: func(args []string) (float64, float64, float64, error) {
		return polarComponents(args, 1, 0.4)
	}}.parse(input)
}

// LabParser accepts lab(L a b [/ alpha]). L is clamped to [0, 100]; 100% on
// the a and b axes is 125.
type LabParser struct{}

// Name implements Grammar.
func (LabParser) Name() string { return "lab" }

// Parse implements Grammar.
func (LabParser) Parse(input string, _ Options) (Color, error) {
	return labFamily{name: "lab", space: colorspace.Lab, components: labComponents}.parse(input)
}

func labComponents(args []string) (l, a, b float64, err error) {
	if l, err = parseNumberOrPercentage(args[0], 100); err != nil {
		return 0, 0, 0, err
	}
	if a, err = parseNumberOrPercentage(args[1], 125); err != nil {
		return 0, 0, 0, err
	}
	if b, err = parseNumberOrPercentage(args[2], 125); err != nil {
		return 0, 0, 0, err
	}
	return clamp(l, 0, 100), a, b, nil
}

// LCHParser accepts lch(L C H [/ alpha]). 100% chroma is 150.
type LCHParser struct{}

// Name implements Grammar.
func (LCHParser) Name() string { return "lch" }

// Parse implements Grammar.
func (LCHParser) Parse(input string, _ Options) (Color, error) {
	return labFamily{name: "lch", space: colorspace.LCH, components: func(args []string) (float64, float64, float64, error) {
		return polarComponents(args, 100, 150)
	}}.parse(input)
}

// polarComponents reads "L C H" and returns (H, L, C), the order the polar
// spaces use. Lightness is clamped to [0, maxL] and chroma below zero is
// raised to zero.
func polarComponents(args []string, maxL, fullChroma float64) (h, l, c float64, err error) {
	if l, err = parseNumberOrPercentage(args[0], maxL); err != nil {
		return 0, 0, 0, err
	}
	if c, err = parseNumberOrPercentage(args[1], fullChroma); err != nil {
		return 0, 0, 0, err
	}
	if h, err = cssunit.ParseHue(args[2]); err != nil {
		return 0, 0, 0, fmt.Errorf("hue: %w", err)
	}
	return h, clamp(l, 0, maxL), max(c, 0), nil
}
