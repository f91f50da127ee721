package csscolor

import (
	"fmt"
	"strconv"
)

// HexParser accepts #RGB, #RGBA, #RRGGBB and #RRGGBBAA.
type HexParser struct{}

// Name implements Grammar.
func (HexParser) Name() string { return "hex" }

// Parse implements Grammar.
func (HexParser) Parse(input string, _ Options) (Color, error) {
	if len(input) == 0 || input[0] != '#' {
		return Color{}, errNotApplicable
	}
	digits := input[1:]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return Color{}, fmt.Errorf("%q is not a hex digit: %w", digits[i], errSyntax)
		}
	}

	var channels [4]string
	switch len(digits) {
	case 3, 4:
		for i := range digits {
			channels[i] = string([]byte{digits[i], digits[i]})
		}
	case 6, 8:
		for i := 0; i < len(digits); i += 2 {
			channels[i/2] = digits[i : i+2]
		}
	default:
		return Color{}, fmt.Errorf("%d hex digits: %w", len(digits), errSyntax)
	}
	if channels[3] == "" {
		channels[3] = "ff"
	}

	var v [4]float64
	for i, ch := range channels {
		n, err := strconv.ParseUint(ch, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %v", errSyntax, err)
		}
		v[i] = float64(n)
	}
	return New(v[3], v[0], v[1], v[2])
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
