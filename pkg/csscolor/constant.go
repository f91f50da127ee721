package csscolor

import (
	"image/color"
	"strings"

	"github.com/ironsheep/css-color-tools/internal/namedcolors"
)

// ConstantParser accepts the CSS named colors, in any letter case.
type ConstantParser struct{}

// Name implements Grammar.
func (ConstantParser) Name() string { return "named" }

// Parse implements Grammar.
func (ConstantParser) Parse(input string, _ Options) (Color, error) {
	c, ok := namedcolors.Lookup(strings.ToLower(input))
	if !ok {
		return Color{}, errNotApplicable
	}
	return FromNRGBA(color.NRGBA(c)), nil
}
