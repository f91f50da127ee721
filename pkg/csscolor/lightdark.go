package csscolor

import (
	"fmt"
	"strings"
)

// LightDarkParser accepts light-dark(<light>, <dark>). Only the argument
// selected by Options.Mode is parsed, so the other one need not be valid.
// The selected argument is parsed with the mode reset to Light.
type LightDarkParser struct {
	Colors Resolver
}

// Name implements Grammar.
func (LightDarkParser) Name() string { return "light-dark" }

// Parse implements Grammar.
func (p LightDarkParser) Parse(input string, opts Options) (Color, error) {
	call, err := parseCall(strings.ToLower(input), "light-dark")
	if err != nil {
		return Color{}, err
	}
	if p.Colors == nil {
		return Color{}, fmt.Errorf("light-dark(): no color resolver: %w", errSyntax)
	}
	if call.hasAlpha {
		return Color{}, fmt.Errorf("light-dark(): unexpected '/': %w", errSyntax)
	}
	args := call.params()
	if len(args) != 2 {
		return Color{}, fmt.Errorf("light-dark(): %d arguments: %w", len(args), errArgumentCount)
	}

	selected := args[0]
	if opts.Mode == Dark {
		selected = args[1]
	}
	opts.Mode = Light
	c, err := p.Colors.Parse(selected, opts)
	if err != nil {
		return Color{}, fmt.Errorf("light-dark(): %q: %w", selected, err)
	}
	return c, nil
}
