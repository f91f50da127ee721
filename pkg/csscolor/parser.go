package csscolor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Mode selects the branch of light-dark().
type Mode uint8

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ParseMode resolves "light" or "dark", ignoring case.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return Light, true
	case "dark":
		return Dark, true
	}
	return Light, false
}

// Options adjust a single parse.
type Options struct {
	// Mode picks the light or dark argument of light-dark(). Default Light.
	Mode Mode
}

// Grammar parses one CSS color syntax. Parse returns an error when the input
// is not in that syntax or is malformed.
type Grammar interface {
	Name() string
	Parse(input string, opts Options) (Color, error)
}

// Resolver parses a complete color expression. Grammars that contain nested
// colors, such as color-mix(), take one so that nesting goes back through the
// full dispatcher.
type Resolver interface {
	Parse(input string, opts Options) (Color, error)
}

// Parser tries each grammar in a fixed order and returns the first success.
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	grammars []Grammar
	logger   *slog.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithLogger sets the logger that receives rejected-grammar diagnostics at
// debug level. Without it slog.Default() is used.
func WithLogger(l *slog.Logger) ParserOption {
	return func(p *Parser) {
		p.logger = l
	}
}

// NewParser returns a Parser with every supported grammar registered.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	p.grammars = []Grammar{
		ConstantParser{},
		HexParser{},
		RGBParser{},
		HSLParser{},
		HWBParser{},
		LightDarkParser{Colors: p},
		OklabParser{},
		OklchParser{},
		LabParser{},
		LCHParser{},
		ColorFuncParser{Colors: p},
		ColorMixParser{Colors: p},
	}
	return p
}

// Grammars returns the registered grammar names in the order they are tried.
func (p *Parser) Grammars() []string {
	names := make([]string, len(p.grammars))
	for i, g := range p.grammars {
		names[i] = g.Name()
	}
	return names
}

// Parse converts a CSS color expression to a Color. Surrounding whitespace is
// ignored. Any failure is reported as ErrInvalidColor; a grammar that
// accepts the input but computes an out-of-range channel additionally wraps
// ErrInvalidChannel.
func (p *Parser) Parse(input string, opts Options) (Color, error) {
	input = strings.TrimSpace(input)
	for _, g := range p.grammars {
		c, err := g.Parse(input, opts)
		if err == nil {
			return c, nil
		}
		if errors.Is(err, ErrInvalidChannel) {
			// A grammar matched but produced an impossible channel.
			return Color{}, fmt.Errorf("%s: %w: %w", g.Name(), ErrInvalidColor, err)
		}
		if !errors.Is(err, errNotApplicable) {
			p.log().Debug("grammar rejected color", "grammar", g.Name(), "input", input, "error", err)
		}
	}
	return Color{}, ErrInvalidColor
}

// log falls back to the process default so a Parser created before the
// logger is configured still follows it.
func (p *Parser) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return slog.Default()
}

var defaultParser = NewParser()

// Parse parses input with a shared default Parser.
func Parse(input string, opts Options) (Color, error) {
	return defaultParser.Parse(input, opts)
}

// MustParse is like Parse in light mode but panics on invalid input. It is
// meant for constants known to be valid.
func MustParse(input string) Color {
	c, err := Parse(input, Options{})
	if err != nil {
		panic("csscolor: " + input + ": " + err.Error())
	}
	return c
}
