package csscolor

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/ironsheep/css-color-tools/internal/cssunit"
)

// arguments is the top level of a color function's argument list. Commas
// split it into groups and whitespace splits each group into words. A nested
// function or parenthesised block stays one word carrying its source text.
type arguments struct {
	groups   [][]string // before any '/'; never empty
	alpha    []string   // words after the '/'
	hasAlpha bool
}

// parseCall lexes input as a call of one of names and splits its argument
// list. Input that does not start with one of those function tokens is
// errNotApplicable. The closing parenthesis must end the input. Input is
// expected to be lowercase already.
func parseCall(input string, names ...string) (arguments, error) {
	l := css.NewLexer(parse.NewInputString(input))
	tt, data := l.Next()
	if tt != css.FunctionToken || !slices.Contains(names, strings.TrimSuffix(string(data), "(")) {
		return arguments{}, errNotApplicable
	}

	var (
		args  arguments
		words []string
		word  strings.Builder
		depth int
	)
	endWord := func() {
		if word.Len() > 0 {
			words = append(words, word.String())
			word.Reset()
		}
	}
	endGroup := func() {
		endWord()
		args.groups = append(args.groups, words)
		words = nil
	}

	for {
		tt, data := l.Next()
		switch {
		case tt == css.ErrorToken:
			if err := l.Err(); err != io.EOF {
				return arguments{}, fmt.Errorf("%w: %v", errSyntax, err)
			}
			return arguments{}, fmt.Errorf("unbalanced parentheses: %w", errSyntax)
		case depth > 0:
			word.Write(data)
			switch tt {
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
			}
		case tt == css.FunctionToken, tt == css.LeftParenthesisToken:
			word.Write(data)
			depth++
		case tt == css.RightParenthesisToken:
			if next, _ := l.Next(); next != css.ErrorToken || l.Err() != io.EOF {
				return arguments{}, fmt.Errorf("text after ')': %w", errSyntax)
			}
			if args.hasAlpha {
				endWord()
				args.alpha = words
			} else {
				endGroup()
			}
			return args, nil
		case tt == css.WhitespaceToken, tt == css.CommentToken:
			endWord()
		case tt == css.CommaToken:
			if args.hasAlpha {
				return arguments{}, fmt.Errorf("',' after '/': %w", errSyntax)
			}
			endGroup()
		case tt == css.DelimToken && string(data) == "/":
			if args.hasAlpha {
				return arguments{}, fmt.Errorf("more than one '/': %w", errSyntax)
			}
			endGroup()
			args.hasAlpha = true
		default:
			// Adjacent tokens such as "1.5" ".5" stay one word and fail the
			// number checks later.
			word.Write(data)
		}
	}
}

// hasCommas reports whether the legacy comma syntax is in use.
func (a arguments) hasCommas() bool {
	return len(a.groups) > 1
}

// words returns the space-separated arguments before any '/'.
func (a arguments) words() ([]string, error) {
	if a.hasCommas() {
		return nil, fmt.Errorf("unexpected ',': %w", errSyntax)
	}
	return a.groups[0], nil
}

// params returns one string per comma group.
func (a arguments) params() []string {
	params := make([]string, len(a.groups))
	for i, g := range a.groups {
		params[i] = strings.Join(g, " ")
	}
	return params
}

// alphaText returns what follows the '/'.
func (a arguments) alphaText() string {
	return strings.Join(a.alpha, " ")
}

// noneAsZero maps the CSS "none" keyword to a literal zero.
func noneAsZero(s string) string {
	if s == "none" {
		return "0"
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// parseNumberOrPercentage reads a number, or a percentage scaled so that 100%
// equals full.
func parseNumberOrPercentage(s string, full float64) (float64, error) {
	s = noneAsZero(s)
	if strings.HasSuffix(s, "%") {
		v, err := cssunit.ParsePercentage(s)
		if err != nil {
			return 0, err
		}
		return v.Number / 100 * full, nil
	}
	return cssunit.ParseDecimal(s)
}

// parseAlpha reads an alpha value, either a number in [0, 1] or a percentage,
// and returns the channel value. Out-of-range input is clamped and the result
// is rounded up.
func parseAlpha(s string) (float64, error) {
	v, err := parseNumberOrPercentage(s, 1)
	if err != nil {
		return 0, fmt.Errorf("alpha: %w", err)
	}
	return math.Ceil(clamp(v*255, 0, 255)), nil
}

// quantize turns a computed channel in [0, 1] into an integer in [0, 255],
// clamping first and rounding half up.
func quantize(v float64) float64 {
	return math.Floor(clamp(v, 0, 1)*255 + 0.5)
}

// fromComputed builds a Color from computed sRGB channels in [0, 1] and an
// alpha channel that is already an integer in [0, 255].
func fromComputed(alpha, r, g, b float64) (Color, error) {
	return New(alpha, quantize(r), quantize(g), quantize(b))
}
