package csscolor

import "errors"

// ErrInvalidColor is the only error Parser.Parse returns for input that no
// grammar accepts.
var ErrInvalidColor = errors.New("invalid or unsupported CSS color")

// ErrInvalidChannel is returned by New for a channel outside [0, 255] or not
// a whole number.
var ErrInvalidChannel = errors.New("invalid color channel")

// Causes reported by the individual grammars. The dispatcher logs them and
// moves on to the next grammar.
var (
	errNotApplicable = errors.New("not applicable")
	errSyntax        = errors.New("malformed syntax")
	errArgumentCount = errors.New("wrong number of arguments")
	errColorSpace    = errors.New("unknown color space")
	errHueMethod     = errors.New("invalid hue interpolation method")
	errFractions     = errors.New("mix percentages sum to zero")
)
