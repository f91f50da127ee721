// Package cssunit parses the numeric tokens found inside CSS color functions:
// plain numbers, percentages and angles.
//
// A number must lex as a single CSS number token: an optional sign, digits
// and at most one decimal point with digits after it. Exponents, units other
// than the ones requested, and empty strings are rejected.
package cssunit

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

var (
	// ErrInvalidUnit is returned when a token lacks the expected unit suffix.
	ErrInvalidUnit = errors.New("invalid CSS unit")

	// ErrInvalidNumber is returned when the numeric part of a token is malformed.
	ErrInvalidNumber = errors.New("invalid number")
)

// Unit identifies the unit attached to a parsed CSS number.
type Unit uint8

const (
	Percentage Unit = iota
	Degree
	Gradian
	Radian
	Turn
)

// String returns the CSS suffix of u.
func (u Unit) String() string {
	switch u {
	case Percentage:
		return "%"
	case Degree:
		return "deg"
	case Gradian:
		return "grad"
	case Radian:
		return "rad"
	case Turn:
		return "turn"
	default:
		return fmt.Sprintf("Unit(%d)", uint8(u))
	}
}

// IsAngle reports whether the unit is one of the angle units.
func (u Unit) IsAngle() bool {
	return u == Degree || u == Gradian || u == Radian || u == Turn
}

// Value is a number paired with the unit it was written in.
type Value struct {
	Number float64
	Unit   Unit
}

// angleSuffixes lists the angle units. "grad" must be tested before "rad"
// since every gradian token also ends in "rad".
var angleSuffixes = []struct {
	suffix string
	unit   Unit
}{
	{"deg", Degree},
	{"grad", Gradian},
	{"rad", Radian},
	{"turn", Turn},
}

// ParsePercentage parses a token such as "45%" or "-12.5%".
func ParsePercentage(s string) (Value, error) {
	number, ok := strings.CutSuffix(s, "%")
	if !ok {
		return Value{}, fmt.Errorf("%q: %w", s, ErrInvalidUnit)
	}
	v, err := ParseDecimal(number)
	if err != nil {
		return Value{}, err
	}
	return Value{Number: v, Unit: Percentage}, nil
}

// ParseAngle parses a token carrying one of the deg, grad, rad or turn units.
func ParseAngle(s string) (Value, error) {
	for _, a := range angleSuffixes {
		number, ok := strings.CutSuffix(s, a.suffix)
		if !ok {
			continue
		}
		v, err := ParseDecimal(number)
		if err != nil {
			return Value{}, err
		}
		return Value{Number: v, Unit: a.unit}, nil
	}
	return Value{}, fmt.Errorf("%q: %w", s, ErrInvalidUnit)
}

// ParseDecimal parses a unitless number.
func ParseDecimal(s string) (float64, error) {
	if !isNumberToken(s) {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	return v, nil
}

// isNumberToken reports whether s is exactly one CSS number token without an
// exponent.
func isNumberToken(s string) bool {
	l := css.NewLexer(parse.NewInputString(s))
	tt, data := l.Next()
	if tt != css.NumberToken || bytes.ContainsAny(data, "eE") {
		return false
	}
	next, _ := l.Next()
	return next == css.ErrorToken
}

// Degrees converts an angle to degrees. Values above 360 are reduced modulo
// 360; negative values are returned unchanged and left for the hue
// conversions to wrap.
func (v Value) Degrees() (float64, error) {
	var deg float64
	switch v.Unit {
	case Degree:
		deg = v.Number
	case Gradian:
		deg = v.Number * 0.9
	case Radian:
		deg = v.Number * 180 / math.Pi
	case Turn:
		deg = v.Number * 360
	default:
		return 0, fmt.Errorf("%s is not an angle: %w", v.Unit, ErrInvalidUnit)
	}
	if deg > 360 {
		deg = math.Mod(deg, 360)
	}
	return deg, nil
}

// ParseHue parses a hue argument. A bare number is taken as degrees.
func ParseHue(s string) (float64, error) {
	if _, err := ParseDecimal(s); err == nil {
		s += "deg"
	}
	v, err := ParseAngle(s)
	if err != nil {
		return 0, err
	}
	return v.Degrees()
}

// ParsePercentageValue parses a percentage whose '%' sign may be omitted and
// returns the number as written, so "40%" and "40" both yield 40.
func ParsePercentageValue(s string) (float64, error) {
	if !strings.HasSuffix(s, "%") {
		s += "%"
	}
	v, err := ParsePercentage(s)
	if err != nil {
		return 0, err
	}
	return v.Number, nil
}
