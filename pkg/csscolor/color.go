package csscolor

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/css-color-tools/internal/colorspace"
)

// Color is an sRGB color with straight (non-premultiplied) alpha. Every
// channel is an integer in [0, 255]. The zero value is transparent black.
type Color struct {
	a, r, g, b uint8
}

// New builds a Color from channel values in [0, 255]. Values that are NaN,
// infinite, negative, above 255 or not whole numbers are rejected.
func New(a, r, g, b float64) (Color, error) {
	channels := [4]struct {
		name  string
		value float64
	}{{"A", a}, {"R", r}, {"G", g}, {"B", b}}

	for _, ch := range channels {
		if err := validateChannel(ch.name, ch.value); err != nil {
			return Color{}, err
		}
	}
	return Color{a: uint8(a), r: uint8(r), g: uint8(g), b: uint8(b)}, nil
}

func validateChannel(name string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("%s channel %v: %w", name, v, ErrInvalidChannel)
	case v < 0:
		return fmt.Errorf("%s channel %v is negative: %w", name, v, ErrInvalidChannel)
	case v > 255:
		return fmt.Errorf("%s channel %v exceeds 255: %w", name, v, ErrInvalidChannel)
	case v != math.Trunc(v):
		return fmt.Errorf("%s channel %v is not an integer: %w", name, v, ErrInvalidChannel)
	}
	return nil
}

// FromNRGBA converts a standard library color with straight alpha.
func FromNRGBA(c color.NRGBA) Color {
	return Color{a: c.A, r: c.R, g: c.G, b: c.B}
}

// FromColor converts any color.Color, undoing its alpha premultiplication.
func FromColor(c color.Color) Color {
	return FromNRGBA(color.NRGBAModel.Convert(c).(color.NRGBA))
}

func (c Color) A() uint8 { return c.a }
func (c Color) R() uint8 { return c.r }
func (c Color) G() uint8 { return c.g }
func (c Color) B() uint8 { return c.b }

// ToHexNumberString formats the color as "0xAARRGGBB" with uppercase digits.
func (c Color) ToHexNumberString() string {
	return fmt.Sprintf("0x%02X%02X%02X%02X", c.a, c.r, c.g, c.b)
}

// ToHexColorString formats the color as "#RRGGBBAA" with uppercase digits.
func (c Color) ToHexColorString() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.r, c.g, c.b, c.a)
}

// ToRgbColorString formats the color as "rgb(R G B / a)" where a is the
// alpha in [0, 1] rounded to three decimals.
func (c Color) ToRgbColorString() string {
	alpha := colorspace.Round(float64(c.a)/255, 3)
	return fmt.Sprintf("rgb(%d %d %d / %s)", c.r, c.g, c.b, strconv.FormatFloat(alpha, 'f', -1, 64))
}

// ToNumber packs the color as A<<24 | R<<16 | G<<8 | B.
func (c Color) ToNumber() uint32 {
	return uint32(c.a)<<24 | uint32(c.r)<<16 | uint32(c.g)<<8 | uint32(c.b)
}

// String returns the "#RRGGBBAA" form.
func (c Color) String() string {
	return c.ToHexColorString()
}

// NRGBA returns the color as a standard library straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: c.a}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Colorful returns the RGB part of the color as a go-colorful value, which
// offers further color models. Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
	}
}

// rgba converts to the float form the conversion engine works in.
func (c Color) rgba() colorspace.RGBA {
	return colorspace.RGBA{
		R: float64(c.r) / 255,
		G: float64(c.g) / 255,
		B: float64(c.b) / 255,
		A: float64(c.a) / 255,
	}
}
