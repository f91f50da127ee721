package colorspace

import "fmt"

// HueMethod selects which arc between two hues color-mix() interpolates along.
type HueMethod uint8

const (
	Shorter HueMethod = iota
	Longer
	Increasing
	Decreasing
)

var hueMethodNames = map[string]HueMethod{
	"shorter":    Shorter,
	"longer":     Longer,
	"increasing": Increasing,
	"decreasing": Decreasing,
}

// LookupHueMethod resolves a lowercase hue interpolation keyword.
func LookupHueMethod(name string) (HueMethod, bool) {
	m, ok := hueMethodNames[name]
	return m, ok
}

// String returns the CSS keyword for m.
func (m HueMethod) String() string {
	switch m {
	case Shorter:
		return "shorter"
	case Longer:
		return "longer"
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return fmt.Sprintf("HueMethod(%d)", uint8(m))
	}
}

// RGBA is a gamma-encoded sRGB color with straight alpha, all in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Mix interpolates two colors in space s with weights f1 and f2, which the
// caller has already normalised. Components are premultiplied by alpha before
// interpolation; on polar spaces the hue is not premultiplied and is adjusted
// by method instead. The returned color is not clamped and its hue, if any,
// is not re-wrapped.
func Mix(s Space, method HueMethod, c1, c2 RGBA, f1, f2 float64) RGBA {
	alpha := c1.A*f1 + c2.A*f2

	x1, y1, z1 := FromSRGB(s, c1.R, c1.G, c1.B)
	x2, y2, z2 := FromSRGB(s, c2.R, c2.G, c2.B)

	if !s.IsPolar() {
		x := premultiply(x1, c1.A)*f1 + premultiply(x2, c2.A)*f2
		y := premultiply(y1, c1.A)*f1 + premultiply(y2, c2.A)*f2
		z := premultiply(z1, c1.A)*f1 + premultiply(z2, c2.A)*f2
		r, g, b := ToSRGB(s, unpremultiply(x, alpha), unpremultiply(y, alpha), unpremultiply(z, alpha))
		return RGBA{R: r, G: g, B: b, A: alpha}
	}

	// Polar: x is the hue.
	y := premultiply(y1, c1.A)*f1 + premultiply(y2, c2.A)*f2
	z := premultiply(z1, c1.A)*f1 + premultiply(z2, c2.A)*f2
	h1, h2 := AdjustHues(method, x1, x2)
	r, g, b := ToSRGB(s, h1*f1+h2*f2, unpremultiply(y, alpha), unpremultiply(z, alpha))
	return RGBA{R: r, G: g, B: b, A: alpha}
}

// AdjustHues shifts one of the two hues by 360° so that a plain weighted
// average travels along the arc the method asks for.
func AdjustHues(method HueMethod, h1, h2 float64) (float64, float64) {
	d := h2 - h1
	switch method {
	case Shorter:
		if d > 180 {
			h1 += 360
		} else if d < -180 {
			h2 += 360
		}
	case Longer:
		if d > 0 && d < 180 {
			h1 += 360
		} else if d > -180 && d <= 0 {
			h2 += 360
		}
	case Increasing:
		if h2 < h1 {
			h2 += 360
		}
	case Decreasing:
		if h1 < h2 {
			h1 += 360
		}
	}
	return h1, h2
}

func premultiply(c, alpha float64) float64 {
	return c * alpha
}

// unpremultiply leaves the value alone when alpha is zero; the premultiplied
// value is then already zero.
func unpremultiply(c, alpha float64) float64 {
	if alpha == 0 {
		return c
	}
	return c / alpha
}
