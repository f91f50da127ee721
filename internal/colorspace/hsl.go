package colorspace

import "math"

// Cylindrical transforms of gamma-encoded sRGB. Hues are in degrees,
// every other component is in [0, 1].

// normalizeHue wraps any hue, including negative and mixed hues, into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// sector distributes chroma c and the intermediate x over the six 60° hue
// sectors.
func sector(h, c, x float64) (float64, float64, float64) {
	switch {
	case h < 60:
		return c, x, 0
	case h < 120:
		return x, c, 0
	case h < 180:
		return 0, c, x
	case h < 240:
		return 0, x, c
	case h < 300:
		return x, 0, c
	default:
		return c, 0, x
	}
}

// HSLToRGB converts hue, saturation and lightness to sRGB.
func HSLToRGB(h, s, l float64) (float64, float64, float64) {
	h = normalizeHue(h)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	r, g, b := sector(h, c, x)
	m := l - c/2
	return r + m, g + m, b + m
}

// HSVToRGB converts hue, saturation and value to sRGB.
func HSVToRGB(h, s, v float64) (float64, float64, float64) {
	h = normalizeHue(h)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	r, g, b := sector(h, c, x)
	m := v - c
	return r + m, g + m, b + m
}

// rgbHue returns the hue angle of an sRGB triple, or 0 when it is achromatic.
func rgbHue(r, g, b float64) float64 {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	d := max - min
	if d == 0 {
		return 0
	}
	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60
}

// RGBToHSL converts sRGB to hue, saturation and lightness. A negative
// saturation, which out-of-gamut input can produce, is folded back by
// rotating the hue half a turn.
func RGBToHSL(r, g, b float64) (float64, float64, float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	h := rgbHue(r, g, b)
	l := (max + min) / 2

	var s float64
	if max != min && l != 0 && l != 1 {
		s = (max - l) / math.Min(l, 1-l)
	}
	if s < 0 {
		h += 180
		s = math.Abs(s)
	}
	if h >= 360 {
		h -= 360
	}
	return h, s, l
}

// RGBToHSV converts sRGB to hue, saturation and value.
func RGBToHSV(r, g, b float64) (float64, float64, float64) {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	var s float64
	if max != 0 {
		s = (max - min) / max
	}
	return rgbHue(r, g, b), s, max
}

// HWBToHSV converts hue, whiteness and blackness to HSV.
func HWBToHSV(h, w, b float64) (float64, float64, float64) {
	if b >= 1 {
		return h, 0, 0
	}
	return h, 1 - w/(1-b), 1 - b
}

// HSVToHWB is the inverse of HWBToHSV.
func HSVToHWB(h, s, v float64) (float64, float64, float64) {
	return h, (1 - s) * v, 1 - v
}

// HWBToRGB converts hue, whiteness and blackness to sRGB. When whiteness and
// blackness sum past 1 both are reduced by half the excess first.
func HWBToRGB(h, w, b float64) (float64, float64, float64) {
	if overflow := w + b - 1; overflow > 0 {
		w -= overflow / 2
		b -= overflow / 2
	}
	return HSVToRGB(HWBToHSV(h, w, b))
}

// RGBToHWB converts sRGB to hue, whiteness and blackness.
func RGBToHWB(r, g, b float64) (float64, float64, float64) {
	h, _, _ := RGBToHSL(r, g, b)
	return h, math.Min(r, math.Min(g, b)), 1 - math.Max(r, math.Max(g, b))
}
