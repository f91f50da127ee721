package colorspace

import "math"

// Transfer functions. The Lin* functions decode gamma-encoded channels to
// linear light, the Gam* functions encode linear light. Negative inputs are
// mirrored so out-of-gamut values survive a round trip.

// LinSRGB decodes gamma-encoded sRGB channels to linear light.
func LinSRGB(r, g, b float64) (float64, float64, float64) {
	f := func(val float64) float64 {
		abs := math.Abs(val)
		if abs <= 0.04045 {
			return val / 12.92
		}
		return math.Copysign(math.Pow((abs+0.055)/1.055, 2.4), val)
	}
	return f(r), f(g), f(b)
}

// GamSRGB encodes linear-light channels with the sRGB transfer curve.
func GamSRGB(r, g, b float64) (float64, float64, float64) {
	f := func(val float64) float64 {
		abs := math.Abs(val)
		if abs <= 0.0031308 {
			return 12.92 * val
		}
		return math.Copysign(1.055*math.Pow(abs, 1/2.4)-0.055, val)
	}
	return f(r), f(g), f(b)
}

// LinP3 decodes Display P3 channels, which share the sRGB transfer curve.
func LinP3(r, g, b float64) (float64, float64, float64) {
	return LinSRGB(r, g, b)
}

// GamP3 encodes linear light as Display P3.
func GamP3(r, g, b float64) (float64, float64, float64) {
	return GamSRGB(r, g, b)
}

// LinA98 decodes Adobe RGB (1998) channels, a pure 563/256 power curve.
func LinA98(r, g, b float64) (float64, float64, float64) {
	f := func(val float64) float64 {
		return math.Copysign(math.Pow(math.Abs(val), 563.0/256), val)
	}
	return f(r), f(g), f(b)
}

// GamA98 encodes linear light as Adobe RGB (1998).
func GamA98(r, g, b float64) (float64, float64, float64) {
	f := func(val float64) float64 {
		return math.Copysign(math.Pow(math.Abs(val), 256.0/563), val)
	}
	return f(r), f(g), f(b)
}

// LinProPhoto decodes ProPhoto RGB channels. The curve is linear below 16/512.
func LinProPhoto(r, g, b float64) (float64, float64, float64) {
	f := func(val float64) float64 {
		const Et2 = 16.0 / 512
		abs := math.Abs(val)
		if abs <= Et2 {
			return val / 16
		}
		return math.Copysign(math.Pow(abs, 1.8), val)
	}
	return f(r), f(g), f(b)
}

// GamProPhoto encodes linear light as ProPhoto RGB.
func GamProPhoto(r, g, b float64) (float64, float64, float64) {
	f := func(val float64) float64 {
		const Et = 1.0 / 512
		abs := math.Abs(val)
		if abs < Et {
			return 16 * val
		}
		return math.Copysign(math.Pow(abs, 1/1.8), val)
	}
	return f(r), f(g), f(b)
}

const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

// LinRec2020 decodes ITU-R BT.2020 channels.
func LinRec2020(r, g, b float64) (float64, float64, float64) {
	f := func(val float64) float64 {
		abs := math.Abs(val)
		if abs < rec2020Beta*4.5 {
			return val / 4.5
		}
		return math.Copysign(math.Pow((abs+rec2020Alpha-1)/rec2020Alpha, 1/0.45), val)
	}
	return f(r), f(g), f(b)
}

// GamRec2020 encodes linear light as ITU-R BT.2020.
func GamRec2020(r, g, b float64) (float64, float64, float64) {
	f := func(val float64) float64 {
		abs := math.Abs(val)
		if abs <= rec2020Beta {
			return 4.5 * val
		}
		return math.Copysign(rec2020Alpha*math.Pow(abs, 0.45)-(rec2020Alpha-1), val)
	}
	return f(r), f(g), f(b)
}
