package colorspace

import "math"

// D50 reference white, normalised so Y = 1.
const (
	d50X = 0.3457 / 0.3585
	d50Z = (1.0 - 0.3457 - 0.3585) / 0.3585
)

const (
	labEpsilon = 216.0 / 24389
	labKappa   = 24389.0 / 27
)

// XYZD50ToLab converts D50-relative XYZ to CIE Lab.
func XYZD50ToLab(x, y, z float64) (float64, float64, float64) {
	f := func(v float64) float64 {
		if v > labEpsilon {
			return math.Cbrt(v)
		}
		return (labKappa*v + 16) / 116
	}
	f0 := f(x / d50X)
	f1 := f(y)
	f2 := f(z / d50Z)
	return 116*f1 - 16, 500 * (f0 - f1), 200 * (f1 - f2)
}

// LabToXYZD50 converts CIE Lab to D50-relative XYZ.
func LabToXYZD50(l, a, b float64) (x, y, z float64) {
	f1 := (l + 16) / 116
	f0 := a/500 + f1
	f2 := f1 - b/200

	if f0*f0*f0 > labEpsilon {
		x = f0 * f0 * f0
	} else {
		x = (116*f0 - 16) / labKappa
	}
	if l > labKappa*labEpsilon {
		y = f1 * f1 * f1
	} else {
		y = l / labKappa
	}
	if f2*f2*f2 > labEpsilon {
		z = f2 * f2 * f2
	} else {
		z = (116*f2 - 16) / labKappa
	}
	return x * d50X, y, z * d50Z
}

// LabToLCH converts rectangular a/b coordinates to chroma and hue. The hue is
// in degrees within [0, 360).
func LabToLCH(l, a, b float64) (float64, float64, float64) {
	hue := math.Atan2(b, a) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	if hue >= 360 {
		hue -= 360
	}
	return l, math.Sqrt(a*a + b*b), hue
}

// LCHToLab is the inverse of LabToLCH.
func LCHToLab(l, c, h float64) (float64, float64, float64) {
	rad := h * math.Pi / 180
	return l, c * math.Cos(rad), c * math.Sin(rad)
}

var (
	xyzToLMS = [][]float64{
		{0.8190224379967030, 0.3619062600528904, -0.1288737815209879},
		{0.0329836539323885, 0.9292868615863434, 0.0361446663506424},
		{0.0481771893596242, 0.2642395317527308, 0.6335478284694309},
	}
	lmsToOklab = [][]float64{
		{0.2104542683093140, 0.7936177747023054, -0.0040720430116193},
		{1.9779985324311684, -2.4285922420485799, 0.4505937096174110},
		{0.0259040424655478, 0.7827717124575296, -0.8086757549230774},
	}
	oklabToLMS = [][]float64{
		{1.0, 0.3963377773761749, 0.2158037573099136},
		{1.0, -0.1055613458156586, -0.0638541728258133},
		{1.0, -0.0894841775298119, -1.2914855480194092},
	}
	lmsToXYZ = [][]float64{
		{1.2268798758459243, -0.5578149944602171, 0.2813910456659647},
		{-0.0405757452148008, 1.112286803280317, -0.0717110580655164},
		{-0.0763729366746601, -0.4214933324022432, 1.5869240198367816},
	}
)

// XYZToOklab converts D65 XYZ to Oklab through the LMS cone response.
func XYZToOklab(x, y, z float64) (float64, float64, float64) {
	l, m, s := transform(xyzToLMS, x, y, z)
	return transform(lmsToOklab, math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))
}

// OklabToXYZ converts Oklab to D65 XYZ.
func OklabToXYZ(l, a, b float64) (float64, float64, float64) {
	l, m, s := transform(oklabToLMS, l, a, b)
	return transform(lmsToXYZ, l*l*l, m*m*m, s*s*s)
}

// OklabToOklch converts Oklab to its polar form, hue in degrees.
func OklabToOklch(l, a, b float64) (float64, float64, float64) {
	return LabToLCH(l, a, b)
}

// OklchToOklab is the inverse of OklabToOklch.
func OklchToOklab(l, c, h float64) (float64, float64, float64) {
	return LCHToLab(l, c, h)
}
