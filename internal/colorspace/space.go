// Package colorspace implements the color conversions behind CSS Color
// Level 4 and 5: transfer functions, RGB/XYZ matrices, Bradford adaptation,
// CIE Lab and LCH, Oklab and Oklch, and the HSL/HSV/HWB cylinders, plus the
// color-mix() interpolation built on top of them.
//
// Everything here is a pure function over float64 triples. Gamma-encoded
// sRGB channels are in [0, 1]; nothing is clamped, so callers decide how to
// bring out-of-gamut results back into range.
//
// Reference: https://drafts.csswg.org/css-color-4/#color-conversion-code
package colorspace

import "fmt"

// Space identifies a color space that CSS can name.
type Space uint8

const (
	SRGB Space = iota
	SRGBLinear
	DisplayP3
	A98RGB
	ProPhotoRGB
	Rec2020
	Lab
	Oklab
	XYZ
	XYZD50
	HSL
	HWB
	LCH
	Oklch
)

var spaceNames = map[string]Space{
	"srgb":         SRGB,
	"srgb-linear":  SRGBLinear,
	"display-p3":   DisplayP3,
	"a98-rgb":      A98RGB,
	"prophoto-rgb": ProPhotoRGB,
	"rec2020":      Rec2020,
	"lab":          Lab,
	"oklab":        Oklab,
	"xyz":          XYZ,
	"xyz-d65":      XYZ,
	"xyz-d50":      XYZD50,
	"hsl":          HSL,
	"hwb":          HWB,
	"lch":          LCH,
	"oklch":        Oklch,
}

// LookupSpace resolves a lowercase CSS color space keyword. "xyz" and
// "xyz-d65" name the same space.
func LookupSpace(name string) (Space, bool) {
	s, ok := spaceNames[name]
	return s, ok
}

// String returns the CSS keyword for s.
func (s Space) String() string {
	switch s {
	case SRGB:
		return "srgb"
	case SRGBLinear:
		return "srgb-linear"
	case DisplayP3:
		return "display-p3"
	case A98RGB:
		return "a98-rgb"
	case ProPhotoRGB:
		return "prophoto-rgb"
	case Rec2020:
		return "rec2020"
	case Lab:
		return "lab"
	case Oklab:
		return "oklab"
	case XYZ:
		return "xyz"
	case XYZD50:
		return "xyz-d50"
	case HSL:
		return "hsl"
	case HWB:
		return "hwb"
	case LCH:
		return "lch"
	case Oklch:
		return "oklch"
	default:
		return fmt.Sprintf("Space(%d)", uint8(s))
	}
}

// IsPolar reports whether the space has a hue axis.
func (s Space) IsPolar() bool {
	switch s {
	case HSL, HWB, LCH, Oklch:
		return true
	}
	return false
}

// FromSRGB converts gamma-encoded sRGB to coordinates in s. Polar spaces
// return the hue first: (H, S, L) for hsl, (H, W, B) for hwb and (H, L, C)
// for lch and oklch.
func FromSRGB(s Space, r, g, b float64) (float64, float64, float64) {
	switch s {
	case SRGB:
		return r, g, b
	case SRGBLinear:
		return LinSRGB(r, g, b)
	case DisplayP3:
		return GamP3(XYZToLinP3(srgbToXYZ(r, g, b)))
	case A98RGB:
		return GamA98(XYZToLinA98(srgbToXYZ(r, g, b)))
	case ProPhotoRGB:
		return GamProPhoto(XYZD50ToLinProPhoto(D65ToD50(srgbToXYZ(r, g, b))))
	case Rec2020:
		return GamRec2020(XYZToLinRec2020(srgbToXYZ(r, g, b)))
	case Lab:
		return XYZD50ToLab(D65ToD50(srgbToXYZ(r, g, b)))
	case Oklab:
		return XYZToOklab(srgbToXYZ(r, g, b))
	case XYZ:
		return srgbToXYZ(r, g, b)
	case XYZD50:
		return D65ToD50(srgbToXYZ(r, g, b))
	case HSL:
		return RGBToHSL(r, g, b)
	case HWB:
		return RGBToHWB(r, g, b)
	case LCH:
		l, c, h := LabToLCH(FromSRGB(Lab, r, g, b))
		return h, l, c
	case Oklch:
		l, c, h := OklabToOklch(FromSRGB(Oklab, r, g, b))
		return h, l, c
	}
	panic(fmt.Sprintf("colorspace: unknown space %d", s))
}

// ToSRGB converts coordinates in s back to gamma-encoded sRGB, with the same
// component order FromSRGB produces. The result is not clamped.
func ToSRGB(s Space, c1, c2, c3 float64) (float64, float64, float64) {
	switch s {
	case SRGB:
		return c1, c2, c3
	case SRGBLinear:
		return GamSRGB(c1, c2, c3)
	case DisplayP3:
		return xyzToSRGB(LinP3ToXYZ(LinP3(c1, c2, c3)))
	case A98RGB:
		return xyzToSRGB(LinA98ToXYZ(LinA98(c1, c2, c3)))
	case ProPhotoRGB:
		return xyzToSRGB(D50ToD65(LinProPhotoToXYZD50(LinProPhoto(c1, c2, c3))))
	case Rec2020:
		return xyzToSRGB(LinRec2020ToXYZ(LinRec2020(c1, c2, c3)))
	case Lab:
		return xyzToSRGB(D50ToD65(LabToXYZD50(c1, c2, c3)))
	case Oklab:
		return xyzToSRGB(OklabToXYZ(c1, c2, c3))
	case XYZ:
		return xyzToSRGB(c1, c2, c3)
	case XYZD50:
		return xyzToSRGB(D50ToD65(c1, c2, c3))
	case HSL:
		return HSLToRGB(c1, c2, c3)
	case HWB:
		return HWBToRGB(c1, c2, c3)
	case LCH:
		l, a, b := LCHToLab(c2, c3, c1)
		return ToSRGB(Lab, l, a, b)
	case Oklch:
		l, a, b := OklchToOklab(c2, c3, c1)
		return ToSRGB(Oklab, l, a, b)
	}
	panic(fmt.Sprintf("colorspace: unknown space %d", s))
}

func srgbToXYZ(r, g, b float64) (float64, float64, float64) {
	return LinSRGBToXYZ(LinSRGB(r, g, b))
}

func xyzToSRGB(x, y, z float64) (float64, float64, float64) {
	return GamSRGB(XYZToLinSRGB(x, y, z))
}
