// Package csscolor parses CSS color expressions into 8-bit sRGB colors.
//
// The accepted syntaxes are the named colors (including transparent and
// rebeccapurple), hex notation, rgb(), hsl(), hwb(), lab(), lch(), oklab(),
// oklch(), color(), color-mix() and light-dark(). Nested expressions are
// resolved through the same Parser, so
//
//	color-mix(in oklch longer hue, light-dark(white, #123), color(display-p3 1 0 0) 30%)
//
// is a valid input.
//
// Results that fall outside the sRGB gamut are clamped per channel. No gamut
// mapping is performed.
//
// Basic usage:
//
//	c, err := csscolor.Parse("hsl(100 50% 40% / 0.5)", csscolor.Options{})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(c.ToHexNumberString()) // 0x80559933
//
// A Parser logs every grammar that rejected an input at debug level, which is
// the quickest way to find out why an expression failed.
package csscolor
