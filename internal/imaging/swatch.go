package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blend"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/css-color-tools/pkg/csscolor"
)

// RenderResult is a rendered PNG ready to hand back to an MCP client.
type RenderResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Checkerboard shades shown through translucent colors.
var (
	checkerLight = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	checkerDark  = color.NRGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
)

// MaxPixels caps the area of any swatch or palette sheet.
const MaxPixels = 16 << 20

// SwatchOptions sizes a swatch. CheckerSize is the edge of one checkerboard
// square in pixels. MaxSize, when positive, limits both Width and Height.
type SwatchOptions struct {
	Width       int
	Height      int
	CheckerSize int
	MaxSize     int
}

func (o SwatchOptions) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid swatch size %dx%d", o.Width, o.Height)
	}
	if o.MaxSize > 0 && (o.Width > o.MaxSize || o.Height > o.MaxSize) {
		return fmt.Errorf("swatch size %dx%d exceeds the %d pixel limit", o.Width, o.Height, o.MaxSize)
	}
	if err := checkArea(o.Width, o.Height); err != nil {
		return err
	}
	if o.CheckerSize <= 0 {
		return fmt.Errorf("invalid checker size %d", o.CheckerSize)
	}
	return nil
}

// checkArea rejects images larger than MaxPixels.
func checkArea(width, height int) error {
	if int64(width)*int64(height) > MaxPixels {
		return fmt.Errorf("image size %dx%d exceeds %d pixels", width, height, MaxPixels)
	}
	return nil
}

// Swatch renders c as a solid rectangle. Any transparency shows the
// checkerboard underneath, so #F005 and #F00 look different.
func Swatch(c csscolor.Color, opts SwatchOptions) (*RenderResult, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return encodePNG(composite(c, opts))
}

// composite lays c over a checkerboard of the given size.
func composite(c csscolor.Color, opts SwatchOptions) image.Image {
	fill := imaging.New(opts.Width, opts.Height, c.NRGBA())
	return blend.Normal(checkerboard(opts.Width, opts.Height, opts.CheckerSize), fill)
}

// checkerboard starts with a light square in the top-left corner.
func checkerboard(width, height, size int) *image.NRGBA {
	board := imaging.New(width, height, checkerLight)
	dark := image.NewUniform(checkerDark)
	for y := 0; y < height; y += size {
		for x := 0; x < width; x += size {
			if (x/size+y/size)%2 == 1 {
				draw.Draw(board, image.Rect(x, y, x+size, y+size).Intersect(board.Bounds()), dark, image.Point{}, draw.Src)
			}
		}
	}
	return board
}

func encodePNG(img image.Image) (*RenderResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	b := img.Bounds()
	return &RenderResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
