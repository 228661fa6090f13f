package png

import (
	stdimage "image"
	"image/color"

	"github.com/lapinozz/png-parser/internal/png"
)

// Image is a decoded PNG raster: 8-bit-per-channel RGBA, row-major. It
// additionally implements the standard library's image.Image interface so
// decoded output can be handed to image/draw, image/png (re-encoding), or
// any golang.org/x/image consumer without a conversion pass.
type Image struct {
	img *png.Image
}

// Width returns the image width in pixels.
func (i *Image) Width() int {
	if i == nil || i.img == nil {
		return 0
	}
	return i.img.Width
}

// Height returns the image height in pixels.
func (i *Image) Height() int {
	if i == nil || i.img == nil {
		return 0
	}
	return i.img.Height
}

// RGBA returns the raw width*height*4 byte raster, the zero-copy primary
// accessor this decoder's result is built around.
func (i *Image) RGBA() []byte {
	if i == nil || i.img == nil {
		return nil
	}
	return i.img.RGBA
}

// ColorModel implements image.Image. The raster's alpha is not
// premultiplied, so the model is NRGBA.
func (i *Image) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (i *Image) Bounds() stdimage.Rectangle {
	return stdimage.Rect(0, 0, i.Width(), i.Height())
}

// At implements image.Image. Coordinates outside Bounds() return the zero
// color, matching the standard library's convention for image.Image
// implementations.
func (i *Image) At(x, y int) color.Color {
	if i == nil || i.img == nil || x < 0 || y < 0 || x >= i.Width() || y >= i.Height() {
		return color.RGBA{}
	}
	off := 4 * (y*i.Width() + x)
	r := i.img.RGBA[off]
	g := i.img.RGBA[off+1]
	b := i.img.RGBA[off+2]
	a := i.img.RGBA[off+3]
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
