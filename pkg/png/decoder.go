// Package png is the public API for this module's PNG decoder: internal/png
// holds the bitstream, Huffman, and raster mechanics, and this package
// wraps it in a small, stable surface for callers outside the module.
package png

import (
	"errors"

	"github.com/lapinozz/png-parser/internal/png"
)

// Options configures decoding behavior. There is currently nothing to
// configure beyond the input bytes; the struct exists so the public API can
// grow (e.g. a strict-CRC mode) without breaking callers.
type Options struct {
	// SrcData is the complete PNG byte stream, signature included.
	SrcData []byte
}

// Decoder decodes a single PNG image from a fixed input buffer.
type Decoder struct {
	opts Options
}

// New creates a Decoder for the given options.
func New(opts Options) (*Decoder, error) {
	if len(opts.SrcData) == 0 {
		return nil, errors.New("png: empty source data")
	}
	return &Decoder{opts: opts}, nil
}

// Decode runs the full pipeline and returns the decoded image.
func (d *Decoder) Decode() (*Image, error) {
	img, err := png.Decode(d.opts.SrcData)
	if err != nil {
		return nil, err
	}
	return &Image{img: img}, nil
}

// Decode is a convenience wrapper around New(Options{SrcData: data}).Decode()
// for callers that don't need the Decoder/Options split.
func Decode(data []byte) (*Image, error) {
	d, err := New(Options{SrcData: data})
	if err != nil {
		return nil, err
	}
	return d.Decode()
}
