package png

// Palette holds the four parallel 256-entry byte tables backing color type
// 3 (indexed color). A is initialized to fully opaque and overwritten by any
// tRNS entries present.
type Palette struct {
	R, G, B, A [256]byte
	size       int // number of entries actually populated from PLTE
}

// newPalette builds a Palette from a PLTE chunk's data, which is a flat
// sequence of RGB triples (length must be a multiple of 3).
func newPalette(data []byte) (*Palette, error) {
	if len(data)%3 != 0 {
		return nil, newDecodeError(ErrInvalidHeader, "PLTE length %d is not a multiple of 3", len(data))
	}
	n := len(data) / 3
	if n > 256 {
		return nil, newDecodeError(ErrInvalidHeader, "PLTE has %d entries, max 256", n)
	}
	p := &Palette{size: n}
	for i := 0; i < 256; i++ {
		p.A[i] = 255
	}
	for i := 0; i < n; i++ {
		p.R[i] = data[i*3]
		p.G[i] = data[i*3+1]
		p.B[i] = data[i*3+2]
	}
	return p, nil
}

// applyTRNS overwrites palette alpha entries from a tRNS chunk, which for
// color type 3 is a flat sequence of per-entry alpha bytes (possibly
// shorter than the palette; unlisted entries stay at their current value).
func (p *Palette) applyTRNS(data []byte) error {
	if len(data) > 256 {
		return newDecodeError(ErrInvalidHeader, "tRNS has %d entries, max 256", len(data))
	}
	for i, a := range data {
		p.A[i] = a
	}
	return nil
}

// TransparencyKey is the single-color (grayscale) or triple-channel (RGB)
// tRNS color key for color types 0 and 2. Stored at the on-disk 16-bit
// width regardless of image bit depth; callers normalize to 8 bits for
// comparison at the depth the image actually uses.
type TransparencyKey struct {
	Present       bool
	Gray16        uint16
	R16, G16, B16 uint16
}

// parseTRNSGray parses a tRNS chunk for color type 0: one big-endian 16-bit
// gray value.
func parseTRNSGray(data []byte) (TransparencyKey, error) {
	if len(data) < 2 {
		return TransparencyKey{}, newDecodeError(ErrInvalidHeader, "tRNS for color type 0 needs 2 bytes, got %d", len(data))
	}
	return TransparencyKey{Present: true, Gray16: uint16(data[0])<<8 | uint16(data[1])}, nil
}

// parseTRNSRGB parses a tRNS chunk for color type 2: three big-endian
// 16-bit channel values.
func parseTRNSRGB(data []byte) (TransparencyKey, error) {
	if len(data) < 6 {
		return TransparencyKey{}, newDecodeError(ErrInvalidHeader, "tRNS for color type 2 needs 6 bytes, got %d", len(data))
	}
	return TransparencyKey{
		Present: true,
		R16:     uint16(data[0])<<8 | uint16(data[1]),
		G16:     uint16(data[2])<<8 | uint16(data[3]),
		B16:     uint16(data[4])<<8 | uint16(data[5]),
	}, nil
}
