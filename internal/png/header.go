package png

// HeaderInfo is the parsed, validated content of the IHDR chunk. Immutable
// once constructed.
type HeaderInfo struct {
	Width       uint32
	Height      uint32
	Depth       uint8
	ColorType   uint8
	Compression uint8
	Filter      uint8
	Interlace   uint8
}

// Channels returns the number of samples per pixel implied by ColorType.
func (h HeaderInfo) Channels() int {
	switch h.ColorType {
	case 0:
		return 1 // grayscale
	case 2:
		return 3 // RGB
	case 3:
		return 1 // palette index
	case 4:
		return 2 // grayscale + alpha
	case 6:
		return 4 // RGBA
	default:
		return 0
	}
}

// parseHeader parses and validates the IHDR chunk. Fields are checked in a
// fixed order (width, height, depth, colorType, compression, filter,
// interlace) so error precedence is deterministic when multiple fields are
// simultaneously invalid.
func parseHeader(chunks []Chunk) (HeaderInfo, error) {
	if len(chunks) == 0 || chunks[0].Type != chunkIHDR {
		return HeaderInfo{}, newDecodeError(ErrInvalidHeader, "first chunk is not IHDR")
	}
	ihdr := chunks[0]
	if ihdr.Length != 13 {
		return HeaderInfo{}, newDecodeError(ErrInvalidHeader, "IHDR length %d != 13", ihdr.Length)
	}

	d := ihdr.Data
	width := be32(d[0:4])
	height := be32(d[4:8])
	depth := d[8]
	colorType := d[9]
	compression := d[10]
	filter := d[11]
	interlace := d[12]

	if width == 0 || height == 0 {
		return HeaderInfo{}, newDecodeError(ErrInvalidHeader, "image size %dx%d is not positive", width, height)
	}

	switch depth {
	case 1, 2, 4, 8, 16:
	default:
		return HeaderInfo{}, newDecodeError(ErrInvalidHeader, "bit depth %d not in {1,2,4,8,16}", depth)
	}

	switch colorType {
	case 0, 2, 3, 4, 6:
	default:
		return HeaderInfo{}, newDecodeError(ErrInvalidHeader, "color type %d not in {0,2,3,4,6}", colorType)
	}

	if !validDepthForColorType(depth, colorType) {
		return HeaderInfo{}, newDecodeError(ErrInvalidHeader, "bit depth %d not allowed for color type %d", depth, colorType)
	}

	if compression != 0 {
		return HeaderInfo{}, newDecodeError(ErrUnsupportedFeature, "compression method %d != 0", compression)
	}

	if filter != 0 {
		return HeaderInfo{}, newDecodeError(ErrUnsupportedFeature, "filter method %d != 0", filter)
	}

	switch interlace {
	case 0, 1:
	default:
		return HeaderInfo{}, newDecodeError(ErrUnsupportedFeature, "interlace method %d not in {0,1}", interlace)
	}

	log.Debug().Uint32("width", width).Uint32("height", height).Uint8("depth", depth).
		Uint8("colorType", colorType).Uint8("interlace", interlace).Msg("IHDR")

	return HeaderInfo{
		Width:       width,
		Height:      height,
		Depth:       depth,
		ColorType:   colorType,
		Compression: compression,
		Filter:      filter,
		Interlace:   interlace,
	}, nil
}

// validDepthForColorType enforces the PNG format's table of bit depths
// permitted per color type: palette images top out at 8 bits; grayscale
// permits 1/2/4/8/16; RGB/GA/RGBA permit only 8/16.
func validDepthForColorType(depth, colorType uint8) bool {
	switch colorType {
	case 0:
		return true // all five depths allowed
	case 2, 4, 6:
		return depth == 8 || depth == 16
	case 3:
		return depth == 1 || depth == 2 || depth == 4 || depth == 8
	default:
		return false
	}
}

func be32(b []byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}
