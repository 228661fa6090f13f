package png

// Image is the decoded result: a canonical 8-bit-per-channel RGBA raster,
// row-major, width*height*4 bytes total.
type Image struct {
	Width  int
	Height int
	RGBA   []byte
}

// Decode orchestrates the full pipeline: frame chunks, validate the header,
// inflate the concatenated IDAT payload, then for each interlace pass
// reverse its scanline filters and expand its samples into the final
// raster. Returns a complete image or a fatal *DecodeError; there is no
// partial success.
func Decode(data []byte) (*Image, error) {
	body, err := checkSignature(data)
	if err != nil {
		return nil, err
	}

	chunks, err := readChunks(body)
	if err != nil {
		return nil, err
	}

	header, err := parseHeader(chunks)
	if err != nil {
		return nil, err
	}

	palette, trnsGray, trnsRGB, err := resolvePaletteAndTransparency(chunks, header)
	if err != nil {
		return nil, err
	}

	compressed := concatIDAT(chunks)
	decompressed, err := inflate(compressed)
	if err != nil {
		return nil, err
	}

	passes := planPasses(header.Interlace, int(header.Width), int(header.Height))

	out := make([]byte, int(header.Width)*int(header.Height)*4)
	channels := header.Channels()
	bpp := bytesPerPixel(channels, header.Depth)

	offset := 0
	for _, pass := range passes {
		lineBytes := rawLineBytes(channels, header.Depth, pass.width)
		need := (lineBytes + 1) * pass.height
		if offset+need > len(decompressed) {
			return nil, newDecodeError(ErrTruncated, "decompressed stream holds %d bytes, pass needs %d more at offset %d", len(decompressed), need, offset)
		}
		passData := decompressed[offset : offset+need]
		offset += need

		raw, err := unfilterPass(passData, lineBytes, pass.height, bpp)
		if err != nil {
			return nil, err
		}

		expandPass(raw, header, pass, palette, trnsGray, trnsRGB, out, int(header.Width))

		log.Debug().Int("passWidth", pass.width).Int("passHeight", pass.height).Msg("decoded pass")
	}

	return &Image{Width: int(header.Width), Height: int(header.Height), RGBA: out}, nil
}

// resolvePaletteAndTransparency reads PLTE/tRNS (if present) and validates
// that color type 3 images carry a palette.
func resolvePaletteAndTransparency(chunks []Chunk, header HeaderInfo) (*Palette, TransparencyKey, TransparencyKey, error) {
	var palette *Palette
	if plteChunk, ok := findChunk(chunks, chunkPLTE); ok {
		p, err := newPalette(plteChunk.Data)
		if err != nil {
			return nil, TransparencyKey{}, TransparencyKey{}, err
		}
		palette = p
	}
	if header.ColorType == 3 && palette == nil {
		return nil, TransparencyKey{}, TransparencyKey{}, newDecodeError(ErrMissingPalette, "color type 3 requires a PLTE chunk")
	}

	var trnsGray, trnsRGB TransparencyKey
	if trnsChunk, ok := findChunk(chunks, chunkTRNS); ok {
		switch header.ColorType {
		case 0:
			key, err := parseTRNSGray(trnsChunk.Data)
			if err != nil {
				return nil, TransparencyKey{}, TransparencyKey{}, err
			}
			trnsGray = key
		case 2:
			key, err := parseTRNSRGB(trnsChunk.Data)
			if err != nil {
				return nil, TransparencyKey{}, TransparencyKey{}, err
			}
			trnsRGB = key
		case 3:
			if palette == nil {
				return nil, TransparencyKey{}, TransparencyKey{}, newDecodeError(ErrMissingPalette, "tRNS present without PLTE for color type 3")
			}
			if err := palette.applyTRNS(trnsChunk.Data); err != nil {
				return nil, TransparencyKey{}, TransparencyKey{}, err
			}
		}
	}
	return palette, trnsGray, trnsRGB, nil
}
