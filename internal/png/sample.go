package png

// scaleTable gives the multiplier that promotes a depth<8 grayscale sample
// to the full 0-255 range. Index 8 is present only for symmetry (identity
// scale); depth-8 samples are used as-is and depth-16 samples are truncated
// to their high byte instead of scaled.
var scaleTable = [17]uint8{
	1:  0xFF,
	2:  0x55,
	4:  0x11,
	8:  0x01,
	16: 0x01,
}

// expandPass walks one interlace pass's raw (post-filter-reversal) sample
// bytes and scatters 8-bit RGBA pixels into the final raster, which is
// always the full image's width*height*4 byte buffer addressed by
// out[4*(y*width+x) : ...]. Promotion writes into a distinct output buffer
// rather than in place, so there is no overlap hazard and forward iteration
// order is safe.
func expandPass(raw []byte, header HeaderInfo, pass interlacePass, palette *Palette, trnsGray, trnsRGB TransparencyKey, out []byte, fullWidth int) {
	channels := header.Channels()
	depth := header.Depth
	lineBytes := rawLineBytes(channels, depth, pass.width)
	g := pass.geometry

	for row := 0; row < pass.height; row++ {
		rawLine := raw[row*lineBytes : (row+1)*lineBytes]
		finalY := g.startY + row*g.strideY
		for col := 0; col < pass.width; col++ {
			finalX := g.startX + col*g.strideX
			dst := out[4*(finalY*fullWidth+finalX):]
			writePixel(rawLine, header, palette, trnsGray, trnsRGB, col, dst)
		}
	}
}

// writePixel decodes the sample(s) for column col of rawLine and writes one
// RGBA pixel to dst[0:4].
func writePixel(rawLine []byte, header HeaderInfo, palette *Palette, trnsGray, trnsRGB TransparencyKey, col int, dst []byte) {
	depth := header.Depth
	channels := header.Channels()

	if depth < 8 {
		// Only grayscale and palette images ever use depth<8, and both
		// have exactly one channel, so samples are packed one per
		// `depth`-bit slot with no interleaving to account for.
		v := unpackSubByteSample(rawLine, depth, col)
		switch header.ColorType {
		case 0:
			gray := v * scaleTable[depth]
			alpha := byte(255)
			if trnsGray.Present && normalizeTRNSGray(trnsGray.Gray16, depth) == gray {
				alpha = 0
			}
			dst[0], dst[1], dst[2], dst[3] = gray, gray, gray, alpha
		case 3:
			writePaletteIndex(palette, int(v), dst)
		}
		return
	}

	byteStride := 1
	if depth == 16 {
		byteStride = 2
	}
	base := col * channels * byteStride
	sample := func(ch int) byte {
		off := base + ch*byteStride
		if depth == 16 {
			return rawLine[off] // high byte; low byte discarded at this scope
		}
		return rawLine[off]
	}

	switch header.ColorType {
	case 0:
		gray := sample(0)
		alpha := byte(255)
		if trnsGray.Present && normalizeTRNSGray(trnsGray.Gray16, depth) == gray {
			alpha = 0
		}
		dst[0], dst[1], dst[2], dst[3] = gray, gray, gray, alpha
	case 2:
		r, g, b := sample(0), sample(1), sample(2)
		alpha := byte(255)
		if trnsRGB.Present &&
			normalizeTRNSGray(trnsRGB.R16, depth) == r &&
			normalizeTRNSGray(trnsRGB.G16, depth) == g &&
			normalizeTRNSGray(trnsRGB.B16, depth) == b {
			alpha = 0
		}
		dst[0], dst[1], dst[2], dst[3] = r, g, b, alpha
	case 3:
		writePaletteIndex(palette, int(sample(0)), dst)
	case 4:
		dst[0], dst[1], dst[2], dst[3] = sample(0), sample(0), sample(0), sample(1)
	case 6:
		dst[0], dst[1], dst[2], dst[3] = sample(0), sample(1), sample(2), sample(3)
	}
}

func writePaletteIndex(palette *Palette, idx int, dst []byte) {
	if palette == nil || idx < 0 || idx >= palette.size {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 255
		return
	}
	dst[0], dst[1], dst[2], dst[3] = palette.R[idx], palette.G[idx], palette.B[idx], palette.A[idx]
}

// unpackSubByteSample extracts the col'th depth-bit sample from a scanline
// where samples are packed MSB-first, one channel, depth<8: a scanline
// begins byte-aligned and each row's bit cursor restarts at 0, so the
// col'th sample always starts at bit offset col*depth from the row start.
func unpackSubByteSample(rawLine []byte, depth uint8, col int) byte {
	bitIndex := col * int(depth)
	byteIndex := bitIndex / 8
	shift := 8 - int(depth) - (bitIndex % 8)
	mask := byte(1<<depth) - 1
	return (rawLine[byteIndex] >> uint(shift)) & mask
}

// normalizeTRNSGray normalizes a 16-bit tRNS sample value to the 8-bit
// width pixels are compared at for the image's bit depth: scale depth<8
// values the same way pixel samples are scaled, take the high byte for
// depth=16, and the low byte otherwise.
func normalizeTRNSGray(v16 uint16, depth uint8) byte {
	switch {
	case depth < 8:
		return byte(v16) * scaleTable[depth]
	case depth == 16:
		return byte(v16 >> 8)
	default:
		return byte(v16)
	}
}
