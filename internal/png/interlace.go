package png

// adam7Pass describes one of the seven Adam7 interlacing passes: the pixel
// offset its first sample occupies in the full image, and the stride
// between consecutive samples it owns along each axis.
type adam7Pass struct {
	startX, startY   int
	strideX, strideY int
}

// adam7Passes is the canonical Adam7 pass geometry table.
var adam7Passes = [7]adam7Pass{
	{0, 0, 8, 8},
	{4, 0, 8, 8},
	{0, 4, 4, 8},
	{2, 0, 4, 4},
	{0, 2, 2, 4},
	{1, 0, 2, 2},
	{0, 1, 1, 2},
}

// dimensions returns the pixel width and height of an Adam7 pass's
// sub-image within a W x H full image: ceil((W-startX)/strideX) and
// ceil((H-startY)/strideY), or (0,0) if the pass owns no pixels.
func (p adam7Pass) dimensions(w, h int) (int, int) {
	if w <= p.startX || h <= p.startY {
		return 0, 0
	}
	passW := (w - p.startX + p.strideX - 1) / p.strideX
	passH := (h - p.startY + p.strideY - 1) / p.strideY
	return passW, passH
}

// interlacePass is one sub-image to decode: its geometry plus its pixel
// width and height. It holds no sample bytes; Decode slices each pass's
// (rawLineBytes(width)+1)*height bytes out of the decompressed stream.
type interlacePass struct {
	geometry adam7Pass
	width    int
	height   int
}

// planPasses returns the sequence of passes to decode for the given
// interlace method: a single full-frame pass for interlace=0, or the seven
// Adam7 passes (skipping any with zero width or height) for interlace=1.
func planPasses(interlace uint8, w, h int) []interlacePass {
	if interlace == 0 {
		return []interlacePass{{geometry: adam7Pass{0, 0, 1, 1}, width: w, height: h}}
	}
	var passes []interlacePass
	for _, g := range adam7Passes {
		pw, ph := g.dimensions(w, h)
		if pw == 0 || ph == 0 {
			continue
		}
		passes = append(passes, interlacePass{geometry: g, width: pw, height: ph})
	}
	return passes
}
