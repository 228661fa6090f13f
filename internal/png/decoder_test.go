package png

import (
	"encoding/binary"
	"testing"
)

// buildStoredZlib wraps payload in a zlib stream using a single
// BFINAL=1, BTYPE=00 (stored) DEFLATE block, matching how decoder_test's
// synthetic IDAT payloads are produced.
func buildStoredZlib(payload []byte) []byte {
	out := append([]byte{}, zlibHeader()...)
	out = append(out, 0x01) // BFINAL=1, BTYPE=00, padding zeros
	length := uint16(len(payload))
	nlen := ^length
	out = append(out, byte(length), byte(length>>8), byte(nlen), byte(nlen>>8))
	out = append(out, payload...)
	return out
}

func buildPNG(ihdrData []byte, extraChunks []Chunk, idatPayload []byte) []byte {
	var buf []byte
	buf = append(buf, pngSignature...)
	buf = appendChunk(buf, "IHDR", ihdrData)
	for _, c := range extraChunks {
		buf = appendChunk(buf, c.Type.String(), c.Data)
	}
	buf = appendChunk(buf, "IDAT", buildStoredZlib(idatPayload))
	buf = appendChunk(buf, "IEND", nil)
	return buf
}

func ihdrData(width, height uint32, depth, colorType, interlace uint8) []byte {
	d := make([]byte, 13)
	binary.BigEndian.PutUint32(d[0:4], width)
	binary.BigEndian.PutUint32(d[4:8], height)
	d[8] = depth
	d[9] = colorType
	d[10] = 0
	d[11] = 0
	d[12] = interlace
	return d
}

func TestDecodeGrayscale2x2(t *testing.T) {
	// Two scanlines, filter type 0 (None), 2 pixels of 1 byte each.
	payload := []byte{
		0, 0, 255, // filter None, gray=0, gray=255
		0, 128, 64, // filter None, gray=128, gray=64
	}
	data := buildPNG(ihdrData(2, 2, 8, 0, 0), nil, payload)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("got %dx%d, want 2x2", img.Width, img.Height)
	}
	want := []byte{
		0, 0, 0, 255, 255, 255, 255, 255,
		128, 128, 128, 255, 64, 64, 64, 255,
	}
	for i := range want {
		if img.RGBA[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, img.RGBA[i], want[i])
		}
	}
}

func TestDecodeRGB1x1WithSubFilter(t *testing.T) {
	// Single scanline, one RGB pixel, filter type 1 (Sub): since there is no
	// left neighbor for the first pixel, Sub is equivalent to None here.
	payload := []byte{1, 10, 20, 30}
	data := buildPNG(ihdrData(1, 1, 8, 2, 0), nil, payload)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []byte{10, 20, 30, 255}
	for i := range want {
		if img.RGBA[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, img.RGBA[i], want[i])
		}
	}
}

func TestDecodePalette(t *testing.T) {
	plte := Chunk{Type: chunkPLTE, Data: []byte{
		255, 0, 0, // index 0: red
		0, 255, 0, // index 1: green
	}}
	payload := []byte{0, 0, 1} // filter None, indices 0,1
	data := buildPNG(ihdrData(2, 1, 8, 3, 0), []Chunk{plte}, payload)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []byte{255, 0, 0, 255, 0, 255, 0, 255}
	for i := range want {
		if img.RGBA[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, img.RGBA[i], want[i])
		}
	}
}

func TestDecodePaletteWithoutPLTEFails(t *testing.T) {
	payload := []byte{0, 0}
	data := buildPNG(ihdrData(1, 1, 8, 3, 0), nil, payload)
	_, err := Decode(data)
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrMissingPalette {
		t.Fatalf("got %v, want ErrMissingPalette", err)
	}
}

func TestDecodeGrayscaleWithTRNS(t *testing.T) {
	trns := Chunk{Type: chunkTRNS, Data: []byte{0, 128}} // key gray=128
	payload := []byte{0, 128, 64}                        // filter None, gray=128, gray=64
	data := buildPNG(ihdrData(2, 1, 8, 0, 0), []Chunk{trns}, payload)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if img.RGBA[3] != 0 {
		t.Fatalf("pixel 0 alpha = %d, want 0 (keyed transparent)", img.RGBA[3])
	}
	if img.RGBA[7] != 255 {
		t.Fatalf("pixel 1 alpha = %d, want 255", img.RGBA[7])
	}
}

func TestDecodeRejectsBadSignature(t *testing.T) {
	_, err := Decode([]byte("not a png"))
	de, ok := err.(*DecodeError)
	if !ok || de.Kind != ErrBadSignature {
		t.Fatalf("got %v, want ErrBadSignature", err)
	}
}

func TestDecodeInterlacedSinglePixel(t *testing.T) {
	// A 1x1 Adam7-interlaced image has exactly one active pass (pass 1),
	// identical in content to the non-interlaced case.
	payload := []byte{0, 200} // filter None, gray=200
	data := buildPNG(ihdrData(1, 1, 8, 0, 1), nil, payload)

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []byte{200, 200, 200, 255}
	for i := range want {
		if img.RGBA[i] != want[i] {
			t.Fatalf("byte %d: got %d, want %d", i, img.RGBA[i], want[i])
		}
	}
}
