package png

import "encoding/binary"

// pngSignature is the 8-byte magic every conforming PNG stream begins with.
var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// ChunkType is the 4-byte ASCII type code of a chunk, compared byte-for-byte
// with no case-folding.
type ChunkType [4]byte

func (t ChunkType) String() string { return string(t[:]) }

var (
	chunkIHDR = ChunkType{'I', 'H', 'D', 'R'}
	chunkIDAT = ChunkType{'I', 'D', 'A', 'T'}
	chunkIEND = ChunkType{'I', 'E', 'N', 'D'}
	chunkPLTE = ChunkType{'P', 'L', 'T', 'E'}
	chunkTRNS = ChunkType{'t', 'R', 'N', 'S'}
)

// Chunk is an immutable record of one PNG chunk: length, type, data, and the
// stored (but unverified) CRC.
type Chunk struct {
	Length uint32
	Type   ChunkType
	Data   []byte
	CRC    uint32
}

// checkSignature verifies the leading 8-byte PNG magic.
func checkSignature(data []byte) ([]byte, error) {
	if len(data) < len(pngSignature) {
		return nil, newDecodeError(ErrBadSignature, "input shorter than PNG signature")
	}
	for i, b := range pngSignature {
		if data[i] != b {
			return nil, newDecodeError(ErrBadSignature, "first 8 bytes do not match PNG magic")
		}
	}
	return data[len(pngSignature):], nil
}

// readChunks iterates length/type/data/CRC records until IEND is seen or the
// stream is exhausted without one; chunks after IEND, if any, are never
// read. A stream that ends partway through a chunk fails with ErrTruncated.
func readChunks(data []byte) ([]Chunk, error) {
	var chunks []Chunk
	for {
		if len(data) == 0 {
			break
		}
		if len(data) < 8 {
			return nil, newDecodeError(ErrTruncated, "chunk header needs 8 bytes, %d remain", len(data))
		}
		length := binary.BigEndian.Uint32(data[0:4])
		var typ ChunkType
		copy(typ[:], data[4:8])
		data = data[8:]

		if uint64(length) > uint64(len(data)) {
			return nil, newDecodeError(ErrTruncated, "chunk %s declares length %d, %d bytes remain", typ, length, len(data))
		}
		chunkData := data[:length]
		data = data[length:]

		if len(data) < 4 {
			return nil, newDecodeError(ErrTruncated, "chunk %s missing CRC", typ)
		}
		crc := binary.BigEndian.Uint32(data[0:4])
		data = data[4:]

		log.Debug().Str("type", typ.String()).Uint32("length", length).Msg("chunk")

		chunks = append(chunks, Chunk{Length: length, Type: typ, Data: chunkData, CRC: crc})
		if typ == chunkIEND {
			break
		}
	}
	return chunks, nil
}

// concatIDAT concatenates the Data of every IDAT chunk, in stream order,
// into a single compressed-data byte slice.
func concatIDAT(chunks []Chunk) []byte {
	var total int
	for _, c := range chunks {
		if c.Type == chunkIDAT {
			total += len(c.Data)
		}
	}
	out := make([]byte, 0, total)
	for _, c := range chunks {
		if c.Type == chunkIDAT {
			out = append(out, c.Data...)
		}
	}
	return out
}

// findChunk returns the first chunk of the given type, if any.
func findChunk(chunks []Chunk, t ChunkType) (Chunk, bool) {
	for _, c := range chunks {
		if c.Type == t {
			return c, true
		}
	}
	return Chunk{}, false
}
