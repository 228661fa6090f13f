package png

// inflate decompresses a zlib-framed DEFLATE stream per RFC 1950/1951: a
// two-byte zlib header check followed by a loop over stored, fixed-Huffman,
// and dynamic-Huffman blocks until a block with BFINAL=1 ends.
func inflate(data []byte) ([]byte, error) {
	r := NewBitReader(data)

	cm := r.ReadBits(4)
	cinfo := r.ReadBits(4)
	cmf := (cinfo << 4) | cm
	if cm != 8 {
		return nil, newDecodeError(ErrUnsupportedFeature, "zlib compression method %d != 8 (DEFLATE)", cm)
	}
	if cinfo > 7 {
		return nil, newDecodeError(ErrUnsupportedFeature, "zlib window size CINFO=%d > 7", cinfo)
	}

	fcheck := r.ReadBits(5)
	fdict := r.ReadBits(1)
	flevel := r.ReadBits(2)
	flg := (flevel << 6) | (fdict << 5) | fcheck
	if fdict != 0 {
		return nil, newDecodeError(ErrUnsupportedFeature, "zlib preset dictionaries are not supported")
	}
	if (cmf*256+flg)%31 != 0 {
		return nil, newDecodeError(ErrFCheckFailed, "zlib header checksum failed")
	}

	var out []byte
	for {
		bfinal := r.ReadBits(1)
		btype := r.ReadBits(2)

		log.Debug().Uint32("btype", btype).Uint32("bfinal", bfinal).Msg("deflate block")

		switch btype {
		case 0:
			var err error
			out, err = inflateStoredBlock(r, out)
			if err != nil {
				return nil, err
			}
		case 1:
			var err error
			out, err = inflateHuffmanBlock(r, out, staticLengthTable, staticDistanceTable)
			if err != nil {
				return nil, err
			}
		case 2:
			litTable, distTable, err := readDynamicTables(r)
			if err != nil {
				return nil, err
			}
			out, err = inflateHuffmanBlock(r, out, litTable, distTable)
			if err != nil {
				return nil, err
			}
		default:
			return nil, newDecodeError(ErrInvalidBlockType, "BTYPE=3 is reserved")
		}

		if r.Overran() {
			return nil, newDecodeError(ErrTruncated, "deflate stream ended mid-block")
		}
		if bfinal != 0 {
			break
		}
	}
	return out, nil
}

// inflateStoredBlock handles BTYPE=00: align to byte, read LEN/NLEN, append
// LEN raw bytes verbatim.
func inflateStoredBlock(r *BitReader, out []byte) ([]byte, error) {
	r.AlignToByte()
	lenBytes, err := r.ReadRawBytes(2)
	if err != nil {
		return nil, newDecodeError(ErrTruncated, "stored block length")
	}
	nlenBytes, err := r.ReadRawBytes(2)
	if err != nil {
		return nil, newDecodeError(ErrTruncated, "stored block ones-complement length")
	}
	length := uint16(lenBytes[0]) | uint16(lenBytes[1])<<8
	nlen := uint16(nlenBytes[0]) | uint16(nlenBytes[1])<<8
	if length != ^nlen {
		return nil, newDecodeError(ErrInvalidStoredLength, "LEN=%d NLEN=%d are not ones-complements", length, nlen)
	}
	data, err := r.ReadRawBytes(int(length))
	if err != nil {
		return nil, newDecodeError(ErrTruncated, "stored block body shorter than LEN=%d", length)
	}
	return append(out, data...), nil
}

// readDynamicTables handles the HLIT/HDIST/HCLEN preamble of a BTYPE=10
// block and returns the literal/length and distance Huffman tables it
// describes.
func readDynamicTables(r *BitReader) (*huffmanTable, *huffmanTable, error) {
	hlit := int(r.ReadBits(5)) + 257
	hdist := int(r.ReadBits(5)) + 1
	hclen := int(r.ReadBits(4)) + 4

	var codeLengthLengths [19]uint8
	for i := 0; i < hclen; i++ {
		codeLengthLengths[codeLengthOrder[i]] = uint8(r.ReadBits(3))
	}
	codeLengthTable, err := buildHuffmanTable(codeLengthLengths[:])
	if err != nil {
		return nil, nil, newDecodeError(ErrInvalidHuffmanCode, "code-length alphabet: %v", err)
	}

	total := hlit + hdist
	lengths := make([]uint8, 0, total)
	for len(lengths) < total {
		symbol, err := codeLengthTable.decode(r)
		if err != nil {
			return nil, nil, newDecodeError(ErrInvalidHuffmanCode, "code-length symbol: %v", err)
		}
		switch {
		case symbol <= 15:
			lengths = append(lengths, uint8(symbol))
		case symbol == 16:
			if len(lengths) == 0 {
				return nil, nil, newDecodeError(ErrInvalidHuffmanCode, "repeat-previous code with no previous length")
			}
			repeat := int(r.ReadBits(2)) + 3
			prev := lengths[len(lengths)-1]
			for i := 0; i < repeat && len(lengths) < total; i++ {
				lengths = append(lengths, prev)
			}
		case symbol == 17:
			repeat := int(r.ReadBits(3)) + 3
			for i := 0; i < repeat && len(lengths) < total; i++ {
				lengths = append(lengths, 0)
			}
		case symbol == 18:
			repeat := int(r.ReadBits(7)) + 11
			for i := 0; i < repeat && len(lengths) < total; i++ {
				lengths = append(lengths, 0)
			}
		default:
			return nil, nil, newDecodeError(ErrInvalidHuffmanCode, "code-length symbol %d out of range", symbol)
		}
	}

	litTable, err := buildHuffmanTable(lengths[:hlit])
	if err != nil {
		return nil, nil, newDecodeError(ErrInvalidHuffmanCode, "literal/length table: %v", err)
	}
	distTable, err := buildHuffmanTable(lengths[hlit:])
	if err != nil {
		return nil, nil, newDecodeError(ErrInvalidHuffmanCode, "distance table: %v", err)
	}
	return litTable, distTable, nil
}

// inflateHuffmanBlock decodes literal/length/distance symbols until the
// end-of-block symbol (256) is reached, appending to out.
func inflateHuffmanBlock(r *BitReader, out []byte, litTable, distTable *huffmanTable) ([]byte, error) {
	for {
		if r.Overran() {
			return nil, newDecodeError(ErrTruncated, "deflate stream ended mid-Huffman-block")
		}

		symbol, err := litTable.decode(r)
		if err != nil {
			return nil, newDecodeError(ErrInvalidHuffmanCode, "literal/length symbol: %v", err)
		}

		switch {
		case symbol < 256:
			out = append(out, byte(symbol))
		case symbol == 256:
			return out, nil
		default:
			idx := int(symbol) - lengthSymbolBase
			if idx < 0 || idx >= len(lengthTable) {
				return nil, newDecodeError(ErrInvalidBackReference, "length symbol %d out of range", symbol)
			}
			entry := lengthTable[idx]
			length := entry.base + r.ReadBits(entry.extraBits)

			distSymbol, err := distTable.decode(r)
			if err != nil {
				return nil, newDecodeError(ErrInvalidHuffmanCode, "distance symbol: %v", err)
			}
			if int(distSymbol) >= len(distanceTable) {
				return nil, newDecodeError(ErrInvalidBackReference, "distance symbol %d out of range", distSymbol)
			}
			distEntry := distanceTable[distSymbol]
			distance := distEntry.base + r.ReadBits(distEntry.extraBits)

			if int(distance) > len(out) || distance > 32768 {
				return nil, newDecodeError(ErrInvalidBackReference, "distance %d exceeds output length %d", distance, len(out))
			}

			// The copy must permit overlap (distance < length produces a
			// repeating run), so this is a byte-by-byte loop rather than
			// Go's copy(), whose behavior in the overlapping, forward-
			// growing direction PNG back-references need is unspecified.
			start := len(out) - int(distance)
			for i := uint32(0); i < length; i++ {
				out = append(out, out[start+int(i)])
			}
		}
	}
}
