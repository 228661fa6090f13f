package png

// extraBitsEntry is one row of the DEFLATE length or distance alphabet: the
// number of extra bits following the Huffman symbol, and the base value
// those extra bits are added to.
type extraBitsEntry struct {
	extraBits uint
	base      uint32
}

// lengthSymbolBase is the offset of the first length symbol (257) in the
// combined literal/length alphabet.
const lengthSymbolBase = 257

// lengthTable covers length symbols 257..285 (RFC 1951 §3.2.5).
var lengthTable = [29]extraBitsEntry{
	{0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8}, {0, 9}, {0, 10},
	{1, 11}, {1, 13}, {1, 15}, {1, 17},
	{2, 19}, {2, 23}, {2, 27}, {2, 31},
	{3, 35}, {3, 43}, {3, 51}, {3, 59},
	{4, 67}, {4, 83}, {4, 99}, {4, 115},
	{5, 131}, {5, 163}, {5, 195}, {5, 227},
	{0, 258},
}

// distanceTable covers distance symbols 0..29.
var distanceTable = [30]extraBitsEntry{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 5}, {1, 7},
	{2, 9}, {2, 13},
	{3, 17}, {3, 25},
	{4, 33}, {4, 49},
	{5, 65}, {5, 97},
	{6, 129}, {6, 193},
	{7, 257}, {7, 385},
	{8, 513}, {8, 769},
	{9, 1025}, {9, 1537},
	{10, 2049}, {10, 3073},
	{11, 4097}, {11, 6145},
	{12, 8193}, {12, 12289},
	{13, 16385}, {13, 24577},
}

// codeLengthOrder is the order in which the 19 code-length alphabet's code
// lengths are transmitted for a dynamic-Huffman block (RFC 1951 §3.2.7).
var codeLengthOrder = [19]int{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// staticLengthTable and staticDistanceTable are the precomputed fixed
// Huffman tables used by BTYPE=01 blocks, built once from the lengths fixed
// by RFC 1951 §3.2.6: 144 symbols of length 8, 112 of length 9, 24 of length
// 7, 8 of length 8 for literal/length; 32 symbols of length 5 for distance.
var staticLengthTable *huffmanTable
var staticDistanceTable *huffmanTable

func init() {
	lengths := make([]uint8, 288)
	for i := 0; i < 144; i++ {
		lengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		lengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		lengths[i] = 7
	}
	for i := 280; i < 288; i++ {
		lengths[i] = 8
	}
	var err error
	staticLengthTable, err = buildHuffmanTable(lengths)
	if err != nil {
		panic("png: fixed literal/length table failed to build: " + err.Error())
	}

	distLengths := make([]uint8, 32)
	for i := range distLengths {
		distLengths[i] = 5
	}
	staticDistanceTable, err = buildHuffmanTable(distLengths)
	if err != nil {
		panic("png: fixed distance table failed to build: " + err.Error())
	}
}
