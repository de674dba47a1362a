package format

type (
	// Symbol is one of the three dollcode glyphs.
	Symbol rune

	SegmentMode     uint8
	CompressionType uint8
)

const (
	SymbolLowerLeft Symbol = '▖' // SymbolLowerLeft is U+2596, index 0.
	SymbolUpperLeft Symbol = '▘' // SymbolUpperLeft is U+2598, index 1.
	SymbolLeftHalf  Symbol = '▌' // SymbolLeftHalf is U+258C, index 2.

	// Joiner terminates a segment in the delimited text convention (U+200D ZERO WIDTH JOINER).
	Joiner Symbol = '\u200d'
)

// Symbols lists the glyphs in their fixed order.
var Symbols = [3]Symbol{SymbolLowerLeft, SymbolUpperLeft, SymbolLeftHalf}

// ParseSymbol reports whether r is one of the three glyphs.
func ParseSymbol(r rune) (Symbol, bool) {
	switch Symbol(r) {
	case SymbolLowerLeft, SymbolUpperLeft, SymbolLeftHalf:
		return Symbol(r), true
	default:
		return 0, false
	}
}

// Index returns the 0-based position of s in Symbols, or -1.
func (s Symbol) Index() int {
	switch s {
	case SymbolLowerLeft:
		return 0
	case SymbolUpperLeft:
		return 1
	case SymbolLeftHalf:
		return 2
	default:
		return -1
	}
}

func (s Symbol) String() string {
	return string(rune(s))
}

const (
	SegmentFixed     SegmentMode = 0x1 // SegmentFixed encodes each character as exactly 5 symbols.
	SegmentDelimited SegmentMode = 0x2 // SegmentDelimited encodes each character as symbols followed by Joiner.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m SegmentMode) String() string {
	switch m {
	case SegmentFixed:
		return "fixed"
	case SegmentDelimited:
		return "delimited"
	default:
		return "unknown"
	}
}

// ParseSegmentMode parses the String form of a SegmentMode.
func ParseSegmentMode(s string) (SegmentMode, bool) {
	switch s {
	case "fixed":
		return SegmentFixed, true
	case "delimited":
		return SegmentDelimited, true
	default:
		return 0, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// ParseCompressionType parses the String form of a CompressionType.
func ParseCompressionType(s string) (CompressionType, bool) {
	switch s {
	case "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
