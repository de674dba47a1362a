package pack

const (
	// Bit masks of the options field
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicPackV1Opt is the version 1 magic number of the pack format.
	MagicPackV1Opt = 0xD0C0
)

const (
	HeaderSize     = 16      // fixed header size in bytes
	SymbolsPerByte = 5       // symbols stored in one payload byte, 3^5 = 243
	MaxSymbols     = 1 << 20 // maximum symbol count of a single pack
	maxPackedByte  = 242     // largest valid payload byte, ▌▌▌▌▌
)
