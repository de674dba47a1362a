package pack

import (
	"fmt"

	"github.com/arloliu/dollcode/compress"
	"github.com/arloliu/dollcode/endian"
	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
)

// Header is the fixed-size section at the start of a pack.
type Header struct {
	// Options is a packed field.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1-3 are reserved, must be set to 0.
	// Bit 4-15 are the magic number, MagicPackV1Opt.
	Options uint16 // byte offset 0-1, always little-endian
	// Compression is the codec applied to the payload.
	Compression format.CompressionType // byte offset 2
	// SymbolCount is the number of symbols in the stream, at most MaxSymbols.
	SymbolCount uint32 // byte offset 4-7
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // byte offset 8-15
}

// NewHeader creates a little-endian, uncompressed header.
// SymbolCount and Checksum are set by the encoder.
func NewHeader() Header {
	return Header{
		Options:     MagicPackV1Opt,
		Compression: format.CompressionNone,
	}
}

// IsBigEndian returns whether the header fields are big-endian.
func (h Header) IsBigEndian() bool {
	return (h.Options & EndiannessMask) != 0
}

// WithBigEndian sets big-endian byte order.
func (h *Header) WithBigEndian() {
	h.Options |= EndiannessMask
}

// WithLittleEndian sets little-endian byte order.
func (h *Header) WithLittleEndian() {
	h.Options &^= EndiannessMask
}

// GetEndianEngine returns the engine for the header byte order.
func (h Header) GetEndianEngine() endian.EndianEngine {
	if h.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number from the Options field.
func (h Header) GetMagicNumber() uint16 {
	return h.Options & MagicNumberMask
}

// PayloadSize returns the uncompressed payload size in bytes.
func (h Header) PayloadSize() int {
	return (int(h.SymbolCount) + SymbolsPerByte - 1) / SymbolsPerByte
}

// Validate checks the magic number, reserved bits, compression and symbol count.
func (h Header) Validate() error {
	if h.GetMagicNumber() != MagicPackV1Opt {
		return fmt.Errorf("%w: magic 0x%04X", errs.ErrInvalidHeaderFlags, h.GetMagicNumber())
	}

	if h.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeaderFlags)
	}

	if _, err := compress.GetCodec(h.Compression); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedEncoding, h.Compression)
	}

	if h.SymbolCount > MaxSymbols {
		return fmt.Errorf("%w: %d symbols exceeds %d", errs.ErrInvalidPayloadSize, h.SymbolCount, MaxSymbols)
	}

	return nil
}

// Parse parses the header from exactly HeaderSize bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Options is always little-endian, it carries the byte order of the rest
	h.Options = endian.GetLittleEndianEngine().Uint16(data[0:2])
	h.Compression = format.CompressionType(data[2])
	if data[3] != 0 {
		return fmt.Errorf("%w: reserved byte set", errs.ErrInvalidHeaderFlags)
	}

	engine := h.GetEndianEngine()
	h.SymbolCount = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return h.Validate()
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = endian.GetLittleEndianEngine().AppendUint16(dst, h.Options)
	dst = append(dst, byte(h.Compression), 0)
	dst = engine.AppendUint32(dst, h.SymbolCount)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParseHeader parses the Header at the start of data.
//
// data must hold at least HeaderSize bytes.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
