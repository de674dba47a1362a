package pack

import (
	"errors"
	"fmt"

	"github.com/arloliu/dollcode/compress"
	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
	"github.com/arloliu/dollcode/internal/hash"
	"github.com/arloliu/dollcode/internal/pool"
)

// Decode unpacks a pack produced by Encoder.Encode into its symbol stream.
//
// Every failure wraps errs.ErrInvalidInput: a malformed header, a payload
// that does not decompress, a payload size that disagrees with the symbol
// count, a checksum mismatch, or a payload byte outside 0..242.
func Decode(data []byte) (string, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return "", err
	}

	codec, err := compress.GetCodec(header.Compression)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrUnsupportedEncoding, err)
	}

	// the header fixes the payload size, so no codec may allocate beyond it
	payload, err := codec.Decompress(data[HeaderSize:], header.PayloadSize())
	if errors.Is(err, compress.ErrSizeLimit) {
		return "", fmt.Errorf("%w: %w", errs.ErrInvalidPayloadSize, err)
	}
	if err != nil {
		return "", fmt.Errorf("%w: decompress %s payload: %w", errs.ErrInvalidInput, header.Compression, err)
	}

	if len(payload) != header.PayloadSize() {
		return "", fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidPayloadSize, len(payload), header.PayloadSize())
	}

	if !hash.Verify(payload, header.Checksum) {
		return "", errs.ErrChecksumMismatch
	}

	return unpackSymbols(payload, int(header.SymbolCount))
}

// unpackSymbols expands payload back into count symbols.
func unpackSymbols(payload []byte, count int) (string, error) {
	buf := pool.GetGlyphBuffer()
	defer pool.PutGlyphBuffer(buf)

	// every glyph is 3 bytes in UTF-8
	buf.Grow(count * 3)

	remaining := count
	for i, b := range payload {
		if b > maxPackedByte {
			return "", fmt.Errorf("%w: 0x%02X at offset %d", errs.ErrInvalidPayloadByte, b, i)
		}

		var digits [SymbolsPerByte]int
		v := int(b)
		for j := SymbolsPerByte - 1; j >= 0; j-- {
			digits[j] = v % 3
			v /= 3
		}

		n := min(remaining, SymbolsPerByte)
		for _, d := range digits[:n] {
			buf.WriteRune(rune(format.Symbols[d]))
		}
		for _, d := range digits[n:] {
			if d != 0 {
				return "", fmt.Errorf("%w: non-zero padding at offset %d", errs.ErrInvalidPayloadByte, i)
			}
		}
		remaining -= n
	}

	return buf.String(), nil
}
