package pack

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dollcode/compress"
	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
	"github.com/arloliu/dollcode/internal/hash"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// symbolStream builds a deterministic stream of n symbols.
func symbolStream(n int) string {
	var b strings.Builder
	b.Grow(n * 3)
	for i := 0; i < n; i++ {
		b.WriteRune(rune(format.Symbols[(i*7+i/3)%3]))
	}

	return b.String()
}

func TestEncode_Layout(t *testing.T) {
	data, err := Encode("▖▖▖▌▘")
	require.NoError(t, err)
	require.Len(t, data, HeaderSize+1)

	header, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, uint32(5), header.SymbolCount)
	require.Equal(t, format.CompressionNone, header.Compression)
	require.False(t, header.IsBigEndian())

	// ▖▖▖▌▘ = 0*81 + 0*27 + 0*9 + 2*3 + 1
	require.Equal(t, []byte{7}, data[HeaderSize:])
	require.Equal(t, hash.Checksum([]byte{7}), header.Checksum)
}

func TestEncode_Padding(t *testing.T) {
	tests := []struct {
		stream string
		want   []byte
	}{
		{"", []byte{}},
		{"▌", []byte{162}},
		{"▖▖▖▌", []byte{6}},
		{"▌▌▌▌▌", []byte{242}},
		{"▘▖▘▘▘▘", []byte{94, 81}},
	}

	for _, tt := range tests {
		data, err := Encode(tt.stream)
		require.NoError(t, err)
		require.Equal(t, tt.want, data[HeaderSize:], "stream %q", tt.stream)

		decoded, err := Decode(data)
		require.NoError(t, err)
		require.Equal(t, tt.stream, decoded)
	}
}

func TestEncoder_RoundTrip(t *testing.T) {
	streams := []string{"", "▖", "▖▖▖▌", "▘▘▌▌▌", symbolStream(7), symbolStream(4099)}

	for _, compression := range allCompressions {
		for _, bigEndian := range []bool{false, true} {
			opts := []EncoderOption{WithCompression(compression)}
			name := compression.String() + "/little"
			if bigEndian {
				opts = append(opts, WithBigEndian())
				name = compression.String() + "/big"
			}

			t.Run(name, func(t *testing.T) {
				enc, err := NewEncoder(opts...)
				require.NoError(t, err)
				require.Equal(t, compression, enc.Compression())
				require.Equal(t, bigEndian, enc.IsBigEndian())

				for _, stream := range streams {
					data, err := enc.Encode(stream)
					require.NoError(t, err)

					header, err := ParseHeader(data)
					require.NoError(t, err)
					require.Equal(t, compression, header.Compression)
					require.Equal(t, bigEndian, header.IsBigEndian())
					require.Equal(t, uint32(utf8.RuneCountInString(stream)), header.SymbolCount)

					decoded, err := Decode(data)
					require.NoError(t, err)
					require.Equal(t, stream, decoded)
				}
			})
		}
	}
}

func TestEncoder_CompressionShrinks(t *testing.T) {
	stream := strings.Repeat("▖▘▌", 10000)

	plain, err := Encode(stream)
	require.NoError(t, err)

	for _, compression := range allCompressions[1:] {
		enc, err := NewEncoder(WithCompression(compression))
		require.NoError(t, err)

		data, err := enc.Encode(stream)
		require.NoError(t, err)
		require.Less(t, len(data), len(plain), compression.String())
	}
}

func TestNewEncoder_InvalidCompression(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0x9)))
	require.Error(t, err)

	enc, err := NewEncoder(WithBigEndian(), WithLittleEndian())
	require.NoError(t, err)
	require.False(t, enc.IsBigEndian())
	require.Equal(t, format.CompressionNone, enc.Compression())
}

func TestEncode_InvalidChar(t *testing.T) {
	tests := []struct {
		stream string
		char   rune
		pos    int
	}{
		{"▖▖x", 'x', 2},
		{"a", 'a', 0},
		{"▖▌▌▘\u200d", '\u200d', 4},
		{"▘é", 'é', 1},
	}

	for _, tt := range tests {
		_, err := Encode(tt.stream)
		require.ErrorIs(t, err, errs.ErrInvalidChar)

		var charErr *errs.InvalidCharError
		require.True(t, errors.As(err, &charErr))
		require.Equal(t, tt.char, charErr.Char)
		require.Equal(t, tt.pos, charErr.Pos)
	}
}

func TestEncode_MaxSymbols(t *testing.T) {
	stream := strings.Repeat("▘", MaxSymbols)

	data, err := Encode(stream)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, stream, decoded)

	_, err = Encode(stream + "▘")
	require.ErrorIs(t, err, errs.ErrOverflow)
}

// craft builds an uncompressed pack with an arbitrary payload and a matching checksum.
func craft(count uint32, payload []byte) []byte {
	h := NewHeader()
	h.SymbolCount = count
	h.Checksum = hash.Checksum(payload)

	return append(h.Bytes(), payload...)
}

// craftCompressed builds a pack whose header names compression and whose body is taken as is.
func craftCompressed(compression format.CompressionType, count uint32, body []byte) []byte {
	h := NewHeader()
	h.Compression = compression
	h.SymbolCount = count

	return append(h.Bytes(), body...)
}

func TestDecode_Invalid(t *testing.T) {
	valid, err := Encode("▖▘▌▖▘▌▖")
	require.NoError(t, err)

	oversized, err := compress.NewLZ4Compressor().Compress(bytes.Repeat([]byte{121}, 4096))
	require.NoError(t, err)

	corrupt := func(mutate func([]byte)) []byte {
		b := append([]byte(nil), valid...)
		mutate(b)
		return b
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"nil", nil, errs.ErrInvalidHeaderSize},
		{"bad magic", corrupt(func(b []byte) { b[1] = 0x00 }), errs.ErrInvalidHeaderFlags},
		{"checksum", corrupt(func(b []byte) { b[8] ^= 0xFF }), errs.ErrChecksumMismatch},
		{"payload bit flip", corrupt(func(b []byte) { b[HeaderSize] ^= 0x01 }), errs.ErrChecksumMismatch},
		{"truncated payload", valid[:len(valid)-1], errs.ErrInvalidPayloadSize},
		{"extra payload", append(append([]byte(nil), valid...), 0), errs.ErrInvalidPayloadSize},
		{"byte above 242", craft(5, []byte{243}), errs.ErrInvalidPayloadByte},
		{"byte 255", craft(10, []byte{0, 255}), errs.ErrInvalidPayloadByte},
		{"non-zero padding", craft(4, []byte{1}), errs.ErrInvalidPayloadByte},
		{"none oversized", craftCompressed(format.CompressionNone, 5, []byte{1, 2}), errs.ErrInvalidPayloadSize},
		{"s2 declared length", craftCompressed(format.CompressionS2, 5, []byte{0x80, 0x80, 0x80, 0x80, 0x0F, 0x00, 0x00}), errs.ErrInvalidPayloadSize},
		{"zstd declared length", craftCompressed(format.CompressionZstd, 5, []byte{0x28, 0xB5, 0x2F, 0xFD, 0xA0, 0x00, 0x00, 0x10, 0x00, 0x01, 0x00, 0x00}), errs.ErrInvalidPayloadSize},
		{"lz4 oversized", craftCompressed(format.CompressionLZ4, 5, oversized), errs.ErrInvalidPayloadSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
}

func TestDecode_CorruptedCompressedPayload(t *testing.T) {
	for _, compression := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(compression.String(), func(t *testing.T) {
			enc, err := NewEncoder(WithCompression(compression))
			require.NoError(t, err)

			data, err := enc.Encode(symbolStream(500))
			require.NoError(t, err)

			garbage := append(data[:HeaderSize:HeaderSize], 0xFF, 0xFE, 0xFD, 0xFC, 0xFB, 0xFA)
			_, err = Decode(garbage)
			require.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	stream := symbolStream(4096)
	enc, _ := NewEncoder(WithCompression(format.CompressionS2))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = enc.Encode(stream)
	}
}

func BenchmarkDecode(b *testing.B) {
	enc, _ := NewEncoder(WithCompression(format.CompressionS2))
	data, _ := enc.Encode(symbolStream(4096))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(data)
	}
}
