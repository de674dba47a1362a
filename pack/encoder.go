package pack

import (
	"fmt"
	"unicode/utf8"

	"github.com/arloliu/dollcode/compress"
	"github.com/arloliu/dollcode/errs"
	"github.com/arloliu/dollcode/format"
	"github.com/arloliu/dollcode/internal/hash"
	"github.com/arloliu/dollcode/internal/options"
)

// Encoder packs symbol streams with a fixed compression and byte order.
//
// An Encoder is immutable after NewEncoder and safe for concurrent use.
type Encoder struct {
	header Header
	codec  compress.Codec
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the payload compression. The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		codec, err := compress.CreateCodec(compression, "pack payload")
		if err != nil {
			return err
		}
		e.codec = codec
		e.header.Compression = compression

		return nil
	})
}

// WithBigEndian writes the header fields in big-endian order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.WithBigEndian()
	})
}

// WithLittleEndian writes the header fields in little-endian order. This is the default.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.WithLittleEndian()
	})
}

// NewEncoder creates an Encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		header: NewHeader(),
		codec:  compress.NewNoOpCompressor(),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Compression returns the payload compression of e.
func (e *Encoder) Compression() format.CompressionType {
	return e.header.Compression
}

// IsBigEndian reports whether e writes big-endian headers.
func (e *Encoder) IsBigEndian() bool {
	return e.header.IsBigEndian()
}

// Encode packs stream, which must consist of symbols only.
//
// A rune that is not a symbol fails with *errs.InvalidCharError at its rune
// position; more than MaxSymbols symbols fail with errs.ErrOverflow.
func (e *Encoder) Encode(stream string) ([]byte, error) {
	payload, count, err := packSymbols(stream)
	if err != nil {
		return nil, err
	}

	header := e.header
	header.SymbolCount = uint32(count) //nolint: gosec
	header.Checksum = hash.Checksum(payload)

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress pack payload: %w", err)
	}

	out := make([]byte, 0, HeaderSize+len(compressed))
	out = header.AppendTo(out)
	out = append(out, compressed...)

	return out, nil
}

// packSymbols converts stream into the 5-symbols-per-byte payload.
func packSymbols(stream string) ([]byte, int, error) {
	payload := make([]byte, 0, (utf8.RuneCountInString(stream)+SymbolsPerByte-1)/SymbolsPerByte)

	var group, count int
	for _, r := range stream {
		digit := format.Symbol(r).Index()
		if digit < 0 {
			return nil, 0, errs.NewInvalidChar(r, count)
		}
		if count == MaxSymbols {
			return nil, 0, fmt.Errorf("%w: stream exceeds %d symbols", errs.ErrOverflow, MaxSymbols)
		}

		group = group*3 + digit
		count++

		if count%SymbolsPerByte == 0 {
			payload = append(payload, byte(group))
			group = 0
		}
	}

	if rem := count % SymbolsPerByte; rem != 0 {
		for i := rem; i < SymbolsPerByte; i++ {
			group *= 3
		}
		payload = append(payload, byte(group))
	}

	return payload, count, nil
}

var defaultEncoder = &Encoder{header: NewHeader(), codec: compress.NewNoOpCompressor()}

// Encode packs stream without compression and with a little-endian header.
func Encode(stream string) ([]byte, error) {
	return defaultEncoder.Encode(stream)
}
