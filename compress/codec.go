// Package compress provides the payload codecs of the pack container.
//
// Packed symbol payloads are dense (five ternary digits per byte) and small,
// typically a few hundred bytes, so every codec here works on whole buffers.
// All built-in codecs are stateless values and safe for concurrent use.
package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/dollcode/format"
)

// Compressor compresses a whole payload.
//
// The returned slice is owned by the caller; the input is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// ErrSizeLimit reports a payload that would decompress past the caller's limit.
var ErrSizeLimit = errors.New("decompressed size exceeds limit")

// Decompressor reverses a Compressor of the same algorithm.
//
// maxSize bounds the decompressed size. Implementations check it before
// allocating wherever the format declares its output size, and fail with
// ErrSizeLimit instead of producing a larger result. It returns an error when
// the input is corrupted or was produced by another algorithm.
type Decompressor interface {
	Decompress(data []byte, maxSize int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns a new Codec for compressionType.
//
// target names the payload being configured and only appears in the error.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
