package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// maxZstdDecoded caps what a pooled decoder will ever allocate for one call,
// whatever limit the caller passes.
const maxZstdDecoded = 4 << 20

// Decoders and encoders are reused: klauspost/compress/zstd allocates heavily
// on construction and runs allocation-free after warmup.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(maxZstdDecoded),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false), // the pack header already carries an xxHash64
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// ZstdCompressor is a Zstandard codec, the best ratio of the built-in codecs.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstandard codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decodes Zstandard frames. A frame that declares a content size
// above maxSize is rejected before decoding.
func (c ZstdCompressor) Decompress(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var frame zstd.Header
	if err := frame.Decode(data); err == nil && frame.HasFCS && frame.FrameContentSize > uint64(max(maxSize, 0)) {
		return nil, fmt.Errorf("%w: zstd frame declares %d bytes, limit %d", ErrSizeLimit, frame.FrameContentSize, maxSize)
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(decompressed) > maxSize {
		return nil, fmt.Errorf("%w: zstd payload is %d bytes, limit %d", ErrSizeLimit, len(decompressed), maxSize)
	}

	return decompressed, nil
}
