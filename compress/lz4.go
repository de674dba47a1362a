package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// minLZ4Output is the first decompression buffer size for tiny blocks.
const minLZ4Output = 64

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor is an LZ4 block codec.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block using a pooled lz4.Compressor.
//
// dst is sized to CompressBlockBound, so lz4 emits a literal-only block for
// incompressible input instead of reporting a zero length.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes an LZ4 block.
//
// A block does not store its decoded size, so the buffer starts at 4x the
// input and doubles on ErrInvalidSourceShortBuffer, never past maxSize.
func (c LZ4Compressor) Decompress(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	maxSize = max(maxSize, 0)
	bufSize := min(max(len(data)*4, minLZ4Output), maxSize)
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
		if bufSize >= maxSize {
			return nil, fmt.Errorf("%w: lz4 block does not fit %d bytes: %w", ErrSizeLimit, maxSize, err)
		}

		bufSize = min(bufSize*2, maxSize)
	}
}
