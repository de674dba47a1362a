package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor is a Snappy-compatible codec tuned for speed.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block. The block header declares the decoded
// length, which is checked against maxSize before s2 allocates the output.
func (c S2Compressor) Decompress(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > maxSize {
		return nil, fmt.Errorf("%w: s2 block declares %d bytes, limit %d", ErrSizeLimit, n, maxSize)
	}

	return s2.Decode(make([]byte, n), data)
}
