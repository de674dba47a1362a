package compress

import "fmt"

// NoOpCompressor stores payloads as they are.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself. The result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself, or ErrSizeLimit when it is longer than
// maxSize. The result shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte, maxSize int) ([]byte, error) {
	if len(data) > maxSize {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrSizeLimit, len(data), maxSize)
	}

	return data, nil
}
