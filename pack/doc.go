// Package pack stores a dollcode symbol stream in a compact binary container.
//
// A pack is a 16-byte header followed by the payload:
//
//	offset  size  field
//	0       2     options (little endian): bit 0 byte order, bits 4-15 magic (0xD0C0)
//	2       1     compression (format.CompressionType)
//	3       1     reserved, zero
//	4       4     symbol count
//	8       8     xxHash64 of the uncompressed payload
//
// The payload groups symbols by five and stores each group as one byte,
// d0*81 + d1*27 + d2*9 + d3*3 + d4, where d is the glyph index (▖=0, ▘=1,
// ▌=2). A short final group is padded with ▖. The payload is then compressed
// with the configured codec from package compress.
//
// Only plain symbol streams can be packed: delimited text streams contain
// joiners and are rejected.
package pack
