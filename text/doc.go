// Package text encodes printable ASCII text as dollcode symbol streams.
//
// Each character of the 95-entry Alphabet becomes one segment. The canonical
// convention writes the 0-based alphabet position as five standard ternary
// digits (▖=0, ▘=1, ▌=2), most significant first:
//
//	'A' (0)  -> ▖▖▖▖▖
//	'H' (7)  -> ▖▖▖▌▘
//	'~' (94) -> ▘▖▘▘▘
//
// Because every segment has the same width, segments are concatenated
// without separators and a stream can be cut at any multiple of SegmentSize.
//
// # Conventions
//
// A Codec may instead be configured for the delimited convention, where each
// character is the biased ternary form of its ASCII code (see package numeric)
// terminated by U+200D ZERO WIDTH JOINER. Streams of the two conventions are
// not interchangeable.
//
// # Digit values
//
// The text codec uses digit values 0, 1, 2 while package numeric uses 1, 2, 3
// for the same glyphs. The packages keep separate digit tables.
package text
