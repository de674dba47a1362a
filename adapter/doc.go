// Package adapter sits between raw user input and the dollcode codecs.
//
// The codec packages only accept parsed values: numeric.Encode takes a
// uint64 and text.Codec takes printable ASCII. This package does the rest:
//
//   - Classify decides what a raw string looks like.
//   - Converter parses decimal and hexadecimal input, forwards to the right
//     codec and renders the result.
//   - Message and ExitCode turn any returned error into a stable human
//     readable line and a process exit status.
//
// The CLI and the js/wasm entry point are thin wrappers around this package.
package adapter
