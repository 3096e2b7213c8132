// Package huffc implements a generic lossless compressor built on Huffman
// coding over an arbitrary ordered token alphabet: bytes, strings, or any
// other type satisfying cmp.Ordered.
//
// Compress counts token frequencies, builds a Huffman tree from the counts,
// derives a prefix-free code table, packs the token sequence into a bit
// buffer, and serializes {frequency table, packed bits, exact bit length}
// into a single blob.  Extract parses the blob, rebuilds the identical tree
// from the persisted frequency table, and walks it bit by bit to recover the
// original sequence.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2
package huffc
