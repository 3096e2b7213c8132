package huffc

import (
	"errors"
)

var (
	// ErrEmptyAlphabet is reported when a Huffman tree is requested for a
	// frequency table with zero distinct tokens.
	ErrEmptyAlphabet = errors.New("huffc: empty alphabet")

	// ErrUnknownToken is reported when a token to be packed has no entry
	// in the code table.  It indicates that the table and the sequence
	// being encoded are inconsistent with each other.
	ErrUnknownToken = errors.New("huffc: token not present in code table")

	// ErrMalformedBlob is reported when a compressed blob is truncated or
	// does not match the expected schema.
	ErrMalformedBlob = errors.New("huffc: malformed blob")

	// ErrCorruptStream is reported when a structurally valid blob carries
	// a bit payload that is inconsistent with its own frequency table, for
	// example a payload that ends in the middle of a code.
	ErrCorruptStream = errors.New("huffc: corrupt bit stream")
)

// errCodeTooLong is an internal guard against frequency tables whose tree
// shape would require codes longer than a Code can hold.  Such tables cannot
// arise from counting an in-memory token sequence; a hostile blob can carry
// one, and is rejected as malformed at the Extract boundary.
var errCodeTooLong = errors.New("huffc: code length exceeds 64 bits")
