package huffc

import (
	"cmp"
)

// Token is the constraint satisfied by any type usable as a compression
// alphabet.  It requires exactly what the codec relies on: a total order
// (which supplies equality and a deterministic iteration order for the
// frequency table), value semantics, and usability as a map key.
type Token = cmp.Ordered

// tokenCount pairs a token with its number of occurrences.  A slice of
// tokenCounts sorted ascending by token is the canonical form of a frequency
// table: it seeds tree construction and is persisted verbatim in the blob so
// that the decoder rebuilds the identical tree.
type tokenCount[T Token] struct {
	Token T      `msgpack:"t"`
	Count uint64 `msgpack:"c"`
}
