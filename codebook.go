package huffc

// Codebook holds the Huffman tree for one alphabet together with the code
// table derived from it: one prefix-free code per distinct token, each code
// being the token's root-to-leaf path with left = 0 and right = 1.
type Codebook[T Token] struct {
	codes   map[T]Code
	root    *node[T]
	minSize byte
	maxSize byte
}

// NewCodebook builds a Codebook from a token frequency map.  The map's keys
// iterate in their natural order for the purposes of tree construction, so
// the same map always yields the same codes.  An empty map is rejected with
// ErrEmptyAlphabet.
func NewCodebook[T Token](freqs map[T]uint64) (*Codebook[T], error) {
	return newCodebook(sortedCounts(freqs))
}

// newCodebook builds a Codebook from canonical (token-ascending) entries.
//
// An alphabet of exactly one token degenerates to a single-leaf tree, whose
// root-to-leaf path is empty.  A zero-length code carries no bits to consume
// per emitted token and cannot be replayed by a bit-at-a-time decoder, so the
// lone token is assigned the one-bit code "0" instead, exactly as if it had a
// sibling of frequency zero.
func newCodebook[T Token](entries []tokenCount[T]) (*Codebook[T], error) {
	root, err := buildTree(entries)
	if err != nil {
		return nil, err
	}

	cb := &Codebook[T]{
		codes: make(map[T]Code, len(entries)),
		root:  root,
	}
	if root.isLeaf() {
		cb.codes[root.token] = MakeCode(1, 0)
		cb.minSize, cb.maxSize = 1, 1
		return cb, nil
	}
	if err := cb.assign(root, Code{}); err != nil {
		return nil, err
	}
	return cb, nil
}

// assign walks every path from root to leaf, appending a 0 for each left
// edge and a 1 for each right edge, and records the accumulated path as the
// leaf token's code.
func (cb *Codebook[T]) assign(n *node[T], prefix Code) error {
	if n.isLeaf() {
		cb.codes[n.token] = prefix
		if cb.minSize == 0 || prefix.Size < cb.minSize {
			cb.minSize = prefix.Size
		}
		if prefix.Size > cb.maxSize {
			cb.maxSize = prefix.Size
		}
		return nil
	}
	if prefix.Size == MaxCodeSize {
		return errCodeTooLong
	}
	if err := cb.assign(n.left, prefix.appendBit(0)); err != nil {
		return err
	}
	return cb.assign(n.right, prefix.appendBit(1))
}

// Code returns the code assigned to the given token, if any.
func (cb *Codebook[T]) Code(tok T) (Code, bool) {
	hc, found := cb.codes[tok]
	return hc, found
}

// Len is the number of distinct tokens in the alphabet.
func (cb *Codebook[T]) Len() int {
	return len(cb.codes)
}

// MinSize is the bit length of the shortest assigned code.
func (cb *Codebook[T]) MinSize() byte {
	return cb.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (cb *Codebook[T]) MaxSize() byte {
	return cb.maxSize
}

// inverse returns the code-to-token lookup table used by the table-matching
// unpacker.  Exactly the leaf codes appear as keys; prefix-freedom guarantees
// the mapping is unambiguous.
func (cb *Codebook[T]) inverse() map[Code]T {
	table := make(map[Code]T, len(cb.codes))
	for tok, hc := range cb.codes {
		table[hc] = tok
	}
	return table
}
