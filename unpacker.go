package huffc

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// unpackTree decodes a packed bit buffer by per-bit descent of the Huffman
// tree: starting at the root, each 0 bit descends left and each 1 bit
// descends right; reaching a leaf emits its token and restarts at the root.
// Exactly bitLen bits are read, so the pad bits of the final byte are never
// semantically loaded.
//
// A single-leaf root means the degenerate one-token alphabet, whose lone
// token carries the one-bit code "0": each 0 bit emits the token, and any 1
// bit marks the stream as corrupt.
func unpackTree[T Token](data []byte, bitLen uint64, root *node[T], sizeHint int) ([]T, error) {
	r := bitio.NewReader(bytes.NewReader(data))
	out := make([]T, 0, sizeHint)

	if root.isLeaf() {
		for i := uint64(0); i < bitLen; i++ {
			bit, err := r.ReadBool()
			if err != nil {
				return nil, fmt.Errorf("%w: payload ends before bit %d of %d", ErrCorruptStream, i, bitLen)
			}
			if bit {
				return nil, fmt.Errorf("%w: nonzero bit %d in single-token stream", ErrCorruptStream, i)
			}
			out = append(out, root.token)
		}
		return out, nil
	}

	walk := root
	for i := uint64(0); i < bitLen; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("%w: payload ends before bit %d of %d", ErrCorruptStream, i, bitLen)
		}
		if bit {
			walk = walk.right
		} else {
			walk = walk.left
		}
		if walk.isLeaf() {
			out = append(out, walk.token)
			walk = root
		}
	}
	if walk != root {
		return nil, fmt.Errorf("%w: %d bits end in the middle of a code", ErrCorruptStream, bitLen)
	}
	return out, nil
}

// unpackTable decodes a packed bit buffer by exact-match lookup: bits
// accumulate into a scratch code, and whenever the scratch code matches a
// code table entry the mapped token is emitted and the scratch code resets.
// Prefix-freedom guarantees each match is unambiguous and that a match
// arrives within MaxSize bits; a scratch code outgrowing the table's longest
// code is therefore a fatal consistency failure, not grounds for reading on.
//
// unpackTree and unpackTable produce identical output for identical input.
func unpackTable[T Token](data []byte, bitLen uint64, cb *Codebook[T], sizeHint int) ([]T, error) {
	inverse := cb.inverse()
	r := bitio.NewReader(bytes.NewReader(data))
	out := make([]T, 0, sizeHint)

	var scratch Code
	for i := uint64(0); i < bitLen; i++ {
		bit, err := r.ReadBits(1)
		if err != nil {
			return nil, fmt.Errorf("%w: payload ends before bit %d of %d", ErrCorruptStream, i, bitLen)
		}
		scratch = scratch.appendBit(bit)
		if tok, found := inverse[scratch]; found {
			out = append(out, tok)
			scratch = Code{}
			continue
		}
		if scratch.Size >= cb.MaxSize() {
			return nil, fmt.Errorf("%w: %s matches no code", ErrCorruptStream, scratch)
		}
	}
	if scratch.Size != 0 {
		return nil, fmt.Errorf("%w: %d bits end in the middle of a code", ErrCorruptStream, bitLen)
	}
	return out, nil
}
