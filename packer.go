package huffc

import (
	"bytes"
	"fmt"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"golang.org/x/sync/errgroup"
)

// pack encodes a token sequence into a packed bit buffer by concatenating
// each token's code in sequence order, most significant bit first within each
// byte.  It returns the packed bytes and the exact number of meaningful bits;
// the trailing pad bits of the final byte are zero and carry no meaning.
//
// A lookup miss means the code table and the sequence are inconsistent with
// each other.  The pipeline never constructs such a pair itself, but the
// check guards tokens supplied from outside it.
func pack[T Token](tokens []T, cb *Codebook[T]) ([]byte, uint64, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	var bitLen uint64
	for _, tok := range tokens {
		hc, found := cb.Code(tok)
		if !found {
			return nil, 0, fmt.Errorf("%w: %v", ErrUnknownToken, tok)
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return nil, 0, err
		}
		bitLen += uint64(hc.Size)
	}
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), bitLen, nil
}

// packParallel packs contiguous chunks of the sequence on independent
// workers and then concatenates the partial bit buffers in chunk index
// order.  Concatenation in that fixed order reproduces the sequential bit
// stream exactly, so the output is byte-identical to pack for every worker
// count and scheduling.
func packParallel[T Token](tokens []T, cb *Codebook[T], workers int) ([]byte, uint64, error) {
	bounds := splitRange(len(tokens), workers)
	if len(bounds) <= 1 {
		return pack(tokens, cb)
	}

	type partial struct {
		data   []byte
		bitLen uint64
	}
	partials := make([]partial, len(bounds))

	var g errgroup.Group
	for i, b := range bounds {
		i, b := i, b
		g.Go(func() error {
			data, bitLen, err := pack(tokens[b[0]:b[1]], cb)
			if err != nil {
				return err
			}
			partials[i] = partial{data, bitLen}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	var bitLen uint64
	for _, p := range partials {
		whole := int(p.bitLen / 8)
		rem := byte(p.bitLen % 8)
		assert.Assertf(int((p.bitLen+7)/8) <= len(p.data), "partial buffer of %d bytes cannot hold %d bits", len(p.data), p.bitLen)
		for _, octet := range p.data[:whole] {
			if err := w.WriteBits(uint64(octet), 8); err != nil {
				return nil, 0, err
			}
		}
		if rem > 0 {
			tail := p.data[whole] >> (8 - rem)
			if err := w.WriteBits(uint64(tail), rem); err != nil {
				return nil, 0, err
			}
		}
		bitLen += p.bitLen
	}
	if err := w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), bitLen, nil
}
