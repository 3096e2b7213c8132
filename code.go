package huffc

import (
	"fmt"
	"strconv"
)

// MaxCodeSize is the longest code the codec can represent, in bits.  A
// frequency table only approaches this limit through a Fibonacci-like count
// distribution summing past 2^62 occurrences, which cannot be produced by
// counting an in-memory token sequence.
const MaxCodeSize = 64

// Code represents a sequence of bits: the root-to-leaf path of one token in
// the Huffman tree, with a left edge contributing a 0 and a right edge a 1.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// path is the most significant of the Size low-order bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// appendBit returns the Code extended by one trailing bit.
func (hc Code) appendBit(bit uint64) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | bit}
}

// isPrefixOf reports whether hc is a proper prefix of other.
func (hc Code) isPrefixOf(other Code) bool {
	if hc.Size >= other.Size {
		return false
	}
	return other.Bits>>(other.Size-hc.Size) == hc.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
