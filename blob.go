package huffc

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// blobEnvelope is the persisted layout of a compressed blob: the frequency
// table (entries ascending by token, counts exact), the packed payload, and
// the exact bit length of the meaningful part of the payload.  MessagePack
// provides the self-describing structured encoding; []byte marshals as a
// binary field, so the payload is stored byte for byte.
type blobEnvelope[T Token] struct {
	Freqs  []tokenCount[T] `msgpack:"freqs"`
	Data   []byte          `msgpack:"data"`
	BitLen uint64          `msgpack:"bit_len"`
}

func marshalBlob[T Token](entries []tokenCount[T], data []byte, bitLen uint64) ([]byte, error) {
	return msgpack.Marshal(&blobEnvelope[T]{
		Freqs:  entries,
		Data:   data,
		BitLen: bitLen,
	})
}

// unmarshalBlob parses and validates a compressed blob.  This is the only
// place the codec sees untrusted external input, so beyond the structural
// decode it checks every property later stages rely on: entries strictly
// ascending by token, no zero counts, and a bit length that fits inside the
// payload.
func unmarshalBlob[T Token](buf []byte) (*blobEnvelope[T], error) {
	var env blobEnvelope[T]
	if err := msgpack.Unmarshal(buf, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	}

	for i, entry := range env.Freqs {
		if entry.Count == 0 {
			return nil, fmt.Errorf("%w: zero frequency for token %v", ErrMalformedBlob, entry.Token)
		}
		if i > 0 && env.Freqs[i-1].Token >= entry.Token {
			return nil, fmt.Errorf("%w: frequency table keys out of order at index %d", ErrMalformedBlob, i)
		}
	}
	if env.BitLen > uint64(len(env.Data))*8 {
		return nil, fmt.Errorf("%w: bit length %d exceeds %d-byte payload", ErrMalformedBlob, env.BitLen, len(env.Data))
	}
	if len(env.Freqs) == 0 && env.BitLen != 0 {
		return nil, fmt.Errorf("%w: nonzero bit length with empty frequency table", ErrMalformedBlob)
	}
	return &env, nil
}
