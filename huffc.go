package huffc

import (
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/chronos-tachyon/assert"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vmihailenco/msgpack/v5"
)

// Config holds configuration for a Codec.
type Config struct {
	Parallelism int // Worker count for counting and packing (<= 1 = sequential)
	CacheSize   int // Codebooks retained across calls (0 = no cache)
}

// Option is a functional option for configuring a Codec.
type Option func(*Config)

// WithParallelism sets the number of workers used to count frequencies and
// pack bits.  The compressed bytes are identical for every worker count;
// parallelism only changes how the work is scheduled.
func WithParallelism(n int) Option {
	return func(c *Config) {
		c.Parallelism = n
	}
}

// WithCodebookCache keeps up to size built codebooks in an LRU cache keyed by
// frequency table, so repeated calls over the same alphabet skip tree
// reconstruction.  Caching never changes output: a cached codebook is built
// from the identical frequency table and is therefore bit-identical to a
// fresh one.
func WithCodebookCache(size int) Option {
	return func(c *Config) {
		c.CacheSize = size
	}
}

// Codec is a reusable compressor/extractor for one token type.  The zero
// configuration is sequential and cache-free; a Codec is safe for concurrent
// use either way.
type Codec[T Token] struct {
	parallelism int
	cache       *lru.Cache[uint64, *Codebook[T]]
}

// NewCodec creates a new Codec with the given options.
func NewCodec[T Token](opts ...Option) *Codec[T] {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Codec[T]{parallelism: cfg.Parallelism}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[uint64, *Codebook[T]](cfg.CacheSize)
		assert.Assertf(err == nil, "lru.New(%d): %v", cfg.CacheSize, err)
		c.cache = cache
	}
	return c
}

// Compress encodes a token sequence into a compressed blob.  An empty
// sequence is legal and yields a minimal blob representing zero tokens.
func (c *Codec[T]) Compress(tokens []T) ([]byte, error) {
	if len(tokens) == 0 {
		return marshalBlob[T](nil, nil, 0)
	}

	var freqs map[T]uint64
	if c.parallelism > 1 {
		freqs = countTokensParallel(tokens, c.parallelism)
	} else {
		freqs = CountTokens(tokens)
	}
	entries := sortedCounts(freqs)

	cb, err := c.codebook(entries)
	if err != nil {
		return nil, err
	}

	data, bitLen, err := packParallel(tokens, cb, c.parallelism)
	if err != nil {
		return nil, err
	}
	return marshalBlob(entries, data, bitLen)
}

// Extract decodes a compressed blob back into the original token sequence.
// It fails with ErrMalformedBlob on structurally invalid input and with
// ErrCorruptStream on a structurally valid but logically inconsistent bit
// payload.  Both are deterministic, data-dependent failures; neither is ever
// silently corrected.
func (c *Codec[T]) Extract(buf []byte) ([]T, error) {
	env, err := unmarshalBlob[T](buf)
	if err != nil {
		return nil, err
	}
	if len(env.Freqs) == 0 {
		return []T{}, nil
	}

	cb, err := c.codebook(env.Freqs)
	if errors.Is(err, errCodeTooLong) {
		// Reachable only through a fabricated frequency table; counting
		// real input cannot produce codes this long.
		return nil, fmt.Errorf("%w: %v", ErrMalformedBlob, err)
	} else if err != nil {
		return nil, err
	}

	total, exact := totalCount(env.Freqs)
	hint := total
	if env.BitLen < hint {
		hint = env.BitLen
	}

	tokens, err := unpackTree(env.Data, env.BitLen, cb.root, int(hint))
	if err != nil {
		return nil, err
	}
	if exact && uint64(len(tokens)) != total {
		return nil, fmt.Errorf("%w: decoded %d tokens, frequency table promises %d", ErrCorruptStream, len(tokens), total)
	}
	return tokens, nil
}

// codebook builds (or retrieves from the cache) the codebook for a canonical
// entry slice.
func (c *Codec[T]) codebook(entries []tokenCount[T]) (*Codebook[T], error) {
	if c.cache == nil {
		return newCodebook(entries)
	}

	key, err := cacheKey(entries)
	if err != nil {
		return newCodebook(entries)
	}
	if cb, found := c.cache.Get(key); found {
		return cb, nil
	}
	cb, err := newCodebook(entries)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, cb)
	return cb, nil
}

// cacheKey hashes the canonical encoding of a frequency table.  Two tables
// with the same (token, count) pairs in the same order always hash alike, so
// a cache hit stands in for rebuilding the identical tree.
func cacheKey[T Token](entries []tokenCount[T]) (uint64, error) {
	raw, err := msgpack.Marshal(entries)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(raw), nil
}

// totalCount sums the counts of a frequency table with saturation.  exact is
// false if the sum overflowed, in which case the total is unusable for
// cross-checking the decoded token count.
func totalCount[T Token](entries []tokenCount[T]) (total uint64, exact bool) {
	exact = true
	for _, entry := range entries {
		sum := total + entry.Count
		if sum < total {
			return math.MaxUint64, false
		}
		total = sum
	}
	return total, exact
}

// Compress encodes a token sequence into a compressed blob using a default
// sequential Codec.
func Compress[T Token](tokens []T) ([]byte, error) {
	return NewCodec[T]().Compress(tokens)
}

// Extract decodes a blob produced by Compress back into the original token
// sequence using a default sequential Codec.
func Extract[T Token](buf []byte) ([]T, error) {
	return NewCodec[T]().Extract(buf)
}
