package huffc

import (
	"sort"

	"golang.org/x/sync/errgroup"
)

// CountTokens tallies the occurrences of each distinct token in the input.
// It is a pure function: an empty input yields an empty map, not an error.
func CountTokens[T Token](tokens []T) map[T]uint64 {
	freqs := make(map[T]uint64)
	for _, tok := range tokens {
		freqs[tok]++
	}
	return freqs
}

// countTokensParallel partitions the input into contiguous chunks, tallies a
// partial map per chunk on its own worker, and merges the partials by summing
// counts in chunk index order.  Summation is commutative and associative, so
// the result is identical to CountTokens for every worker count.
func countTokensParallel[T Token](tokens []T, workers int) map[T]uint64 {
	bounds := splitRange(len(tokens), workers)
	if len(bounds) <= 1 {
		return CountTokens(tokens)
	}

	partials := make([]map[T]uint64, len(bounds))
	var g errgroup.Group
	for i, b := range bounds {
		i, b := i, b
		g.Go(func() error {
			partials[i] = CountTokens(tokens[b[0]:b[1]])
			return nil
		})
	}
	// Counting cannot fail; Wait only synchronizes the workers.
	_ = g.Wait()

	merged := partials[0]
	for _, partial := range partials[1:] {
		for tok, count := range partial {
			merged[tok] += count
		}
	}
	return merged
}

// sortedCounts flattens a frequency map into the canonical entry slice,
// ascending by token.  Tree construction and the blob layout both depend on
// this order being deterministic.
func sortedCounts[T Token](freqs map[T]uint64) []tokenCount[T] {
	entries := make([]tokenCount[T], 0, len(freqs))
	for tok, count := range freqs {
		entries = append(entries, tokenCount[T]{Token: tok, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Token < entries[j].Token
	})
	return entries
}
