package huffc

import (
	"errors"
	"math/rand"
	"testing"
)

// treesEqual reports structural bit-for-bit equality of two trees.
func treesEqual[T Token](a, b *node[T]) bool {
	if a.isLeaf() != b.isLeaf() || a.freq != b.freq {
		return false
	}
	if a.isLeaf() {
		return a.token == b.token
	}
	return treesEqual(a.left, b.left) && treesEqual(a.right, b.right)
}

// countShape returns the number of leaves and internal nodes, and records
// each leaf token's visit count.
func countShape[T Token](n *node[T], seen map[T]int) (leaves, internals int) {
	if n.isLeaf() {
		seen[n.token]++
		return 1, 0
	}
	ll, li := countShape(n.left, seen)
	rl, ri := countShape(n.right, seen)
	return ll + rl, li + ri + 1
}

func TestKnownTreeCodes(t *testing.T) {
	// -- a: 30
	//    ----- b: 15
	//    ----- c: 10
	// a should be 0
	// b should be 10
	// c should be 11
	cb, err := NewCodebook(map[string]uint64{"a": 30, "b": 15, "c": 10})
	if err != nil {
		t.Fatalf("NewCodebook failed: %v", err)
	}

	type testRow struct {
		token  string
		expect Code
	}

	testData := [...]testRow{
		{token: "a", expect: MakeCode(1, 0b0)},
		{token: "b", expect: MakeCode(2, 0b10)},
		{token: "c", expect: MakeCode(2, 0b11)},
	}
	for _, row := range testData {
		t.Run(row.token, func(t *testing.T) {
			actual, found := cb.Code(row.token)
			if !found {
				t.Fatalf("no code for token %q", row.token)
			}
			if actual != row.expect {
				t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestTreeShape(t *testing.T) {
	rng := rand.New(rand.NewSource(0x7e57))

	for _, numTokens := range []int{2, 3, 5, 26, 256} {
		entries := make([]tokenCount[int], numTokens)
		for i := range entries {
			entries[i] = tokenCount[int]{Token: i, Count: uint64(1 + rng.Intn(1000))}
		}

		root, err := buildTree(entries)
		if err != nil {
			t.Fatalf("buildTree(%d entries) failed: %v", numTokens, err)
		}

		seen := make(map[int]int)
		leaves, internals := countShape(root, seen)
		if leaves != numTokens {
			t.Errorf("wrong leaf count for n=%d:\n\texpect: %d\n\tactual: %d", numTokens, numTokens, leaves)
		}
		if internals != numTokens-1 {
			t.Errorf("wrong internal node count for n=%d:\n\texpect: %d\n\tactual: %d", numTokens, numTokens-1, internals)
		}
		for _, entry := range entries {
			if seen[entry.Token] != 1 {
				t.Errorf("token %d appears %d times as a leaf", entry.Token, seen[entry.Token])
			}
		}
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	entries := []tokenCount[byte]{
		{Token: 'a', Count: 7},
		{Token: 'b', Count: 7},
		{Token: 'c', Count: 7},
		{Token: 'd', Count: 7},
		{Token: 'e', Count: 3},
	}

	first, err := buildTree(entries)
	if err != nil {
		t.Fatalf("buildTree failed: %v", err)
	}
	for i := 0; i < 16; i++ {
		again, err := buildTree(entries)
		if err != nil {
			t.Fatalf("buildTree failed on rebuild %d: %v", i, err)
		}
		if !treesEqual(first, again) {
			t.Fatalf("rebuild %d produced a different tree", i)
		}
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	_, err := buildTree[int](nil)
	if !errors.Is(err, ErrEmptyAlphabet) {
		t.Errorf("wrong error:\n\texpect: %v\n\tactual: %v", ErrEmptyAlphabet, err)
	}
}
