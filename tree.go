package huffc

import (
	"container/heap"
	"math"
)

// node is one vertex of a Huffman tree.  Leaves carry a token; internal
// nodes carry the summed frequency of exactly two children.  left and right
// are either both nil (leaf) or both non-nil (internal), and every node
// exclusively owns its children, so no sharing and no cycles are possible by
// construction.
type node[T Token] struct {
	freq  uint64
	token T
	left  *node[T]
	right *node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil
}

// buildTree constructs a Huffman tree from frequency entries sorted
// ascending by token.  It seeds a min-heap with one leaf per entry, then
// repeatedly combines the two lowest-frequency nodes into a parent carrying
// their summed frequency until a single root remains.
//
// The heap's total order is (frequency, then insertion sequence number), so
// ties between equal-frequency nodes are resolved by a deterministic function
// of the entry order alone.  Independent rebuilds from the same entries
// therefore produce bit-identical trees, which is what lets the decoder
// reconstruct the encoder's tree from the persisted frequency table.
//
// Of the two nodes extracted per combination step, the first (lowest) becomes
// the right child and the second the left, placing more frequent subtrees on
// 0-valued paths.
func buildTree[T Token](entries []tokenCount[T]) (*node[T], error) {
	if len(entries) == 0 {
		return nil, ErrEmptyAlphabet
	}

	h := nodeHeap[T]{list: make([]nodeAndSeq[T], len(entries))}
	for i, entry := range entries {
		h.list[i] = nodeAndSeq[T]{
			node: &node[T]{freq: entry.Count, token: entry.Token},
			seq:  i,
		}
	}
	h.Init()

	seq := len(entries)
	for h.Len() > 1 {
		right := heap.Pop(&h).(nodeAndSeq[T])
		left := heap.Pop(&h).(nodeAndSeq[T])

		// Compute the combined frequency using saturating addition.
		freqSum := left.node.freq + right.node.freq
		if freqSum < left.node.freq {
			freqSum = math.MaxUint64
		}

		parent := &node[T]{freq: freqSum, left: left.node, right: right.node}
		heap.Push(&h, nodeAndSeq[T]{node: parent, seq: seq})
		seq++
	}

	return heap.Pop(&h).(nodeAndSeq[T]).node, nil
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq[T Token] struct {
	node *node[T]
	seq  int
}

type nodeHeap[T Token] struct {
	list []nodeAndSeq[T]
}

func (h *nodeHeap[T]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[T]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[T]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[T]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.freq != b.node.freq {
		return a.node.freq < b.node.freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap[T]) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq[T]))
}

func (h *nodeHeap[T]) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[int])(nil)

// }}}
