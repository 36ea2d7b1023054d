package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// BuildTree builds the Huffman tree for the given frequencies and returns its
// root.
//
// The tree is built with a min-heap keyed by weight.  Ties are broken by a
// sequence number: leaves are numbered in ascending Symbol order, and each
// new Internal node takes the next number after every node created before
// it.  The first node popped in each round becomes the left child.  This
// makes the tree, and hence the code table, a pure function of the
// frequencies.
//
// If ft holds exactly one symbol, the root is that symbol's Leaf.  If ft is
// empty, BuildTree returns ErrEmptyInput.
//
func BuildTree(ft FrequencyTable) (Node, error) {
	numSymbols := ft.Len()
	if numSymbols == 0 {
		return nil, ErrEmptyInput
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]weightedNode, 0, numSymbols)}
	for _, sym := range ft.symbols {
		h.list = append(h.list, weightedNode{
			node: &Leaf{weight: ft.counts[sym], symbol: sym},
			seq:  h.nextSeq,
		})
		h.nextSeq++
	}
	h.Init()

	// Step 2: merge the two lightest nodes until only the root remains.

	for round := 1; round < numSymbols; round++ {
		l := heap.Pop(&h).(weightedNode)
		r := heap.Pop(&h).(weightedNode)

		weight := l.node.Weight() + r.node.Weight()
		assert.Assertf(weight >= l.node.Weight(), "weight overflow merging %d + %d", l.node.Weight(), r.node.Weight())

		h.PushNode(&Internal{weight: weight, left: l.node, right: r.node})
	}

	assert.Assertf(h.Len() == 1, "expected 1 node left in heap, got %d", h.Len())
	root := heap.Pop(&h).(weightedNode).node
	assert.Assertf(root.Weight() == ft.Total(), "root weight %d != total count %d", root.Weight(), ft.Total())
	return root, nil
}

// type weightedNode + type nodeHeap {{{

type weightedNode struct {
	node Node
	seq  uint64
}

type nodeHeap struct {
	list    []weightedNode
	nextSeq uint64
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) PushNode(node Node) {
	heap.Push(h, weightedNode{node: node, seq: h.nextSeq})
	h.nextSeq++
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
