package huffman

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.  No
// other implementations exist.
type Node interface {
	// Weight is the total number of occurrences of every symbol in the
	// subtree rooted at this node.
	Weight() uint64

	isNode()
}

// Leaf is a Node that holds one Symbol.
type Leaf struct {
	weight uint64
	symbol Symbol
}

// Weight implements Node.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

// Symbol returns the Symbol held by this Leaf.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children.  Its weight is the sum of
// theirs.
type Internal struct {
	weight uint64
	left   Node
	right  Node
}

// Weight implements Node.
func (in *Internal) Weight() uint64 {
	return in.weight
}

// Left returns the child reached by bit 0.
func (in *Internal) Left() Node {
	return in.left
}

// Right returns the child reached by bit 1.
func (in *Internal) Right() Node {
	return in.right
}

// Child returns Left for bit 0 and Right for bit 1.
func (in *Internal) Child(bit uint64) Node {
	if bit == 0 {
		return in.left
	}
	return in.right
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// DumpTree writes an indented rendering of the tree rooted at root, one node
// per line, left child before right child.
func DumpTree(w io.Writer, root Node) (int64, error) {
	var buf bytes.Buffer
	var walk func(node Node, depth int, edge string)
	walk = func(node Node, depth int, edge string) {
		buf.WriteString(strings.Repeat("\t", depth))
		buf.WriteString(edge)
		switch x := node.(type) {
		case *Leaf:
			fmt.Fprintf(&buf, "Leaf(%d, %v)\n", x.weight, x.symbol)
		case *Internal:
			fmt.Fprintf(&buf, "Internal(%d)\n", x.weight)
			walk(x.left, depth+1, "0: ")
			walk(x.right, depth+1, "1: ")
		}
	}
	if root != nil {
		walk(root, 0, "")
	}
	return buf.WriteTo(w)
}
