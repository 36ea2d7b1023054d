package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
	jsoniter "github.com/json-iterator/go"
)

// placeholderCode is the codeword of the only symbol of a one-symbol text.
// A lone Leaf has no path bits, so each occurrence is spent as one 0 bit to
// keep the symbol count recoverable.
var placeholderCode = MakeCode(1, 0)

// Entry pairs a Symbol with its codeword.
type Entry struct {
	Symbol Symbol
	Code   Code
}

// CodeTable maps each Symbol of a Huffman tree to its codeword.  It is
// immutable once built.
type CodeTable struct {
	codes   map[Symbol]Code
	entries []Entry
	minSize byte
	maxSize byte
}

// BuildCodeTable walks the tree rooted at root and assigns each leaf the
// path that reaches it, with 0 for a left edge and 1 for a right edge.
//
// If root is itself a Leaf, its symbol is assigned the one-bit codeword "0".
//
func BuildCodeTable(root Node) CodeTable {
	assert.Assertf(root != nil, "BuildCodeTable called with nil root")

	codes := make(map[Symbol]Code)
	if leaf, ok := root.(*Leaf); ok {
		codes[leaf.symbol] = placeholderCode
		return newCodeTable(codes)
	}

	// Walk the tree with an explicit stack.  stackItem.x records where we
	// are within an Internal node:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		node *Internal
		code Code
		x    byte
	}

	stack := make([]stackItem, 0, MaxCodeSize)

	processChild := func(child Node, code Code) {
		switch x := child.(type) {
		case *Leaf:
			codes[x.symbol] = code
		case *Internal:
			stack = append(stack, stackItem{node: x, code: code})
		default:
			assert.Assertf(false, "unexpected node type %T", child)
		}
	}

	processChild(root, Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.node.left, top.code.Append(0))
		case 1:
			processChild(top.node.right, top.code.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}

	return newCodeTable(codes)
}

func newCodeTable(codes map[Symbol]Code) CodeTable {
	entries := make(bySize, 0, len(codes))
	for sym, hc := range codes {
		entries = append(entries, Entry{Symbol: sym, Code: hc})
	}
	entries.Sort()

	var minSize, maxSize byte
	if len(entries) != 0 {
		minSize = entries[0].Code.Size
		maxSize = entries[len(entries)-1].Code.Size
	}

	return CodeTable{
		codes:   codes,
		entries: entries,
		minSize: minSize,
		maxSize: maxSize,
	}
}

// Lookup returns the codeword for sym.
func (ct CodeTable) Lookup(sym Symbol) (Code, bool) {
	hc, found := ct.codes[sym]
	return hc, found
}

// Len returns the number of symbols in the table.
func (ct CodeTable) Len() int {
	return len(ct.entries)
}

// MinSize is the bit length of the shortest codeword.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest codeword.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// Entries returns every (Symbol, Code) pair, sorted by ascending codeword
// length and then by Symbol.  The order is for display only.
func (ct CodeTable) Entries() []Entry {
	out := make([]Entry, len(ct.entries))
	copy(out, ct.entries)
	return out
}

// Map returns a fresh map from each symbol to its codeword as a string of
// '0' and '1' characters.
func (ct CodeTable) Map() map[Symbol]string {
	out := make(map[Symbol]string, len(ct.codes))
	for sym, hc := range ct.codes {
		out[sym] = hc.BitString()
	}
	return out
}

// AverageLength returns the mean number of bits per symbol when encoding a
// text with the given frequencies.  Symbols of ft missing from the table
// are ignored.
func (ct CodeTable) AverageLength(ft FrequencyTable) float64 {
	var bits, count uint64
	for _, sym := range ft.symbols {
		hc, found := ct.codes[sym]
		if !found {
			continue
		}
		n := ft.counts[sym]
		bits += n * uint64(hc.Size)
		count += n
	}
	if count == 0 {
		return 0
	}
	return float64(bits) / float64(count)
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, entry := range ct.entries {
		fmt.Fprintf(&buf, "\tLookup(%v) = %v\n", entry.Symbol, entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON renders the table as a JSON object from each symbol, as a
// one-character string, to its codeword bits.  Keys are sorted.
func (ct CodeTable) MarshalJSON() ([]byte, error) {
	obj := make(map[string]string, len(ct.codes))
	for sym, hc := range ct.codes {
		obj[string(rune(sym))] = hc.BitString()
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(obj)
}

var _ json.Marshaler = CodeTable{}

// type bySize {{{

type bySize []Entry

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	as, ay := a.Code.Size, a.Symbol
	bs, by := b.Code.Size, b.Symbol
	if as != bs {
		return as < bs
	}
	return ay < by
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
