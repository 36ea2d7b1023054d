package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"
)

// FrequencyTable maps each distinct Symbol of a text to its number of
// occurrences.  It is immutable once built.
type FrequencyTable struct {
	counts  map[Symbol]uint64
	symbols []Symbol
	total   uint64
}

// CountFrequencies scans text and counts the occurrences of each Symbol.
// An empty text yields an empty table.
func CountFrequencies(text string) (FrequencyTable, error) {
	counts := make(map[Symbol]uint64)
	var total uint64
	for offset, r := range text {
		if r == utf8.RuneError {
			if _, n := utf8.DecodeRuneInString(text[offset:]); n <= 1 {
				return FrequencyTable{}, &InvalidUTF8Error{Offset: offset}
			}
		}
		counts[Symbol(r)]++
		total++
	}

	symbols := make(bySymbol, 0, len(counts))
	for sym := range counts {
		symbols = append(symbols, sym)
	}
	symbols.Sort()

	return FrequencyTable{counts: counts, symbols: symbols, total: total}, nil
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.symbols)
}

// Total returns the sum of all counts, i.e. the length of the text in
// symbols.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of sym, or 0 if it never occurred.
func (ft FrequencyTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Symbols returns the distinct symbols in ascending order.  The caller may
// modify the returned slice.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.symbols))
	copy(out, ft.symbols)
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, sym := range ft.symbols {
		fmt.Fprintf(&buf, "\tCount(%v) = %d\n", sym, ft.counts[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type bySymbol {{{

type bySymbol []Symbol

func (list bySymbol) Sort() {
	sort.Sort(list)
}

func (list bySymbol) Len() int {
	return len(list)
}

func (list bySymbol) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySymbol) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = bySymbol(nil)

// }}}
