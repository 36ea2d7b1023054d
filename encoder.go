package huffman

import (
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"
)

// Encode replaces each Symbol of text by its codeword from table and returns
// the concatenated bits as a string of '0' and '1' characters.  Codewords are
// not delimited; the code being prefix-free is what makes Decode possible.
//
// Encode fails with a *SymbolNotFoundError if text holds a symbol that table
// has no codeword for, and with an *InvalidUTF8Error if text is not valid
// UTF-8.  No partial output is returned on failure.
//
func Encode(text string, table CodeTable) (string, error) {
	out := make([]byte, 0, len(text)*int(table.maxSize))
	for offset, r := range text {
		if r == utf8.RuneError {
			if _, n := utf8.DecodeRuneInString(text[offset:]); n <= 1 {
				return "", &InvalidUTF8Error{Offset: offset}
			}
		}
		sym := Symbol(r)
		hc, found := table.codes[sym]
		if !found {
			return "", &SymbolNotFoundError{Symbol: sym, Offset: offset}
		}
		out = hc.AppendTo(out)
	}
	return uf.B2S(out), nil
}
