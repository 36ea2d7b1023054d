package huffman

import (
	"strconv"
	"unicode"
)

// Symbol represents a single Unicode code point of the input text.  Negative
// symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(unicode.MaxRune)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is a legal Unicode code point.
func (sym Symbol) IsValid() bool {
	return sym >= 0 && sym <= MaxSymbol
}

// String returns the quoted character for this Symbol.
func (sym Symbol) String() string {
	if !sym.IsValid() {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(sym))
}
