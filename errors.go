package huffman

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput     = errors.New("cannot build a Huffman code from empty input")
	ErrSymbolNotFound = errors.New("symbol has no codeword")
	ErrInvalidBit     = errors.New("invalid bit")
	ErrTruncatedCode  = errors.New("bit string ends inside a codeword")
	ErrInvalidUTF8    = errors.New("text is not valid UTF-8")
)

// SymbolNotFoundError is returned when encoding a symbol that was absent
// from the text the code was built from.
type SymbolNotFoundError struct {
	Symbol Symbol

	// Offset is the byte offset of Symbol within the encoded text.
	Offset int
}

func (err *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("%v: %v at byte offset %d", ErrSymbolNotFound, err.Symbol, err.Offset)
}

func (err *SymbolNotFoundError) Unwrap() error {
	return ErrSymbolNotFound
}

// InvalidBitError is returned when a bit string holds a character other than
// '0' or '1', or a bit that leads nowhere in the tree.
type InvalidBitError struct {
	Bit    byte
	Offset int
}

func (err *InvalidBitError) Error() string {
	return fmt.Sprintf("%v %q at offset %d", ErrInvalidBit, err.Bit, err.Offset)
}

func (err *InvalidBitError) Unwrap() error {
	return ErrInvalidBit
}

// TruncatedCodeError is returned when a bit string ends partway through a
// codeword.
type TruncatedCodeError struct {
	// Offset is the position at which the unfinished codeword started.
	Offset int

	// Pending holds the bits of the unfinished codeword.
	Pending Code
}

func (err *TruncatedCodeError) Error() string {
	return fmt.Sprintf("%v: %d dangling bit(s) %v starting at offset %d", ErrTruncatedCode, err.Pending.Size, err.Pending, err.Offset)
}

func (err *TruncatedCodeError) Unwrap() error {
	return ErrTruncatedCode
}

// InvalidUTF8Error is returned when the text holds a byte sequence that is
// not a valid UTF-8 encoding.
type InvalidUTF8Error struct {
	Offset int
}

func (err *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("%v: bad byte at offset %d", ErrInvalidUTF8, err.Offset)
}

func (err *InvalidUTF8Error) Unwrap() error {
	return ErrInvalidUTF8
}

var (
	_ error = (*SymbolNotFoundError)(nil)
	_ error = (*InvalidBitError)(nil)
	_ error = (*TruncatedCodeError)(nil)
	_ error = (*InvalidUTF8Error)(nil)
)
