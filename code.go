package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest codeword a Code can hold.
const MaxCodeSize = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode constructs a Code from a string of '0' and '1' characters, first
// bit first.
func ParseCode(str string) (Code, error) {
	if len(str) > MaxCodeSize {
		return Code{}, fmt.Errorf("code too long: got %d bits, max %d", len(str), MaxCodeSize)
	}
	var hc Code
	for offset := 0; offset < len(str); offset++ {
		bit, err := parseBit(str, offset)
		if err != nil {
			return Code{}, err
		}
		hc = hc.Append(bit)
	}
	return hc, nil
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint64) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "Code.Size %d already at MaxCodeSize", hc.Size)
	hc.Bits |= (bit & 1) << hc.Size
	hc.Size++
	return hc
}

// Bit returns the value of the i'th bit, counting from the first.
func (hc Code) Bit(i byte) uint64 {
	return (hc.Bits >> i) & 1
}

// AppendTo appends the '0'/'1' characters of this Code to dst.
func (hc Code) AppendTo(dst []byte) []byte {
	for i := byte(0); i < hc.Size; i++ {
		dst = append(dst, '0'+byte(hc.Bit(i)))
	}
	return dst
}

// BitString returns this Code as a string of '0' and '1' characters.
func (hc Code) BitString() string {
	return string(hc.AppendTo(make([]byte, 0, hc.Size)))
}

// HasPrefix returns true iff the first prefix.Size bits of this Code equal
// prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	if prefix.Size == 0 {
		return true
	}
	mask := ^uint64(0) >> (MaxCodeSize - prefix.Size)
	return hc.Bits&mask == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.BitString())
}

// GoString returns a Go expression that reconstructs this Code.
func (hc Code) GoString() string {
	return fmt.Sprintf("MakeCode(%d, %#x)", hc.Size, hc.Bits)
}

var (
	_ fmt.Stringer   = Code{}
	_ fmt.GoStringer = Code{}
)
