package huffman

import (
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
	"github.com/indigo-web/utils/uf"
)

// Decode walks the tree rooted at root, one bit at a time, and returns the
// text the bits encode.  Each bit moves to the left (0) or right (1) child;
// reaching a Leaf emits its symbol and restarts the walk at root.
//
// If root is a Leaf, every 0 bit emits its symbol (see BuildCodeTable).
//
// Decode fails with an *InvalidBitError if bits holds anything other than
// '0' and '1', and with a *TruncatedCodeError if bits ends partway through a
// codeword.  No partial output is returned on failure.
//
func Decode(bits string, root Node) (string, error) {
	assert.Assertf(root != nil, "Decode called with nil root")

	switch x := root.(type) {
	case *Leaf:
		return decodeSingle(bits, x)
	case *Internal:
		return decodeTree(bits, x)
	default:
		assert.Assertf(false, "unexpected node type %T", root)
		return "", nil
	}
}

func decodeTree(bits string, root *Internal) (string, error) {
	out := make([]byte, 0, len(bits)/2)

	current := root
	var pending Code
	var start int
	for offset := 0; offset < len(bits); offset++ {
		bit, err := parseBit(bits, offset)
		if err != nil {
			return "", err
		}

		if pending.Size == 0 {
			start = offset
		}
		pending = pending.Append(bit)

		switch child := current.Child(bit).(type) {
		case *Leaf:
			out = utf8.AppendRune(out, rune(child.symbol))
			current = root
			pending = Code{}
		case *Internal:
			current = child
		}
	}

	if pending.Size != 0 {
		return "", &TruncatedCodeError{Offset: start, Pending: pending}
	}
	return uf.B2S(out), nil
}

func decodeSingle(bits string, leaf *Leaf) (string, error) {
	out := make([]byte, 0, len(bits)*utf8.RuneLen(rune(leaf.symbol)))
	for offset := 0; offset < len(bits); offset++ {
		bit, err := parseBit(bits, offset)
		if err != nil {
			return "", err
		}
		if bit != placeholderCode.Bits {
			return "", &InvalidBitError{Bit: bits[offset], Offset: offset}
		}
		out = utf8.AppendRune(out, rune(leaf.symbol))
	}
	return uf.B2S(out), nil
}

func parseBit(bits string, offset int) (uint64, error) {
	switch ch := bits[offset]; ch {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	default:
		return 0, &InvalidBitError{Bit: ch, Offset: offset}
	}
}
