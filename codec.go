package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Codec is a Huffman code built from one text.  It holds the text's
// FrequencyTable, the Huffman tree and the resulting CodeTable.  A Codec
// never changes after New returns, so concurrent use is safe.
type Codec struct {
	freq  FrequencyTable
	root  Node
	table CodeTable
}

// New counts the symbols of text, builds their Huffman tree and derives the
// code table.  It fails with ErrEmptyInput if text is empty, and with an
// *InvalidUTF8Error if text is not valid UTF-8.
func New(text string) (*Codec, error) {
	freq, err := CountFrequencies(text)
	if err != nil {
		return nil, err
	}

	root, err := BuildTree(freq)
	if err != nil {
		return nil, err
	}

	return &Codec{
		freq:  freq,
		root:  root,
		table: BuildCodeTable(root),
	}, nil
}

// Encode encodes text with this Codec's code table.  See Encode.
func (c *Codec) Encode(text string) (string, error) {
	return Encode(text, c.table)
}

// Decode decodes bits with this Codec's tree.  See Decode.
func (c *Codec) Decode(bits string) (string, error) {
	return Decode(bits, c.root)
}

// CodeTable returns the symbol to codeword mapping.
func (c *Codec) CodeTable() CodeTable {
	return c.table
}

// Root returns the root of the Huffman tree.
func (c *Codec) Root() Node {
	return c.root
}

// Frequencies returns the symbol counts of the text this Codec was built
// from.
func (c *Codec) Frequencies() FrequencyTable {
	return c.freq
}

// Dump writes a programmer-readable debugging dump of the Codec to the given
// writer.
func (c *Codec) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Codec{symbols=%d, total=%d, weight=%d}\n", c.freq.Len(), c.freq.Total(), c.root.Weight())
	if _, err := c.freq.Dump(&buf); err != nil {
		return 0, err
	}
	if _, err := DumpTree(&buf, c.root); err != nil {
		return 0, err
	}
	if _, err := c.table.Dump(&buf); err != nil {
		return 0, err
	}
	return buf.WriteTo(w)
}

// String returns a short human-readable description of this Codec.
func (c *Codec) String() string {
	return fmt.Sprintf("(Huffman codec with %d symbols, with coded lengths of %d .. %d bits)", c.table.Len(), c.table.MinSize(), c.table.MaxSize())
}

var _ fmt.Stringer = (*Codec)(nil)
