// Package huffman builds a Huffman code for the symbols of a text and uses
// it to encode that text into a string of '0' and '1' bits and back.
//
// Symbols are Unicode code points.  Construction is a fixed pipeline:
// CountFrequencies, then BuildTree, then BuildCodeTable.  A Codec bundles
// the three results and is immutable once New returns, so it may be shared
// freely between goroutines.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
