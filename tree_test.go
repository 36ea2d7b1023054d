package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTestTree(t *testing.T, text string) Node {
	freq, err := CountFrequencies(text)
	require.NoError(t, err)
	root, err := BuildTree(freq)
	require.NoError(t, err)
	return root
}

func TestBuildTree_Empty(t *testing.T) {
	freq, err := CountFrequencies("")
	require.NoError(t, err)
	root, err := BuildTree(freq)
	require.Nil(t, root)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	root := buildTestTree(t, "aaaa")
	leaf, ok := root.(*Leaf)
	require.True(t, ok)
	require.Equal(t, Symbol('a'), leaf.Symbol())
	require.Equal(t, uint64(4), leaf.Weight())
}

func TestBuildTree_Weights(t *testing.T) {
	for _, text := range []string{pangram, "abracadabra", "mississippi", "ab", "日本語のテキスト"} {
		root := buildTestTree(t, text)
		require.Equal(t, uint64(len([]rune(text))), root.Weight(), text)

		var check func(node Node)
		check = func(node Node) {
			in, ok := node.(*Internal)
			if !ok {
				return
			}
			require.NotNil(t, in.Left())
			require.NotNil(t, in.Right())
			require.Equal(t, in.Left().Weight()+in.Right().Weight(), in.Weight())
			check(in.Left())
			check(in.Right())
		}
		check(root)
	}
}

func TestBuildTree_TieBreak(t *testing.T) {
	// Four symbols of equal weight: leaves pop in Symbol order, and the
	// merged pair (a,b) pops before the later pair (c,d).
	root := buildTestTree(t, "dcba")

	expectTree := strings.Join([]string{
		"Internal(4)\n",
		"\t0: Internal(2)\n",
		"\t\t0: Leaf(1, 'a')\n",
		"\t\t1: Leaf(1, 'b')\n",
		"\t1: Internal(2)\n",
		"\t\t0: Leaf(1, 'c')\n",
		"\t\t1: Leaf(1, 'd')\n",
	}, "")

	var buf strings.Builder
	_, err := DumpTree(&buf, root)
	require.NoError(t, err)
	require.Equal(t, expectTree, buf.String())
}

func TestBuildTree_MergesLightest(t *testing.T) {
	// Weights 1,1,2,3 merge as (1+1)=2, then the older 2 (leaf 'c')
	// pops before the new 2, and finally 3 joins 4.
	root := buildTestTree(t, "abccddd")

	expectTree := strings.Join([]string{
		"Internal(7)\n",
		"\t0: Leaf(3, 'd')\n",
		"\t1: Internal(4)\n",
		"\t\t0: Leaf(2, 'c')\n",
		"\t\t1: Internal(2)\n",
		"\t\t\t0: Leaf(1, 'a')\n",
		"\t\t\t1: Leaf(1, 'b')\n",
	}, "")

	var buf strings.Builder
	_, err := DumpTree(&buf, root)
	require.NoError(t, err)
	require.Equal(t, expectTree, buf.String())
}

func TestInternal_Child(t *testing.T) {
	l := &Leaf{weight: 1, symbol: 'l'}
	r := &Leaf{weight: 2, symbol: 'r'}
	in := &Internal{weight: 3, left: l, right: r}
	require.Same(t, l, in.Child(0))
	require.Same(t, r, in.Child(1))
}
