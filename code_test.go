package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		hc    Code
		str   string
		goStr string
	}

	testData := [...]testRow{
		{hc: MakeCode(0, 0x0), str: "\"\"", goStr: "MakeCode(0, 0x0)"},
		{hc: MakeCode(1, 0x0), str: "\"0\"", goStr: "MakeCode(1, 0x0)"},
		{hc: MakeCode(3, 0x1), str: "\"100\"", goStr: "MakeCode(3, 0x1)"},
		{hc: MakeCode(4, 0xe), str: "\"0111\"", goStr: "MakeCode(4, 0xe)"},
	}
	for _, row := range testData {
		t.Run(row.str, func(t *testing.T) {
			if actual := row.hc.String(); actual != row.str {
				t.Errorf("expected %s, got %s", row.str, actual)
			}
			if actual := row.hc.GoString(); actual != row.goStr {
				t.Errorf("expected %s, got %s", row.goStr, actual)
			}
		})
	}
}

func TestParseCode(t *testing.T) {
	hc, err := ParseCode("1101")
	require.NoError(t, err)
	require.Equal(t, MakeCode(4, 0xb), hc)
	require.Equal(t, "1101", hc.BitString())

	hc, err = ParseCode("")
	require.NoError(t, err)
	require.Equal(t, Code{}, hc)

	_, err = ParseCode("10 1")
	require.ErrorIs(t, err, ErrInvalidBit)

	long := make([]byte, MaxCodeSize+1)
	for i := range long {
		long[i] = '0'
	}
	_, err = ParseCode(string(long))
	require.Error(t, err)
}

func TestCode_Append(t *testing.T) {
	hc := Code{}.Append(1).Append(0).Append(1)
	require.Equal(t, "101", hc.BitString())
	require.Equal(t, uint64(1), hc.Bit(0))
	require.Equal(t, uint64(0), hc.Bit(1))

	full := Code{Size: MaxCodeSize}
	require.Panics(t, func() { full.Append(0) })
}

func TestCode_HasPrefix(t *testing.T) {
	parse := func(s string) Code {
		hc, err := ParseCode(s)
		require.NoError(t, err)
		return hc
	}

	require.True(t, parse("1011").HasPrefix(parse("10")))
	require.True(t, parse("1011").HasPrefix(parse("1011")))
	require.True(t, parse("1011").HasPrefix(Code{}))
	require.False(t, parse("1011").HasPrefix(parse("11")))
	require.False(t, parse("10").HasPrefix(parse("101")))
}

func TestSymbol_String(t *testing.T) {
	require.Equal(t, "'a'", Symbol('a').String())
	require.Equal(t, "' '", Symbol(' ').String())
	require.Equal(t, "'日'", Symbol('日').String())
	require.Equal(t, "InvalidSymbol", InvalidSymbol.String())
	require.False(t, InvalidSymbol.IsValid())
	require.True(t, MaxSymbol.IsValid())
}
