package encodex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		variant    Variant
		symbols    string
		bits       uint
		blockBytes int
		blockSyms  int
		foldCase   bool
	}{
		{Base64, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", 6, 3, 4, false},
		{Base64URL, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", 6, 3, 4, false},
		{Base32, "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", 5, 5, 8, true},
		{Base32Hex, "0123456789ABCDEFGHIJKLMNOPQRSTUV", 5, 5, 8, true},
		{Base16, "0123456789ABCDEF", 4, 1, 2, true},
	}

	for _, tc := range tcs {
		t.Run(tc.variant.String(), func(t *testing.T) {
			t.Parallel()

			is := assert.New(t)
			a := tc.variant.alphabet()

			is.Equal(tc.symbols, a.symbols)
			is.Equal(tc.bits, a.bits)
			is.Equal(tc.blockBytes, a.blockBytes)
			is.Equal(tc.blockSyms, a.blockSyms)

			foldByte := func(c byte) byte {
				if !tc.foldCase {
					return c
				}
				switch {
				case c >= 'a' && c <= 'z':
					return c - caseDelta
				case c >= 'A' && c <= 'Z':
					return c + caseDelta
				}
				return c
			}

			for i := range 256 {
				c := byte(i)

				v := strings.IndexByte(tc.symbols, c)
				if v == -1 {
					is.Equal(byte(invalidSymbol), a.decTab[c])

					if fv := strings.IndexByte(tc.symbols, foldByte(c)); fv != -1 {
						is.Equal(byte(fv), a.decFoldTab[c])
					} else {
						is.Equal(byte(invalidSymbol), a.decFoldTab[c])
					}
					continue
				}

				is.Equal(byte(v), a.decTab[c])
				is.Equal(byte(v), a.decFoldTab[c])
				is.Equal(c, a.encTab[v])
			}

			// pad is never a data symbol
			is.Equal(byte(invalidSymbol), a.decTab[padChar])
			is.Equal(byte(invalidSymbol), a.decFoldTab[padChar])
		})
	}
}

func TestTableTailRemainders(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	// Only these data-symbol remainders are possible in a final block:
	// base64  ceil(8b/6) for b in 0..2 -> 0, 2, 3
	// base32  ceil(8b/5) for b in 0..4 -> 0, 2, 4, 5, 7
	// base16  whole bytes only         -> 0
	is.Equal(uint16(1<<0|1<<2|1<<3), base64Alphabet.validTailSyms)
	is.Equal(uint16(1<<0|1<<2|1<<3), base64URLAlphabet.validTailSyms)
	is.Equal(uint16(1<<0|1<<2|1<<4|1<<5|1<<7), base32Alphabet.validTailSyms)
	is.Equal(uint16(1<<0|1<<2|1<<4|1<<5|1<<7), base32HexAlphabet.validTailSyms)
	is.Equal(uint16(1<<0), base16Alphabet.validTailSyms)
}

func TestNewAlphabetRejectsBadInput(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	is.PanicsWithValue("encodex: alphabet size must match bit width", func() {
		newAlphabet("ABC", 6, false)
	})

	is.PanicsWithValue("encodex: alphabet symbols must be distinct and must not include the pad character", func() {
		newAlphabet("AACDEFGHIJKLMNOP", 4, false)
	})

	is.PanicsWithValue("encodex: alphabet symbols must be distinct and must not include the pad character", func() {
		newAlphabet("=BCDEFGHIJKLMNOP", 4, false)
	})
}
