package encodex

const (
	invalidSymbol = 0xFF
	padChar       = '='

	caseDelta = ('a' - 'A')
)

// alphabet binds an RFC 4648 symbol table to the block geometry its bit
// width implies. Instances are built once below and never mutated.
type alphabet struct {
	symbols string
	bits    uint

	// blockBytes raw bytes encode to blockSyms symbols with no slack bits.
	blockBytes int
	blockSyms  int

	encTab [64]byte

	// decTab maps a symbol byte to its value, or invalidSymbol. decFoldTab
	// additionally accepts the opposite case for case-insensitive variants;
	// for case-sensitive ones it is identical to decTab.
	decTab     [256]byte
	decFoldTab [256]byte

	// bitmask over data-symbol counts mod blockSyms that a conformant
	// encoder can produce in the final block.
	validTailSyms uint16
}

func newAlphabet(symbols string, bits uint, foldCase bool) *alphabet {
	if len(symbols) != 1<<bits {
		panic("encodex: alphabet size must match bit width")
	}

	a := &alphabet{symbols: symbols, bits: bits}

	g := gcd(8, int(bits))
	a.blockSyms = 8 / g
	a.blockBytes = int(bits) / g

	a.validTailSyms = 1 << 0
	for b := 1; b < a.blockBytes; b++ {
		a.validTailSyms |= 1 << ((b*8 + int(bits) - 1) / int(bits))
	}

	for i := range a.decTab {
		a.decTab[i] = invalidSymbol
		a.decFoldTab[i] = invalidSymbol
	}

	for i := range symbols {
		c := symbols[i]
		if c == padChar || a.decTab[c] != invalidSymbol {
			panic("encodex: alphabet symbols must be distinct and must not include the pad character")
		}

		a.encTab[i] = c
		a.decTab[c] = byte(i)
		a.decFoldTab[c] = byte(i)

		if !foldCase {
			continue
		}
		switch {
		case c >= 'A' && c <= 'Z':
			a.decFoldTab[c+caseDelta] = byte(i)
		case c >= 'a' && c <= 'z':
			a.decFoldTab[c-caseDelta] = byte(i)
		}
	}

	return a
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

//
// the five RFC 4648 grammars; sections 4, 5, 6, 7 and 8 of the RFC
//

var (
	base64Alphabet    = newAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", 6, false)
	base64URLAlphabet = newAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", 6, false)
	base32Alphabet    = newAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", 5, true)
	base32HexAlphabet = newAlphabet("0123456789ABCDEFGHIJKLMNOPQRSTUV", 5, true)
	base16Alphabet    = newAlphabet("0123456789ABCDEF", 4, true)
)
