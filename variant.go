package encodex

import (
	"errors"
	"strings"
)

// Variant selects one of the RFC 4648 encoding schemes.
type Variant uint8

const (
	Base64 Variant = iota
	Base64URL
	Base32
	Base32Hex
	Base16
)

var ErrUnknownVariant = errors.New("unknown base variant")

var variantNames = [...]string{
	Base64:    "base64",
	Base64URL: "base64url",
	Base32:    "base32",
	Base32Hex: "base32hex",
	Base16:    "base16",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

func (v Variant) alphabet() *alphabet {
	switch v {
	case Base64:
		return base64Alphabet
	case Base64URL:
		return base64URLAlphabet
	case Base32:
		return base32Alphabet
	case Base32Hex:
		return base32HexAlphabet
	case Base16:
		return base16Alphabet
	}
	panic("encodex: unknown variant")
}

// ParseVariant maps a case-insensitive variant name ("base64", "base64url",
// "base32", "base32hex", "base16") to its Variant. It fails with
// ErrUnknownVariant for any other spelling.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(s)
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return 0, ErrUnknownVariant
}

// GuessVariant picks the most restrictive variant whose alphabet covers
// every symbol of src, trying Base16, Base32Hex, Base32, Base64 and
// Base64URL in that order. Case is folded and line breaks are ignored while
// guessing since the producer's exact configuration is unknown.
//
// The guess is a heuristic: valid text of one variant is frequently also
// valid text of a later one.
func GuessVariant(src []byte) (Variant, error) {
	order := [...]Variant{Base16, Base32Hex, Base32, Base64, Base64URL}

next:
	for _, v := range order {
		a := v.alphabet()

		syms, pads := 0, 0
		for _, c := range src {
			switch {
			case c == '\r' || c == '\n':
			case c == padChar:
				pads++
			case a.decFoldTab[c] == invalidSymbol || pads > 0:
				continue next
			default:
				syms++
			}
		}

		if pads > 0 && (syms+pads)%a.blockSyms != 0 {
			continue
		}
		if a.validTailSyms&(1<<(syms%a.blockSyms)) == 0 {
			continue
		}
		return v, nil
	}
	return 0, ErrUnknownVariant
}
