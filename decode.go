package encodex

// Decoding rejects anything a conformant encoder could not have produced.
// Other implementations tolerate non-canonical input as useless noise, but
// noise is indistinguishable from truncation or corruption, so this
// algorithm strictly interprets it as a signal to fail decoding. Callers
// bit packing at a higher level must clear residual tail bits before
// handing bytes to an encoder whose output ends up here.

import (
	"bytes"
	"errors"
	"slices"
)

var (
	// ErrInvalidSymbol reports a character outside the active alphabet in a
	// data position.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrMalformedPadding reports padding in a non-trailing position,
	// padding that does not align the input to a full block, or padding
	// under a configuration that forbids it.
	ErrMalformedPadding = errors.New("malformed padding")

	// ErrInvalidLength reports a data-symbol count no input byte count can
	// encode to, such as a dangling single symbol in Base64.
	ErrInvalidLength = errors.New("invalid encoded length")

	// ErrNonZeroPaddingBits reports residual bits in the final symbol that
	// an encoder always emits as zero.
	ErrNonZeroPaddingBits = errors.New("non-zero padding bits")
)

// DecodedLen returns the maximum number of bytes that decoding n encoded
// bytes can produce under this configuration. Padding, line breaks and tail
// geometry can only shrink the actual count; Decode returns the exact
// slice. It returns -1 if n is negative.
func (e *Encoding) DecodedLen(n int) int {
	if n < 0 {
		return -1
	}
	return n * int(e.a.bits) / 8
}

// normalize strips tolerated line breaks and trailing padding from src and
// validates the input's framing: padding placement and alignment, and the
// final block's data-symbol count. It returns the bare data symbols.
func (e *Encoding) normalize(src []byte) ([]byte, error) {
	s := src
	if e.cfg.WrapAt > 0 && bytes.ContainsAny(s, "\r\n") {
		filtered := make([]byte, 0, len(s))
		for _, c := range s {
			if c == '\r' || c == '\n' {
				continue
			}
			filtered = append(filtered, c)
		}
		s = filtered
	}

	n := len(s)
	if n == 0 {
		return nil, nil
	}

	pads := 0
	for pads < n && s[n-1-pads] == padChar {
		pads++
	}
	data := s[:n-pads]

	if bytes.IndexByte(data, padChar) >= 0 {
		return nil, ErrMalformedPadding
	}

	if e.a.validTailSyms&(1<<(len(data)%e.a.blockSyms)) == 0 {
		return nil, ErrInvalidLength
	}

	switch {
	case pads > 0:
		if e.cfg.Padding == PaddingOmitted {
			return nil, ErrMalformedPadding
		}
		if n%e.a.blockSyms != 0 || pads >= e.a.blockSyms {
			return nil, ErrMalformedPadding
		}
	case e.cfg.Padding == PaddingRequired && n%e.a.blockSyms != 0:
		return nil, ErrMalformedPadding
	}

	return data, nil
}

// unpack is the decode direction of the engine: append each symbol's value
// to a bit accumulator MSB-first and emit one byte per 8 accumulated bits.
// The residual bits, if any, were manufactured by the encoder to fill the
// final symbol and must all be zero.
func (e *Encoding) unpack(dst, data []byte) error {
	bits := e.a.bits
	tab := e.decodeTab()

	var acc, nbits uint
	di := 0

	for _, c := range data {
		v := tab[c]
		if v == invalidSymbol {
			return ErrInvalidSymbol
		}

		acc = acc<<bits | uint(v)
		nbits += bits
		if nbits >= 8 {
			nbits -= 8
			dst[di] = byte(acc >> nbits)
			di++
		}
	}

	if nbits > 0 && acc&(1<<nbits-1) != 0 {
		return ErrNonZeroPaddingBits
	}

	return nil
}

// Decode returns the decoded form of src if src is not empty. If src is
// empty nil is returned.
//
// Validation is eager: on any error no decoded bytes are returned, so a
// corrupted input can never yield a silently truncated prefix.
func (e *Encoding) Decode(src []byte) ([]byte, error) {
	data, err := e.normalize(src)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, len(data)*int(e.a.bits)/8)

	if err := e.unpack(dst, data); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecodeString returns the decoded form of the string s. See Decode.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	return e.Decode([]byte(s))
}

// AppendDecode returns the decoded form of src appended to dst if src is
// not empty. If src is empty, or on error, dst is returned as-is.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	data, err := e.normalize(src)
	if err != nil {
		return dst, err
	}
	if len(data) == 0 {
		return dst, nil
	}

	n := len(data) * int(e.a.bits) / 8
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	if err := e.unpack(dst[orig:], data); err != nil {
		return dst[:orig], err
	}

	return dst, nil
}
