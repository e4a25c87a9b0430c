package encodex

import "slices"

// symbolWriter fills dst with symbols while tracking the wrap column so a
// streaming encoder can carry it across calls.
type symbolWriter struct {
	dst  []byte
	di   int
	col  int
	wrap int
}

func (sw *symbolWriter) put(c byte) {
	if sw.wrap > 0 && sw.col == sw.wrap {
		sw.dst[sw.di] = '\n'
		sw.di++
		sw.col = 0
	}
	sw.dst[sw.di] = c
	sw.di++
	sw.col++
}

// pack is the encode direction of the engine: append each source byte to a
// bit accumulator MSB-first, emit one symbol per bits accumulated bits,
// left-fill the residual group with zero bits, then pad the final block
// when the policy asks for it. The same loop serves every variant.
func (a *alphabet) pack(sw *symbolWriter, src []byte, padded bool) {
	bits := a.bits
	mask := byte(1<<bits - 1)

	var acc, nbits uint
	si := 0

	for _, b := range src {
		acc = acc<<8 | uint(b)
		nbits += 8
		for nbits >= bits {
			nbits -= bits
			sw.put(a.encTab[byte(acc>>nbits)&mask])
			si++
		}
	}

	if nbits > 0 {
		sw.put(a.encTab[byte(acc<<(bits-nbits))&mask])
		si++
	}

	if padded {
		for si%a.blockSyms != 0 {
			sw.put(padChar)
			si++
		}
	}
}

func (e *Encoding) encodedLenExpression(n int) int {
	var syms int
	if e.emitsPadding() {
		syms = (n + e.a.blockBytes - 1) / e.a.blockBytes * e.a.blockSyms
	} else {
		syms = (n*8 + int(e.a.bits) - 1) / int(e.a.bits)
	}

	if w := e.cfg.WrapAt; w > 0 && syms > 0 {
		syms += (syms - 1) / w
	}

	return syms
}

func (e *Encoding) encodedLen(n int) int {
	result := e.encodedLenExpression(n)
	if result <= n && n != 0 {
		panic("encodex: invalid encode source length")
	}

	return result
}

// EncodedLen returns the number of bytes, line breaks included, required to
// encode n source bytes under this configuration. It returns -1 if n is
// negative or the encoded length does not fit in an int.
//
// If the input is zero the output will be zero. It is up to the calling
// context to choose how to handle the zero output case appropriately.
func (e *Encoding) EncodedLen(n int) int {
	if n < 0 {
		return -1
	}

	result := e.encodedLenExpression(n)
	if result <= n && n != 0 {
		return -1
	}

	return result
}

func (e *Encoding) encode(dst, src []byte) {
	sw := symbolWriter{dst: dst, wrap: e.cfg.WrapAt}
	e.a.pack(&sw, src, e.emitsPadding())
}

// Encode returns nil if src is empty, otherwise it returns the encoded form
// of src. Encoding is total: it cannot fail for any byte sequence.
func (e *Encoding) Encode(src []byte) []byte {
	n := len(src)
	if n == 0 {
		return nil
	}

	dst := make([]byte, e.encodedLen(n))

	e.encode(dst, src)

	return dst
}

// EncodeToString returns "" if src is empty, otherwise it returns the
// encoded form of src.
func (e *Encoding) EncodeToString(src []byte) string {
	return string(e.Encode(src))
}

// AppendEncode returns the encoded form of src appended to dst if src is
// not empty. If src is empty dst is returned as-is.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	n := len(src)
	if n == 0 {
		return dst
	}

	n = e.encodedLen(n)
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	e.encode(dst[orig:], src)

	return dst
}
