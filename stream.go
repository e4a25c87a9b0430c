package encodex

import (
	"bytes"
	"io"
)

// Encoder is a streaming bit packer. Callers feed input in chunks; the
// partial block and wrap column carried between calls live here, owned by
// the caller, so the Encoding itself stays stateless.
type Encoder struct {
	enc *Encoding
	w   io.Writer
	err error

	// carry-over input shorter than one block
	buf  [5]byte
	nbuf int

	col int
	out []byte
}

// NewEncoder returns a streaming encoder onto w. The caller must Close it
// to flush the final partial block and its padding.
func NewEncoder(enc *Encoding, w io.Writer) *Encoder {
	return &Encoder{enc: enc, w: w}
}

func (e *Encoder) emit(src []byte, final bool) error {
	// worst case: every block padded to full size plus one separator per
	// wrap column and one carried over from the previous call
	bb := e.enc.a.blockBytes
	need := (len(src) + bb - 1) / bb * e.enc.a.blockSyms
	if w := e.enc.cfg.WrapAt; w > 0 {
		need += need/w + 1
	}
	if cap(e.out) < need {
		e.out = make([]byte, need)
	}

	sw := symbolWriter{dst: e.out[:need], wrap: e.enc.cfg.WrapAt, col: e.col}
	e.enc.a.pack(&sw, src, final && e.enc.emitsPadding())
	e.col = sw.col

	_, err := e.w.Write(e.out[:sw.di])
	return err
}

// Write encodes p, emitting every completed block and buffering the rest.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	n := len(p)
	bb := e.enc.a.blockBytes

	if e.nbuf > 0 {
		c := copy(e.buf[e.nbuf:bb], p)
		e.nbuf += c
		p = p[c:]

		if e.nbuf < bb {
			return n, nil
		}

		if e.err = e.emit(e.buf[:bb], false); e.err != nil {
			return n - len(p), e.err
		}
		e.nbuf = 0
	}

	if k := len(p) / bb * bb; k > 0 {
		if e.err = e.emit(p[:k], false); e.err != nil {
			return n - len(p), e.err
		}
		p = p[k:]
	}

	e.nbuf = copy(e.buf[:], p)

	return n, nil
}

// Close flushes the buffered partial block together with its padding. It
// does not close the underlying writer.
func (e *Encoder) Close() error {
	if e.err == nil && e.nbuf > 0 {
		e.err = e.emit(e.buf[:e.nbuf], true)
		e.nbuf = 0
	}
	return e.err
}

// Decoder is a streaming bit unpacker. Complete padding-free blocks decode
// as they arrive; the final block is held back until EOF so the framing
// checks of whole-buffer decoding still apply to it.
type Decoder struct {
	dec *Encoding
	r   io.Reader
	err error

	window []byte // undecoded symbols
	out    []byte // decoded, not yet returned

	rbuf [512]byte
}

// NewDecoder returns a streaming decoder over r. Decode errors surface on
// Read and are terminal; no bytes after the offending position are
// returned.
func NewDecoder(enc *Encoding, r io.Reader) *Decoder {
	return &Decoder{dec: enc, r: r}
}

func (d *Decoder) Read(p []byte) (int, error) {
	for {
		if len(d.out) > 0 {
			n := copy(p, d.out)
			d.out = d.out[n:]
			return n, nil
		}
		if d.err != nil {
			return 0, d.err
		}
		d.fill()
	}
}

func (d *Decoder) fill() {
	n, err := d.r.Read(d.rbuf[:])

	tolerateBreaks := d.dec.cfg.WrapAt > 0
	for _, c := range d.rbuf[:n] {
		if tolerateBreaks && (c == '\r' || c == '\n') {
			continue
		}
		d.window = append(d.window, c)
	}

	if err != nil {
		if err == io.EOF {
			d.finish()
		} else {
			d.err = err
		}
		return
	}

	d.drain()
}

// drain decodes every complete block that cannot be affected by data still
// to come. Blocks touched by a pad character wait for EOF, as padding is
// only meaningful with the input's true tail in hand.
func (d *Decoder) drain() {
	bs := d.dec.a.blockSyms

	consume := len(d.window) / bs * bs
	if i := bytes.IndexByte(d.window, padChar); i >= 0 {
		consume = min(consume, i/bs*bs)
	}
	if consume == 0 {
		return
	}

	data := d.window[:consume]
	dst := make([]byte, consume*int(d.dec.a.bits)/8)

	if err := d.dec.unpack(dst, data); err != nil {
		d.err = err
		return
	}

	d.out = append(d.out, dst...)
	d.window = d.window[consume:]
}

// finish runs the whole-buffer decode over whatever remains so the tail
// sees identical padding, length and residual-bit validation.
func (d *Decoder) finish() {
	d.drain()
	if d.err != nil {
		return
	}

	rem := d.window
	d.window = nil

	decoded, err := d.dec.Decode(rem)
	if err != nil {
		d.err = err
		return
	}

	d.out = append(d.out, decoded...)
	d.err = io.EOF
}
