package encodex

// Encoding binds a variant's alphabet to a Config. It is immutable and safe
// for concurrent use; all state of an encode or decode call lives on the
// call's stack or in caller-owned buffers.
type Encoding struct {
	a   *alphabet
	v   Variant
	cfg Config
}

// NewEncoding returns the codec for the given variant and configuration.
func NewEncoding(v Variant, cfg Config) *Encoding {
	return &Encoding{a: v.alphabet(), v: v, cfg: cfg}
}

// Variant reports the variant this codec encodes and decodes.
func (e *Encoding) Variant() Variant { return e.v }

// Config reports the configuration this codec was built with.
func (e *Encoding) Config() Config { return e.cfg }

func (e *Encoding) emitsPadding() bool { return e.cfg.Padding != PaddingOmitted }

func (e *Encoding) decodeTab() *[256]byte {
	if e.cfg.FoldCase {
		return &e.a.decFoldTab
	}
	return &e.a.decTab
}

// Encode returns the encoded form of src under the given variant and
// configuration. See Encoding.Encode.
func Encode(src []byte, v Variant, cfg Config) []byte {
	return NewEncoding(v, cfg).Encode(src)
}

// EncodeToString returns the encoded form of src as a string.
func EncodeToString(src []byte, v Variant, cfg Config) string {
	return NewEncoding(v, cfg).EncodeToString(src)
}

// Decode returns the decoded form of src under the given variant and
// configuration. See Encoding.Decode.
func Decode(src []byte, v Variant, cfg Config) ([]byte, error) {
	return NewEncoding(v, cfg).Decode(src)
}

// DecodeString returns the decoded form of the string s.
func DecodeString(s string, v Variant, cfg Config) ([]byte, error) {
	return NewEncoding(v, cfg).DecodeString(s)
}
