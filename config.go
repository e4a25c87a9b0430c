package encodex

// PaddingMode controls how the '=' filler is produced and accepted.
type PaddingMode uint8

const (
	// PaddingRequired emits padding on encode and rejects unpadded input on
	// decode. This is the RFC 4648 default.
	PaddingRequired PaddingMode = iota

	// PaddingOmitted emits no padding on encode and rejects any padding on
	// decode.
	PaddingOmitted

	// PaddingOptional emits padding on encode but accepts both padded and
	// unpadded input on decode.
	PaddingOptional
)

// Config tunes a codec without changing the variant's alphabet.
//
// The zero value is the strict RFC 4648 configuration: padding required,
// exact case, no line wrapping.
type Config struct {
	Padding PaddingMode

	// FoldCase makes decoding accept the opposite case for the
	// case-insensitive variants (Base32, Base32hex, Base16). It has no
	// effect on Base64 and Base64url, whose alphabets need both cases.
	FoldCase bool

	// WrapAt > 0 inserts a line break every WrapAt columns during encode
	// and tolerates CR and LF anywhere in the input during decode. Zero
	// disables both.
	WrapAt int
}

// DefaultConfig is the strict RFC 4648 configuration.
var DefaultConfig = Config{}
