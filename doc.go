// Package encodex implements the RFC 4648 binary-to-text encodings:
// Base64, Base64url, Base32, Base32hex and Base16. All five variants are
// driven by one table-parameterized engine rather than per-variant codecs.
//
// Decoding is strict. Inputs that could not have been produced by a
// conformant encoder are rejected rather than silently truncated: padding
// must be trailing and block-aligned, symbol counts must be mathematically
// possible for the variant, and the zero bits an encoder emits to fill the
// final symbol must still be zero. Callers that bit pack at a higher level
// must clear those tail bits themselves before decoding.
//
// Encoding never fails. Behavior is tuned through Config: padding may be
// required, omitted or accepted either way on decode, case-insensitive
// variants may fold case on decode, and encoded output may be wrapped at a
// fixed column.
package encodex
