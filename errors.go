package qrcode

import "errors"

// Mode indicators, ISO/IEC 18004 Table 2.
const (
	ModeNumeric      = 0b0001
	ModeAlphanumeric = 0b0010
	ModeByte         = 0b0100
	ModeTerminator   = 0b0000
)

// Encoder error kinds. Encoding fails fast during capacity selection; every
// step after that is infallible by construction.
var (
	// ErrPayloadTooLarge means no version up to 40 has enough capacity for
	// the payload at the requested EC level.
	ErrPayloadTooLarge = errors.New("qrcode: payload too large for any version at this EC level")
)

// Decoder error kinds. The decoder never panics on malformed input; every
// failure path returns one of these alongside a nil payload.
var (
	// ErrMalformedFrame covers geometry failures: fewer than three finder
	// patterns, an implausible version estimate, or a grid that can't be
	// sampled.
	ErrMalformedFrame = errors.New("qrcode: malformed or unreadable frame")
	// ErrUnsupportedMode covers segment modes this decoder does not
	// implement (Kanji, ECI, structured append, FNC1).
	ErrUnsupportedMode = errors.New("qrcode: unsupported segment mode")
)

// alphanumericAlphabet is the 45-character alphanumeric-mode table, ISO/IEC
// 18004 Table 5, indexed by encoded value.
const alphanumericAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
