// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package lzw

import "fmt"

// Flags selects codec dialect behavior. All bits are independent; any
// combination is legal.
type Flags uint8

// Flag bits, see Config.
const (
	// BigEndian packs bits MSB-first within each byte. Clear means
	// LSB-first.
	BigEndian Flags = 1 << iota
	// EOFParamValid honors Config.EOFCode as a stream terminator;
	// otherwise it is treated as ordinary data.
	EOFParamValid
	// ResetParamValid honors Config.ResetCode as a dictionary reset;
	// otherwise it is treated as ordinary data.
	ResetParamValid
	// ResetFullDict makes the encoder start a fresh dictionary when the
	// current one overflows, instead of freezing it and continuing to
	// emit from the frozen table. The reset codeword is written only when
	// ResetParamValid is also set; otherwise the reset is silent and the
	// decoder resets at the same codeword count.
	ResetFullDict
	// AlignOnReset byte-aligns the bitstream immediately after a reset
	// codeword (reader: discard the rest of the current byte; writer:
	// zero-pad to the next byte boundary). Some dialects require this,
	// most don't; default off.
	AlignOnReset
)

// Has reports whether all bits in want are set in f.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

// Config holds the parameters of one codec dialect. A Config is immutable
// once validated and is shared read-only by an Encoder and its matching
// Decoder.
type Config struct {
	// InitialWidth is the codeword width in bits at the start of a
	// stream and after any reset. Typical value: 9. Range 2..32.
	InitialWidth int
	// MaxWidth is the widest a codeword is allowed to grow to. Must
	// satisfy InitialWidth <= MaxWidth <= 32.
	MaxWidth int
	// FirstCode is the codeword assigned to the first dictionary entry
	// beyond the 256 roots and the reserved codes. Typical value: 0x101.
	FirstCode int
	// EOFCode is the codeword that signals end of stream. Only honored
	// if Flags has EOFParamValid set. May equal ResetCode.
	EOFCode int
	// ResetCode is the codeword that clears the dictionary. Only
	// honored if Flags has ResetParamValid set. 0 means "no reset
	// code" when ResetParamValid is clear.
	ResetCode int
	// Flags selects dialect behavior, see the Flags constants.
	Flags Flags
}

// DefaultConfig returns the common 9/9-bit, EOF-terminated, big-endian
// dialect used by the package examples and by DialectGIF's cousins in
// dialects.go. Most historical formats override at least FirstCode and
// MaxWidth.
func DefaultConfig() *Config {
	return &Config{
		InitialWidth: 9,
		MaxWidth:     9,
		FirstCode:    0x101,
		EOFCode:      0x100,
		Flags:        BigEndian | EOFParamValid,
	}
}

// validated returns a copy of c (or DefaultConfig() if c is nil) after
// checking the constraints from §3 of the codec's data model. It never
// mutates the Config passed in.
func validated(c *Config) (Config, error) {
	if c == nil {
		c = DefaultConfig()
	}
	cfg := *c

	if cfg.InitialWidth < 2 || cfg.InitialWidth > 32 {
		return cfg, fmt.Errorf("%w: initial width %d out of range 2..32", ErrConfigInvalid, cfg.InitialWidth)
	}
	if cfg.MaxWidth < cfg.InitialWidth || cfg.MaxWidth > 32 {
		return cfg, fmt.Errorf("%w: max width %d must satisfy initial_width(%d) <= max_width <= 32",
			ErrConfigInvalid, cfg.MaxWidth, cfg.InitialWidth)
	}
	if cfg.FirstCode < 256 {
		return cfg, fmt.Errorf("%w: first code 0x%x must be >= 256 (above the root range)", ErrConfigInvalid, cfg.FirstCode)
	}

	need := 256
	if cfg.Flags.Has(EOFParamValid) && cfg.EOFCode+1 > need {
		need = cfg.EOFCode + 1
	}
	if cfg.Flags.Has(ResetParamValid) && cfg.ResetCode+1 > need {
		need = cfg.ResetCode + 1
	}
	if cfg.FirstCode > need {
		need = cfg.FirstCode
	}
	if need > (1 << cfg.InitialWidth) {
		return cfg, fmt.Errorf("%w: initial width %d cannot address required range up to %d",
			ErrConfigInvalid, cfg.InitialWidth, need)
	}

	if cfg.Flags.Has(EOFParamValid) && cfg.EOFCode >= cfg.FirstCode {
		return cfg, fmt.Errorf("%w: eof code must be a reserved code below first_code", ErrConfigInvalid)
	}
	if cfg.Flags.Has(ResetParamValid) && cfg.ResetCode >= cfg.FirstCode {
		return cfg, fmt.Errorf("%w: reset code must be a reserved code below first_code", ErrConfigInvalid)
	}

	return cfg, nil
}

// dictionaryCapacity returns the number of codewords this config's
// dictionary can ever hold, 256 roots included.
func (c *Config) dictionaryCapacity() int {
	return 1 << c.MaxWidth
}
