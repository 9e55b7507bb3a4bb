// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package lzw

import (
	_ "embed"
	"fmt"

	"github.com/tidwall/gjson"
)

// dialectsJSON is the declarative catalog of historical LZW dialect
// parameter sets, queried by name rather than unmarshaled into structs —
// the set of fields that matter varies per dialect (GIF derives several
// from a runtime color depth; the others are static), so a path-query
// lookup is a better fit here than a fixed struct shape.
//
//go:embed dialects.json
var dialectsJSON string

// DialectByName looks up a named entry in dialects.json and builds a
// Config from it. Returns ErrConfigInvalid if name is not cataloged.
//
// "gif" is incomplete on its own: GIF's clear/EOF/first codes depend on
// the image's color depth, which this catalog has no field for. Use
// DialectGIF instead of looking up "gif" directly.
func DialectByName(name string) (*Config, error) {
	entry := gjson.Get(dialectsJSON, gjson.Escape(name))
	if !entry.Exists() {
		return nil, fmt.Errorf("%w: no such dialect %q", ErrConfigInvalid, name)
	}
	return configFromJSON(entry), nil
}

// configFromJSON builds a Config from one object in dialects.json.
// Omitted initialWidth, firstCode, eofCode and resetCode take
// DefaultConfig's values; an omitted maxWidth equals the initial width,
// and every flag the entry does not set to true is clear.
func configFromJSON(entry gjson.Result) *Config {
	cfg := DefaultConfig()

	if v := entry.Get("initialWidth"); v.Exists() {
		cfg.InitialWidth = int(v.Int())
	}
	if v := entry.Get("maxWidth"); v.Exists() {
		cfg.MaxWidth = int(v.Int())
	} else {
		cfg.MaxWidth = cfg.InitialWidth
	}
	if v := entry.Get("firstCode"); v.Exists() {
		cfg.FirstCode = int(v.Int())
	}
	if v := entry.Get("eofCode"); v.Exists() {
		cfg.EOFCode = int(v.Int())
	}
	if v := entry.Get("resetCode"); v.Exists() {
		cfg.ResetCode = int(v.Int())
	}

	cfg.Flags = 0
	if entry.Get("bigEndian").Bool() {
		cfg.Flags |= BigEndian
	}
	if entry.Get("eofParamValid").Bool() {
		cfg.Flags |= EOFParamValid
	}
	if entry.Get("resetParamValid").Bool() {
		cfg.Flags |= ResetParamValid
	}
	if entry.Get("resetFullDict").Bool() {
		cfg.Flags |= ResetFullDict
	}
	if entry.Get("alignOnReset").Bool() {
		cfg.Flags |= AlignOnReset
	}

	return cfg
}

// DialectGIF returns the Config for the LZW variant used by the GIF
// image format, as implemented by this pack's own GIF encoder
// (LZWEncoder.go: clearCode = 1<<codeSize, eofCode = clearCode+1,
// firstCode = clearCode+2, initial codeword width = codeSize+1,
// LSB-first packing, and a dictionary that clears itself — emitting the
// clear code — once it reaches 4096 entries).
//
// colorDepth is the image's color depth in bits (2..8); values below 2
// are clamped up, matching the reference encoder's own clamp. The
// dictionary always holds 256 root codes, so only colorDepth 8 yields a
// Config that NewEncoder and NewDecoder accept: below 8, FirstCode falls
// under 256 and validation rejects it with ErrConfigInvalid.
func DialectGIF(colorDepth int) *Config {
	if colorDepth < 2 {
		colorDepth = 2
	}

	cfg, err := DialectByName("gif")
	if err != nil {
		// dialects.json ships with this package; a missing "gif" entry is
		// a build-time defect, not a runtime condition callers should
		// have to check for.
		panic(err)
	}

	clearCode := 1 << uint(colorDepth)
	cfg.InitialWidth = colorDepth + 1
	cfg.EOFCode = clearCode + 1
	cfg.ResetCode = clearCode
	cfg.FirstCode = clearCode + 2

	return cfg
}

// DialectUnixCompressMSB returns the Config for the classic Unix
// compress(1) LZW variant with MSB-first bit packing, as used by some
// ports (most use LSB-first; see DialectUnixCompressLSB). There is no
// EOF codeword in this dialect: the stream ends when the input is
// exhausted on a codeword boundary.
func DialectUnixCompressMSB() *Config {
	cfg, err := DialectByName("unixCompressMSB")
	if err != nil {
		panic(err)
	}
	return cfg
}

// DialectUnixCompressLSB is DialectUnixCompressMSB with LSB-first bit
// packing, the more commonly seen Unix compress(1) wire format.
func DialectUnixCompressLSB() *Config {
	cfg, err := DialectByName("unixCompressLSB")
	if err != nil {
		panic(err)
	}
	return cfg
}

// DialectTIFFPredictor returns the Config for the TIFF/PDF LZWDecode
// filter: MSB-first packing, a dedicated clear code (0x100) distinct
// from a dedicated EOF code (0x101, unlike Unix compress, where EOF is
// implicit), and mandatory
// self-clearing once the table reaches 4094 entries.
func DialectTIFFPredictor() *Config {
	cfg, err := DialectByName("tiff")
	if err != nil {
		panic(err)
	}
	return cfg
}
