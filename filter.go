// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package lzw

import (
	"io"
)

// Filter is the streaming pull contract shared by Encoder and Decoder:
// "given a destination buffer, fill it with as many output bytes as are
// currently available, pulling input as needed; report end-of-stream."
// Implementations MUST NOT assume aligned reads from their caller —
// partial fills are normal.
type Filter interface {
	Fill(dst []byte) (n int, eof bool, err error)
}

var (
	_ Filter = (*Encoder)(nil)
	_ Filter = (*Decoder)(nil)
)

// drain repeatedly calls f.Fill into a growing buffer until eof, and is
// the shared implementation behind Encode and Decode.
func drain(f Filter) ([]byte, error) {
	var out []byte
	buf := make([]byte, 4096)

	for {
		n, eof, err := f.Fill(buf)
		if err != nil {
			return nil, err
		}
		out = append(out, buf[:n]...)
		if eof {
			return out, nil
		}
		if n == 0 {
			// A well-behaved Filter always makes progress or reports eof;
			// this guards against a runaway loop if one doesn't.
			return nil, ErrIO
		}
	}
}

// Encode compresses data under cfg (nil means DefaultConfig()) and
// returns the bit-packed codeword stream.
func Encode(data []byte, cfg *Config) ([]byte, error) {
	enc, err := newEncoderFromByteReader(&sliceByteReader{data: data}, cfg)
	if err != nil {
		return nil, err
	}
	return drain(enc)
}

// Decode decompresses a bit-packed codeword stream read from src under
// cfg (nil means DefaultConfig()), reading until the stream's own
// end-of-stream signal (EOF codeword or exhausted input).
func Decode(src io.Reader, cfg *Config) ([]byte, error) {
	dec, err := NewDecoder(src, cfg)
	if err != nil {
		return nil, err
	}
	return drain(dec)
}
