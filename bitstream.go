// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package lzw

import (
	"fmt"
	"io"
)

// bitReader unpacks fixed- or variable-width unsigned integer fields from
// an underlying byte source. Bit order (MSB-first vs LSB-first within
// each byte) is fixed at construction by bigEndian.
type bitReader struct {
	src       *byteSource
	bigEndian bool
	cur       byte // current byte being drained
	bitsLeft  int  // unread bits remaining in cur, 0..8
}

func newBitReader(src *byteSource, bigEndian bool) *bitReader {
	return &bitReader{src: src, bigEndian: bigEndian}
}

// read consumes the next width bits (2..32) and returns them as the
// low-order bits of the result. If the source is exhausted before any
// bits of this codeword are consumed, it returns io.EOF (a clean,
// codeword-aligned end of stream). If the source is exhausted partway
// through the codeword, it returns io.ErrUnexpectedEOF, the same
// distinction io.ReadFull makes.
func (r *bitReader) read(width int) (uint32, error) {
	var value uint32
	got := 0

	for got < width {
		if r.bitsLeft == 0 {
			b, err := r.src.ReadByte()
			if err != nil {
				if err == io.EOF && got > 0 {
					return 0, io.ErrUnexpectedEOF
				}
				return 0, err
			}
			r.cur = b
			r.bitsLeft = 8
		}

		take := width - got
		if take > r.bitsLeft {
			take = r.bitsLeft
		}

		if r.bigEndian {
			// Take the top `take` bits of the remaining bitsLeft bits, MSB first.
			shift := r.bitsLeft - take
			chunk := (uint32(r.cur) >> uint(shift)) & ((1 << uint(take)) - 1)
			value = (value << uint(take)) | chunk
		} else {
			// Take the bottom `take` bits, LSB first, appended above already-read low bits.
			chunk := uint32(r.cur) & ((1 << uint(take)) - 1)
			value |= chunk << uint(got)
			r.cur >>= uint(take)
		}

		r.bitsLeft -= take
		got += take
	}

	return value, nil
}

// alignToByte discards any unread bits in the current byte, so the next
// read starts at a fresh byte boundary.
func (r *bitReader) alignToByte() {
	r.bitsLeft = 0
}

// bitWriter packs fixed- or variable-width unsigned integer fields into
// an underlying byte sink.
type bitWriter struct {
	dst       *byteSink
	bigEndian bool
	cur       byte
	bitsUsed  int // bits already placed in cur, 0..8
}

func newBitWriter(dst *byteSink, bigEndian bool) *bitWriter {
	return &bitWriter{dst: dst, bigEndian: bigEndian}
}

// write appends the width low-order bits of value.
func (w *bitWriter) write(width int, value uint32) error {
	if width < 2 || width > 32 {
		return fmt.Errorf("%w: bit width %d out of range", ErrConfigInvalid, width)
	}

	remaining := width
	for remaining > 0 {
		free := 8 - w.bitsUsed
		take := remaining
		if take > free {
			take = free
		}

		if w.bigEndian {
			// Next `take` bits to emit are the top `take` bits of the
			// remaining field, MSB first.
			shift := remaining - take
			chunk := byte((value >> uint(shift)) & ((1 << uint(take)) - 1))
			w.cur |= chunk << uint(free-take)
		} else {
			// Next `take` bits to emit are the bottom `take` bits of the
			// remaining field, LSB first.
			chunk := byte(value & ((1 << uint(take)) - 1))
			w.cur |= chunk << uint(w.bitsUsed)
			value >>= uint(take)
		}

		w.bitsUsed += take
		remaining -= take

		if w.bitsUsed == 8 {
			if err := w.dst.WriteByte(w.cur); err != nil {
				return err
			}
			w.cur = 0
			w.bitsUsed = 0
		}
	}

	return nil
}

// flush pads the final partial byte with zero bits and writes it.
func (w *bitWriter) flush() error {
	if w.bitsUsed > 0 {
		if err := w.dst.WriteByte(w.cur); err != nil {
			return err
		}
		w.cur = 0
		w.bitsUsed = 0
	}
	return nil
}

// alignToByte pads the current byte with zero bits and flushes it, same
// as flush, but named for its call site after a reset codeword.
func (w *bitWriter) alignToByte() error {
	return w.flush()
}
