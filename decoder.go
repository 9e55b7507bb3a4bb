// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package lzw

import (
	"errors"
	"fmt"
	"io"
)

// Decoder is a streaming LZW decompressor. It implements Filter: call
// Fill repeatedly until eof is true. A Decoder is not safe for
// concurrent use.
type Decoder struct {
	cfg   Config
	dict  *dictionary
	br    *bitReader
	width int

	previousCode  uint32
	awaitingFirst bool
	sawData       bool // data decoded since the last reset/start, for the EOF/RESET-share rule

	pending []byte // bytes decoded but not yet delivered to a caller's Fill
	done    bool   // stream-end reached (clean EOF); further Fill calls return eof with no error
	err     error  // sticky error once set; the instance refuses further work
}

// NewDecoder constructs a Decoder reading codewords from src. cfg is
// validated immediately; nil means DefaultConfig().
func NewDecoder(src io.Reader, cfg *Config) (*Decoder, error) {
	c, err := validated(cfg)
	if err != nil {
		return nil, err
	}

	d := &Decoder{
		cfg:  c,
		dict: newDictionary(&c, false),
		br:   newBitReader(newByteSource(src), c.Flags.Has(BigEndian)),
	}
	d.resetState()

	return d, nil
}

func (d *Decoder) resetState() {
	d.dict.reset()
	d.width = d.cfg.InitialWidth
	d.awaitingFirst = true
	d.sawData = false
}

// Fill implements Filter: it writes as many decoded bytes as are
// currently available into dst and reports whether the stream has
// ended.
func (d *Decoder) Fill(dst []byte) (int, bool, error) {
	if d.err != nil {
		return 0, false, d.err
	}

	n := 0
	for n < len(dst) {
		if len(d.pending) == 0 {
			if d.done {
				break
			}
			if err := d.step(); err != nil {
				d.err = err
				return n, false, err
			}
			if len(d.pending) == 0 {
				// step() reached clean EOF with nothing more to emit.
				continue
			}
		}

		c := copy(dst[n:], d.pending)
		n += c
		d.pending = d.pending[c:]
	}

	return n, d.done && len(d.pending) == 0, nil
}

// step decodes exactly one codeword, appending any produced bytes to
// d.pending, or sets d.done on clean end-of-stream.
func (d *Decoder) step() error {
	c, err := d.br.read(d.width)
	if err != nil {
		switch {
		case errors.Is(err, io.EOF):
			// Clean, codeword-aligned end of input: always a benign
			// stream-end, even when EOFParamValid is set (§7).
			d.done = true
			return nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			// Truncated mid-codeword: corrupt only if an explicit EOF
			// codeword was expected; otherwise also benign (§7).
			if d.cfg.Flags.Has(EOFParamValid) {
				return fmt.Errorf("%w: truncated codeword, expected eof code", ErrCorruptStream)
			}
			d.done = true
			return nil
		default:
			return err
		}
	}

	isEOF := d.cfg.Flags.Has(EOFParamValid) && c == uint32(d.cfg.EOFCode)
	isReset := d.cfg.Flags.Has(ResetParamValid) && c == uint32(d.cfg.ResetCode)

	switch {
	case isEOF && isReset:
		// Shared codeword: at the very start (or right after a reset, with
		// no data decoded since), it means EOF; otherwise it's a reset.
		if !d.sawData {
			d.done = true
			return nil
		}
		d.doReset()
		return nil
	case isReset:
		d.doReset()
		return nil
	case isEOF:
		d.done = true
		return nil
	}

	return d.decodeData(c)
}

func (d *Decoder) doReset() {
	d.resetState()
	if d.cfg.Flags.Has(AlignOnReset) {
		d.br.alignToByte()
	}
}

// decodeData handles one data codeword per §4.3 step 4: the first code
// after a reset must be a root; afterwards it is either already defined,
// the KwKwK case (code == next_code), or corrupt.
func (d *Decoder) decodeData(c uint32) error {
	if d.awaitingFirst {
		if c >= 256 {
			return fmt.Errorf("%w: first codeword after reset (%d) is not a root", ErrCorruptStream, c)
		}
		d.pending = append(d.pending[:0], byte(c))
		d.previousCode = c
		d.awaitingFirst = false
		d.sawData = true
		return nil
	}

	var newByte byte

	switch {
	case d.dict.defined(c):
		buf := make([]byte, d.dict.length(c))
		newByte = d.dict.expand(c, buf)
		d.pending = append(d.pending[:0], buf...)

	case c == d.dict.nextCode:
		prevLen := d.dict.length(d.previousCode)
		buf := make([]byte, prevLen+1)
		newByte = d.dict.expand(d.previousCode, buf[:prevLen])
		buf[prevLen] = newByte
		d.pending = append(d.pending[:0], buf...)

	default:
		return fmt.Errorf("%w: undefined codeword %d (next=%d)", ErrCorruptStream, c, d.dict.nextCode)
	}

	if code, err := d.dict.append(d.previousCode, newByte); err == nil {
		switch {
		case d.dict.full() && d.cfg.Flags.Has(ResetFullDict) && !d.cfg.Flags.Has(ResetParamValid):
			// The encoder resets silently (no wire codeword) in this
			// configuration: both sides reach dictionary-full on the same
			// codeword count, so the decoder mirrors the reset in lockstep.
			d.doReset()
			return nil
		default:
			d.bumpWidth(code)
		}
	}
	// ErrDictionaryFull is not an error here: the decoder mirrors the
	// encoder's frozen-dictionary behavior and simply stops growing.

	d.previousCode = c
	d.sawData = true
	return nil
}

// bumpWidth implements the width-expansion timing rule of §4.3/§4.4:
// once the code just assigned fills the addressable range of the
// current width, the NEXT codeword read uses one more bit.
func (d *Decoder) bumpWidth(assigned uint32) {
	if int(assigned)+1 == (1<<uint(d.width)) && d.width < d.cfg.MaxWidth {
		d.width++
	}
}
