// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package lzw

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Encoder is a streaming LZW compressor. It implements Filter: call Fill
// repeatedly until eof is true. An Encoder is not safe for concurrent
// use.
type Encoder struct {
	cfg   Config
	dict  *dictionary
	bw    *bitWriter
	outSink *byteSink
	outBuf  *bytes.Buffer
	width int

	src       io.ByteReader
	haveMatch bool
	matchCode uint32

	inputDone bool // source exhausted, flush emitted
	done      bool // flush complete, Fill may still drain outBuf
	err       error
}

// NewEncoder constructs an Encoder reading input bytes from src. cfg is
// validated immediately; nil means DefaultConfig().
func NewEncoder(src io.Reader, cfg *Config) (*Encoder, error) {
	br, ok := src.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(src)
	}
	return newEncoderFromByteReader(br, cfg)
}

// newEncoderFromByteReader builds an Encoder directly atop a
// io.ByteReader, skipping the bufio wrapping NewEncoder falls back to
// when its source doesn't already read one byte at a time. Encode uses
// this with a sliceByteReader to avoid that overhead for its []byte
// entry point.
func newEncoderFromByteReader(br io.ByteReader, cfg *Config) (*Encoder, error) {
	c, err := validated(cfg)
	if err != nil {
		return nil, err
	}

	outBuf := new(bytes.Buffer)
	sink := newByteSink(outBuf)

	e := &Encoder{
		cfg:     c,
		dict:    newDictionary(&c, true),
		bw:      newBitWriter(sink, c.Flags.Has(BigEndian)),
		outSink: sink,
		outBuf:  outBuf,
		width:   c.InitialWidth,
		src:     br,
	}

	return e, nil
}

// Fill implements Filter: it writes as many encoded bytes as are
// currently available into dst and reports whether the stream has
// ended.
func (e *Encoder) Fill(dst []byte) (int, bool, error) {
	if e.err != nil {
		return 0, false, e.err
	}

	for e.outBuf.Len() == 0 && !e.done {
		if err := e.step(); err != nil {
			e.err = err
			return 0, false, err
		}
	}

	n, _ := e.outBuf.Read(dst)
	return n, e.done && e.outBuf.Len() == 0, nil
}

// step consumes exactly one input byte (or performs the end-of-input
// flush), producing zero or more bytes in e.outBuf.
func (e *Encoder) step() error {
	if e.inputDone {
		e.done = true
		return nil
	}

	b, err := e.src.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return e.flush()
		}
		return ioError(err)
	}

	if !e.haveMatch {
		e.matchCode = rootCode(b)
		e.haveMatch = true
		return nil
	}

	if code, ok := e.dict.lookupCode(e.matchCode, b); ok {
		e.matchCode = code
		return nil
	}

	if err := e.bw.write(e.width, e.matchCode); err != nil {
		return err
	}

	if e.dict.full() {
		if e.cfg.Flags.Has(ResetFullDict) {
			// Only put a codeword on the wire when the decoder can actually
			// recognize one as a reset. Without ResetParamValid there is no
			// value the decoder would treat specially, so the reset stays
			// implicit: both sides hit dictionary-full on the same codeword
			// count and reset in lockstep without any signal.
			if e.cfg.Flags.Has(ResetParamValid) {
				if err := e.bw.write(e.width, uint32(e.cfg.ResetCode)); err != nil {
					return err
				}
			}
			e.dict.reset()
			e.width = e.cfg.InitialWidth
			if e.cfg.Flags.Has(AlignOnReset) {
				if err := e.bw.alignToByte(); err != nil {
					return err
				}
			}
		}
		// else: keep the frozen dictionary, emit codes only.
	} else {
		code, appendErr := e.dict.append(e.matchCode, b)
		if appendErr == nil {
			e.bumpWidth(code)
		}
	}

	e.matchCode = rootCode(b)
	return nil
}

// flush emits the pending match (if any) and the EOF codeword (if
// configured), then pads the bitstream to a byte boundary.
func (e *Encoder) flush() error {
	if e.haveMatch {
		if err := e.bw.write(e.width, e.matchCode); err != nil {
			return err
		}
		e.haveMatch = false
		// The decoder assigns one more entry when it reads that last
		// codeword; write the EOF codeword at the width it then expects.
		switch {
		case !e.dict.full():
			e.bumpWidth(e.dict.nextCode)
		case e.cfg.Flags.Has(ResetFullDict) && !e.cfg.Flags.Has(ResetParamValid):
			// That entry fills the decoder's table and it resets silently.
			e.width = e.cfg.InitialWidth
			if e.cfg.Flags.Has(AlignOnReset) {
				if err := e.bw.alignToByte(); err != nil {
					return err
				}
			}
		}
	}
	if e.cfg.Flags.Has(EOFParamValid) {
		if err := e.bw.write(e.width, uint32(e.cfg.EOFCode)); err != nil {
			return err
		}
	}
	if err := e.bw.flush(); err != nil {
		return err
	}

	e.inputDone = true
	return nil
}

// bumpWidth keeps the encoder's width in step with Decoder.bumpWidth.
// The encoder assigns each entry one codeword before the decoder can (the
// decoder needs the next codeword's first byte), so it widens when it
// assigns code 1<<width, the moment the decoder assigns (1<<width)-1:
// codes up to (1<<width)-1 still go out at width bits, and every
// codeword after that uses one more bit.
func (e *Encoder) bumpWidth(assigned uint32) {
	if int(assigned) == (1<<uint(e.width)) && e.width < e.cfg.MaxWidth {
		e.width++
	}
}
