// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package lzw

// noPrefix marks a root entry: one with no prefix_code, just a literal
// byte.
const noPrefix = ^uint32(0)

// dictEntry is one dictionary slot: either a root (prefix == noPrefix,
// last is the one-byte string) or prefix_entry + last_byte. length is
// cached so callers can size an expansion buffer without walking the
// chain twice.
type dictEntry struct {
	prefix uint32
	last   byte
	length uint32
}

// dictKey is the encoder's reverse-lookup key: "does any entry already
// extend this prefix with this byte".
type dictKey struct {
	prefix uint32
	last   byte
}

// dictionary is the append-only table of string entries shared by the
// Encoder and Decoder machinery. Entries 0..255 are always the one-byte
// roots; reserved codes occupy slots below firstCode and are never
// assigned through append.
type dictionary struct {
	cfg      *Config
	entries  []dictEntry
	nextCode uint32
	index    map[dictKey]uint32 // encoder-only reverse index; nil for a decoder-only dictionary
}

// newDictionary builds a dictionary for cfg. withIndex requests the
// encoder's (prefix, last) -> code reverse index; a decoder never needs
// it. Entries are sized up to cfg.FirstCode (not just the 256 roots) so
// that an assigned code always equals its own index in entries — slots
// 256..FirstCode-1 sit dead, reserved for EOF/reset codewords that are
// never looked up as dictionary entries.
func newDictionary(cfg *Config, withIndex bool) *dictionary {
	d := &dictionary{
		cfg:     cfg,
		entries: make([]dictEntry, cfg.FirstCode, cfg.dictionaryCapacity()),
	}
	for i := 0; i < 256; i++ {
		d.entries[i] = dictEntry{prefix: noPrefix, last: byte(i), length: 1}
	}
	if withIndex {
		d.index = make(map[dictKey]uint32, 1<<uint(cfg.InitialWidth))
	}
	d.reset()
	return d
}

// reset discards all non-root, non-reserved entries and restores
// nextCode to FirstCode.
func (d *dictionary) reset() {
	d.entries = d.entries[:d.cfg.FirstCode]
	d.nextCode = uint32(d.cfg.FirstCode)
	if d.index != nil {
		for k := range d.index {
			delete(d.index, k)
		}
	}
}

// full reports whether the dictionary has reached the configured
// capacity and append would fail.
func (d *dictionary) full() bool {
	return int(d.nextCode) >= d.cfg.dictionaryCapacity()
}

// append assigns the next free codeword to (prefix, last) and returns
// it. Returns ErrDictionaryFull if the dictionary is already at
// capacity; callers must check full() first if they want to avoid the
// error path on the hot loop.
func (d *dictionary) append(prefix uint32, last byte) (uint32, error) {
	if d.full() {
		return 0, ErrDictionaryFull
	}

	var length uint32 = 1
	if prefix != noPrefix {
		length = d.entries[prefix].length + 1
	}

	code := d.nextCode
	d.entries = append(d.entries, dictEntry{prefix: prefix, last: last, length: length})
	d.nextCode++

	if d.index != nil {
		d.index[dictKey{prefix: prefix, last: last}] = code
	}

	return code, nil
}

// defined reports whether code has already been assigned an entry
// (including the 256 roots). Codes in the dead reserved range
// 256..FirstCode-1 are never defined, even though entries has slots
// there.
func (d *dictionary) defined(code uint32) bool {
	return code < 256 || (code >= uint32(d.cfg.FirstCode) && code < d.nextCode)
}

// firstByte returns the first byte of the string represented by code,
// without allocating the full expansion.
func (d *dictionary) firstByte(code uint32) byte {
	for {
		e := d.entries[code]
		if e.prefix == noPrefix {
			return e.last
		}
		code = e.prefix
	}
}

// length returns the cached length of code's expansion.
func (d *dictionary) length(code uint32) uint32 {
	return d.entries[code].length
}

// expand writes code's byte string into dst (which must have length
// >= length(code)) and returns the first byte of the string. It walks
// the prefix chain back-to-front, filling dst right-to-left, then the
// caller reads dst[:length(code)] forward — the "reverse-walk output
// buffer" approach from the dictionary representation notes.
func (d *dictionary) expand(code uint32, dst []byte) byte {
	n := int(d.entries[code].length)
	pos := n
	for {
		e := d.entries[code]
		pos--
		dst[pos] = e.last
		if e.prefix == noPrefix {
			break
		}
		code = e.prefix
	}
	return dst[0]
}

// lookupCode returns the code already assigned to (prefix, last), if
// any. Only valid when the dictionary was built withIndex.
func (d *dictionary) lookupCode(prefix uint32, last byte) (uint32, bool) {
	code, ok := d.index[dictKey{prefix: prefix, last: last}]
	return code, ok
}

// rootCode returns the one-byte root codeword for b.
func rootCode(b byte) uint32 {
	return uint32(b)
}
