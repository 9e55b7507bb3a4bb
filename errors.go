// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss

package lzw

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrConfigInvalid  = errors.New("lzw: configuration invalid")
	ErrCorruptStream  = errors.New("lzw: corrupt stream")
	ErrUnknownCode    = errors.New("lzw: unknown codeword")
	ErrDictionaryFull = errors.New("lzw: dictionary full")
	ErrIO             = errors.New("lzw: i/o error")
)
