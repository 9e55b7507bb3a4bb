/*
Package lzw implements a configurable Lempel-Ziv-Welch codec.

Unlike the fixed-dialect compress/lzw in the standard library, this
package exposes the parameters that vary across the many historical LZW
file formats: codeword width range, the numeric value assigned to the
first non-root dictionary entry, reserved EOF and dictionary-reset
codewords, bit order, and what happens when the dictionary overflows.
See Config for the full parameter set and dialects.go for a catalog of
ready-made configurations for GIF, Unix compress, and TIFF/PDF LZWDecode.

Use Encode(data, cfg) and Decode(src, cfg) for one-shot use, nil for
default parameters (9-bit start, EOF-terminated, big-endian).

Use NewEncoder(src, cfg) / NewDecoder(src, cfg) and their Fill method
when driving the codec as a streaming Filter instead of buffering the
whole input or output in memory.

# Examples

Round-trip with default parameters:

	enc, err := lzw.Encode([]byte("Hello hello hello."), nil)
	if err != nil {
		return err
	}
	dec, err := lzw.Decode(bytes.NewReader(enc), nil)
	if err != nil {
		return err
	}
	// dec equals the original bytes

Decode a GIF-dialect LZW stream:

	cfg := lzw.DialectGIF(8) // 8-bit color depth
	pixels, err := lzw.Decode(bytes.NewReader(subBlocks), cfg)

Stream-decode without buffering the whole output:

	dec, err := lzw.NewDecoder(r, cfg)
	if err != nil {
		return err
	}
	buf := make([]byte, 4096)
	for {
		n, eof, err := dec.Fill(buf)
		if err != nil {
			return err
		}
		out.Write(buf[:n])
		if eof {
			break
		}
	}

Configure a dialect with a dictionary-reset codeword shared with EOF
(RESET_PARAM_VALID and a reset code equal to the configured EOF code):

	cfg := &lzw.Config{
		InitialWidth: 9,
		MaxWidth:     10,
		FirstCode:    0x101,
		EOFCode:      0x100,
		ResetCode:    0x100,
		Flags:        lzw.BigEndian | lzw.ResetParamValid,
	}
*/
package lzw
