// Command lzwbench sanity-checks this package's configurable LZW codec
// against a standard DEFLATE backend on a real file, reporting
// compressed size and wall-clock time for each. It is a developer
// diagnostic, not part of the codec's public API.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/klauspost/compress/flate"
	"github.com/malvineous/lzw"
)

func main() {
	dialect := flag.String("dialect", "", "named dialect to encode with (gif, unixCompressMSB, unixCompressLSB, tiff); default parameters if empty")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: lzwbench [-dialect name] <file>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	var cfg *lzw.Config
	if *dialect != "" {
		cfg, err = lzw.DialectByName(*dialect)
		if err != nil {
			log.Fatal(err)
		}
	}

	lzwSize, lzwElapsed, err := runLZW(data, cfg)
	if err != nil {
		log.Fatalf("lzw: %v", err)
	}

	flateSize, flateElapsed, err := runFlate(data)
	if err != nil {
		log.Fatalf("flate: %v", err)
	}

	fmt.Printf("input:  %8d bytes\n", len(data))
	fmt.Printf("lzw:    %8d bytes  %10s  (ratio %.3f)\n", lzwSize, lzwElapsed, ratio(len(data), lzwSize))
	fmt.Printf("flate:  %8d bytes  %10s  (ratio %.3f)\n", flateSize, flateElapsed, ratio(len(data), flateSize))
}

func runLZW(data []byte, cfg *lzw.Config) (int, time.Duration, error) {
	start := time.Now()
	out, err := lzw.Encode(data, cfg)
	if err != nil {
		return 0, 0, err
	}
	return len(out), time.Since(start), nil
}

func runFlate(data []byte) (int, time.Duration, error) {
	start := time.Now()
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return 0, 0, err
	}
	if _, err := w.Write(data); err != nil {
		return 0, 0, err
	}
	if err := w.Close(); err != nil {
		return 0, 0, err
	}
	return buf.Len(), time.Since(start), nil
}

func ratio(in, out int) float64 {
	if in == 0 {
		return 0
	}
	return float64(out) / float64(in)
}
