package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Magic numbers for the supported compression formats.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicXz   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Decompress returns a Reader for the contents of "r", decompressing it if it
// starts with a recognized magic number.
func decompress(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	b, err := br.Peek(len(magicXz))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(b, magicGzip):
		z, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return z, nil
	case bytes.HasPrefix(b, magicZstd):
		z, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return z.IOReadCloser(), nil
	case bytes.HasPrefix(b, magicXz):
		z, err := xz.NewReader(br)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(z), nil
	}
	return io.NopCloser(br), nil
}

// Inputs is the concatenation of every input source.
type inputs struct {
	io.Reader
	closers []io.Closer
}

// Close closes every underlying file and decompressor.
func (in *inputs) Close() error {
	var errs []error
	for i := len(in.closers) - 1; i >= 0; i-- {
		errs = append(errs, in.closers[i].Close())
	}
	return errors.Join(errs...)
}

// OpenInputs returns a ReadCloser over the vectors named by "args" and the
// contents of "files". If both are empty, stdin is used.
//
// A file named "-" is stdin.
func openInputs(args, files []string) (_ io.ReadCloser, err error) {
	in := new(inputs)
	defer func() {
		if err != nil {
			in.Close()
		}
	}()
	var rds []io.Reader
	if len(args) != 0 {
		rds = append(rds, strings.NewReader(strings.Join(args, "\n")+"\n"))
	}
	if len(args) == 0 && len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		var f io.Reader = os.Stdin
		if name != "-" {
			fh, err := os.Open(name)
			if err != nil {
				return nil, err
			}
			in.closers = append(in.closers, fh)
			f = fh
		}
		rd, err := decompress(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		in.closers = append(in.closers, rd)
		// Files may lack a trailing newline.
		rds = append(rds, rd, strings.NewReader("\n"))
	}
	in.Reader = io.MultiReader(rds...)
	return in, nil
}
