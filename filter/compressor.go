// Copyright 2026 Tarutils Authors
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package filter

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"
)

// Compress returns an io.WriteCloser that writes the algo-compressed
// form of its input to w. The caller must Close it to flush the stream
// trailer. bzip2 is decompress-only: the standard library ships no
// compressor for it.
func Compress(algo string, w io.Writer) (io.WriteCloser, error) {
	switch algo {
	case "xz":
		return xz.NewWriter(w)
	case "lzma":
		return lzma.NewWriter(w)
	case "gz", "gzip":
		return gzip.NewWriter(w), nil
	case "sz", "snappy":
		return snappy.NewBufferedWriter(w), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", algo)
	}
}
