// Copyright 2026 Tarutils Authors
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package filter

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"github.com/ulikunitz/xz/lzma"
	"github.com/xi2/xz"
)

// re: multiple xz dependencies
// github.com/ulikunitz/xz exposes raw lzma/lzma2 stream readers;
// github.com/xi2/xz does not, but decodes xz containers noticeably
// faster, so xz goes through it.

// Decompress returns an io.Reader of the decompressed contents of the
// given reader using the compression method named by algo. The method is
// always named explicitly by the caller; nothing is sniffed.
func Decompress(algo string, compressedStream io.Reader) (io.Reader, error) {
	switch algo {
	case "xz":
		return xz.NewReader(compressedStream, xz.DefaultDictMax)
	case "lzma":
		return lzma.NewReader(compressedStream)
	case "lzma2":
		return lzma.NewReader2(compressedStream)
	case "gz", "gzip":
		return gzip.NewReader(compressedStream)
	case "bz2", "bzip2":
		return bzip2.NewReader(compressedStream), nil
	case "sz", "snappy":
		return snappy.NewReader(compressedStream), nil
	default:
		return nil, fmt.Errorf("unsupported compression: %s", algo)
	}
}
