// Copyright 2026 Tarutils Authors
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package filter

import (
	"archive/tar"
	"fmt"
	"io"
)

// filterTar streams a tar archive. Headers are re-emitted in PAX format
// so that long names, large sizes and arbitrary records survive the
// round trip. A PAX global header is the archive-level metadata: it is
// replayed to the output ahead of the members it describes, unchanged.
func filterTar(in io.Reader, out io.Writer, opts Options) error {
	tr := tar.NewReader(in)
	tw := tar.NewWriter(out)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMalformedArchive, err)
		}
		hdr.Format = tar.FormatPAX
		switch hdr.Typeflag {
		case tar.TypeXGlobalHeader:
			if err := tw.WriteHeader(hdr); err != nil {
				return fmt.Errorf("%w: %s", ErrWriteFailure, err)
			}
		case tar.TypeReg:
			content, err := readMember(tr, hdr.Size)
			if err != nil {
				return err
			}
			if rewritten, ok := opts.Rule.Apply(content); ok {
				content = rewritten
				hdr.Size = int64(len(content))
				opts.editing(hdr.Name)
			}
			if err := tw.WriteHeader(hdr); err != nil {
				return fmt.Errorf("%w: %s", ErrWriteFailure, err)
			}
			if _, err := tw.Write(content); err != nil {
				return fmt.Errorf("%w: %s", ErrWriteFailure, err)
			}
		default:
			// Directories, links, devices and the rest are metadata
			// only; their content (if the type carries any) is opaque
			// and copied through uninspected.
			if err := tw.WriteHeader(hdr); err != nil {
				return fmt.Errorf("%w: %s", ErrWriteFailure, err)
			}
			if err := copyMember(tw, tr); err != nil {
				return err
			}
		}
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err)
	}
	return nil
}
