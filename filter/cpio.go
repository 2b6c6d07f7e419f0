// Copyright 2026 Tarutils Authors
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package filter

import (
	"fmt"
	"io"

	cpio "github.com/cavaliercoder/go-cpio"
)

// filterCPIO streams an SVR4 (newc) cpio archive. Unlike tar, cpio
// stores a symlink's target as member data, so non-regular members with
// a payload have their bytes copied through uninspected.
func filterCPIO(in io.Reader, out io.Writer, opts Options) error {
	cr := cpio.NewReader(in)
	cw := cpio.NewWriter(out)
	for {
		hdr, err := cr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMalformedArchive, err)
		}
		if hdr.FileInfo().Mode().IsRegular() {
			content, err := readMember(cr, hdr.Size)
			if err != nil {
				return err
			}
			if rewritten, ok := opts.Rule.Apply(content); ok {
				content = rewritten
				hdr.Size = int64(len(content))
				opts.editing(hdr.Name)
			}
			if err := cw.WriteHeader(hdr); err != nil {
				return fmt.Errorf("%w: %s", ErrWriteFailure, err)
			}
			if _, err := cw.Write(content); err != nil {
				return fmt.Errorf("%w: %s", ErrWriteFailure, err)
			}
		} else {
			if err := cw.WriteHeader(hdr); err != nil {
				return fmt.Errorf("%w: %s", ErrWriteFailure, err)
			}
			if err := copyMember(cw, cr); err != nil {
				return err
			}
		}
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err)
	}
	return nil
}
