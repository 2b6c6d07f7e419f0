// Copyright 2026 Tarutils Authors
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package filter

import (
	"fmt"
	"io"

	"github.com/blakesmith/ar"
)

// filterAR streams a System V ar archive. Every ar member is a regular
// file; the writer emits the "!<arch>" magic before the first member and
// the format has no trailer.
func filterAR(in io.Reader, out io.Writer, opts Options) error {
	arr := ar.NewReader(in)
	aw := ar.NewWriter(out)
	if err := aw.WriteGlobalHeader(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteFailure, err)
	}
	for {
		hdr, err := arr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: %s", ErrMalformedArchive, err)
		}
		content, err := readMember(arr, hdr.Size)
		if err != nil {
			return err
		}
		if rewritten, ok := opts.Rule.Apply(content); ok {
			content = rewritten
			hdr.Size = int64(len(content))
			opts.editing(hdr.Name)
		}
		if err := aw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("%w: %s", ErrWriteFailure, err)
		}
		if _, err := aw.Write(content); err != nil {
			return fmt.Errorf("%w: %s", ErrWriteFailure, err)
		}
	}
	return nil
}
