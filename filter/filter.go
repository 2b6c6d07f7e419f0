// Copyright 2026 Tarutils Authors
// Licensed under the Apache License, Version 2.0. See LICENSE file.

// Package filter streams an archive from a reader to a writer, applying
// a rewrite.Rule to the content of every regular file member. Each
// container format gets its own filter; the stream is consumed exactly
// once, forward-only, one member at a time.
package filter

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/tarutils/shebangtar/rewrite"
)

var (
	// ErrUnknownFormat is returned when the requested container format
	// has no registered filter.
	ErrUnknownFormat = errors.New("unknown archive format")
	// ErrMalformedArchive is returned when the input stream cannot be
	// parsed as the requested container format, including truncation.
	ErrMalformedArchive = errors.New("malformed archive")
	// ErrSizeMismatch is returned when a member's declared size
	// disagrees with the bytes actually present. The run aborts; the
	// transform never proceeds with mismatched bookkeeping.
	ErrSizeMismatch = errors.New("entry size mismatch")
	// ErrWriteFailure is returned when the output sink rejects a write.
	ErrWriteFailure = errors.New("archive write failure")
)

// Options carries the per-run configuration shared by every container
// filter.
type Options struct {
	// Rule is applied to the full content of each regular file member.
	Rule rewrite.Rule
	// Diag receives one "editing <name>" line per rewritten member.
	// It must not be the archive output stream. Nil disables the lines.
	Diag io.Writer
}

func (o Options) editing(name string) {
	if o.Diag != nil {
		fmt.Fprintf(o.Diag, "editing %s\n", name)
	}
	log.WithField("entry", name).Debug("rewrote interpreter line")
}

type archiveFilter func(in io.Reader, out io.Writer, opts Options) error

var archiveFilters = map[string]archiveFilter{
	"tar":  filterTar,
	"cpio": filterCPIO,
	"ar":   filterAR,
}

// Formats lists the supported container format names.
func Formats() []string {
	names := make([]string, 0, len(archiveFilters))
	for name := range archiveFilters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter copies the archive on in to out, rewriting member contents per
// opts.Rule. The format is named explicitly, never sniffed from the
// stream. Any error is fatal to the run; no partial-success mode exists.
func Filter(format string, in io.Reader, out io.Writer, opts Options) error {
	f, ok := archiveFilters[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return f(in, out, opts)
}

// copyMember streams an uninspected member payload, keeping read and
// write failures attributable to the right side of the pipe.
func copyMember(dst io.Writer, src io.Reader) error {
	buf := make([]byte, 32*1024)
	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return fmt.Errorf("%w: %s", ErrWriteFailure, werr)
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("%w: %s", ErrMalformedArchive, rerr)
		}
	}
}

// readMember materializes one member's content and enforces the size
// bookkeeping invariant against the declared size.
func readMember(r io.Reader, declared int64) ([]byte, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedArchive, err)
	}
	if int64(len(content)) != declared {
		return nil, fmt.Errorf("%w: declared %d bytes, read %d", ErrSizeMismatch, declared, len(content))
	}
	return content, nil
}
