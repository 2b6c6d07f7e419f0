// Copyright 2026 Tarutils Authors
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package filter

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestEditingDiagnostics(t *testing.T) {
	var logbuf, diag bytes.Buffer
	old := logger.Out
	logger.SetOutput(&logbuf)
	defer logger.SetOutput(old)

	Options{Diag: &diag}.editing("bin/tool")

	if got, want := diag.String(), "editing bin/tool\n"; got != want {
		t.Errorf("diagnostic line = %q, want %q", got, want)
	}
	if !strings.Contains(logbuf.String(), "bin/tool") {
		t.Errorf("package log did not record the entry: %q", logbuf.String())
	}
}

func TestEditingNilDiag(t *testing.T) {
	var logbuf bytes.Buffer
	old := logger.Out
	logger.SetOutput(&logbuf)
	defer logger.SetOutput(old)

	// Must not panic with no diagnostic sink wired.
	Options{}.editing("bin/tool")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("sink closed") }

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) { return 0, errors.New("stream torn") }

func TestCopyMemberErrorSides(t *testing.T) {
	payload := strings.NewReader("uninspected payload")
	if err := copyMember(failingWriter{}, payload); !errors.Is(err, ErrWriteFailure) {
		t.Errorf("writer-side err = %v, want %v", err, ErrWriteFailure)
	}
	if err := copyMember(io.Discard, failingReader{}); !errors.Is(err, ErrMalformedArchive) {
		t.Errorf("reader-side err = %v, want %v", err, ErrMalformedArchive)
	}
	var out bytes.Buffer
	if err := copyMember(&out, strings.NewReader("ok")); err != nil || out.String() != "ok" {
		t.Errorf("copyMember = %q, %v", out.String(), err)
	}
}
