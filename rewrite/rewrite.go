// Copyright 2026 Tarutils Authors
// Licensed under the Apache License, Version 2.0. See LICENSE file.

// Package rewrite decides whether an archive member's content carries a
// given interpreter line and splices in the replacement.
package rewrite

import "bytes"

// A Rule replaces one exact interpreter line with another. Rules are
// immutable and safe to reuse across entries.
type Rule struct {
	old []byte
	new []byte
}

// NewRule returns a Rule that replaces oldLine with newLine wherever a
// member's content starts with oldLine.
func NewRule(oldLine, newLine string) Rule {
	return Rule{old: []byte(oldLine), new: []byte(newLine)}
}

// Matches reports whether content begins with the old interpreter line
// followed by a single space or newline. A prefix followed by any other
// byte, or by nothing at all, does not match; interpreter arguments on
// the same line always leave at least one delimiter byte after the path.
func (r Rule) Matches(content []byte) bool {
	if int64(len(content)) < int64(len(r.old))+1 {
		return false
	}
	if !bytes.HasPrefix(content, r.old) {
		return false
	}
	switch content[len(r.old)] {
	case ' ', '\n':
		return true
	}
	return false
}

// Apply returns the rewritten content and true when the rule matches, or
// the original content unchanged and false when it does not. On a match
// everything from the delimiter onward is carried over verbatim.
func (r Rule) Apply(content []byte) ([]byte, bool) {
	if !r.Matches(content) {
		return content, false
	}
	out := make([]byte, 0, len(r.new)+len(content)-len(r.old))
	out = append(out, r.new...)
	out = append(out, content[len(r.old):]...)
	return out, true
}
