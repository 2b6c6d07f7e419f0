// Copyright 2026 Tarutils Authors
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package main

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tarutils/shebangtar/filter"
	"github.com/tarutils/shebangtar/rewrite"
)

// Replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	formatName     string
	decompressAlgo string
	compressAlgo   string
	printSHA256    bool
)

// rootCmd is the whole CLI; the tool has exactly one job.
var rootCmd = &cobra.Command{
	Use:   "shebangtar [flags] '<old shebang line>' '<new shebang line>'",
	Short: "Rewrite interpreter shebang lines inside a streamed archive",
	Long: `shebangtar reads an archive from stdin, replaces the leading interpreter
line of every regular file that starts with the old shebang followed by a
space or newline, fixes up the member's recorded size, and writes the
resulting archive to stdout. All other members and metadata pass through
unchanged. One line per edited member is reported on stderr.`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// Past argument validation, failures are stream errors rather than
	// usage mistakes.
	cmd.SilenceUsage = true

	in := stdin
	if decompressAlgo != "" {
		r, err := filter.Decompress(decompressAlgo, in)
		if err != nil {
			return err
		}
		in = r
	}

	out := stdout
	var digest hash.Hash
	if printSHA256 {
		digest = sha256.New()
		out = io.MultiWriter(out, digest)
	}
	var closeOut io.Closer
	if compressAlgo != "" {
		w, err := filter.Compress(compressAlgo, out)
		if err != nil {
			return err
		}
		out = w
		closeOut = w
	}

	opts := filter.Options{
		Rule: rewrite.NewRule(args[0], args[1]),
		Diag: stderr,
	}
	if err := filter.Filter(formatName, in, out, opts); err != nil {
		return err
	}
	if closeOut != nil {
		if err := closeOut.Close(); err != nil {
			return fmt.Errorf("%w: %s", filter.ErrWriteFailure, err)
		}
	}
	if digest != nil {
		fmt.Fprintf(stderr, "%x\n", digest.Sum(nil))
	}
	return nil
}

// Execute runs the root command. Usage and error text go to stderr so a
// redirected stdout only ever contains the output archive.
func Execute() error {
	rootCmd.SetOut(stderr)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&formatName, "format", "tar",
		fmt.Sprintf("archive container format (%s)", strings.Join(filter.Formats(), ", ")))
	rootCmd.Flags().StringVar(&decompressAlgo, "decompress", "",
		"decompress stdin first (gzip, bzip2, xz, lzma, lzma2, snappy)")
	rootCmd.Flags().StringVar(&compressAlgo, "compress", "",
		"compress stdout (gzip, xz, lzma, snappy)")
	rootCmd.Flags().BoolVar(&printSHA256, "sha256", false,
		"print the hex SHA-256 of the emitted stream to stderr on success")
}
