// Copyright 2026 Tarutils Authors
// Licensed under the Apache License, Version 2.0. See LICENSE file.

package main

import (
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

func realMain() error {
	// Everything except the output archive is unrequested output. The
	// whole point of this tool is to sit in a pipe, so stdout carries
	// archive bytes and nothing else.
	logrus.SetOutput(os.Stderr)

	if os.Getenv("SHEBANGTAR_PROFILE") != "" {
		defer profile.Start().Stop()
	}
	return Execute()
}

func main() {
	// wrapping main allows us to use defer in realMain and still have
	// them executed even if we want to exit with a non-zero value, which
	// requires that we use os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
