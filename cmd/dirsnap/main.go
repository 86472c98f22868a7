// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command dirsnap snapshots a directory into an archive that can be embedded
// into Go programs and loaded with [github.com/aibor/dirsnap.LoadMemFS].
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aibor/dirsnap/internal/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)

	exitCode := cmd.Main(ctx)

	cancel()
	os.Exit(exitCode)
}
