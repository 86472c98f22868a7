// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/dirsnap/memfs"
	"github.com/aibor/dirsnap/scan"
	"github.com/aibor/dirsnap/snapshot"
	"github.com/dustin/go-humanize"
	"github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const name = "dirsnap"

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func run(ctx context.Context, cfg *config, stdout io.Writer) error {
	base := cfg.Base
	if base == "" {
		var err error

		base, err = projectRoot(".")
		if err != nil {
			return err
		}
	}

	root, err := scan.Resolve(base, cfg.Dir)
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("Scanning directory",
		slog.String("root", root),
		slog.Int("workers", cfg.Workers))

	snap, err := snapshot.FromDir(root, scan.WithWorkers(cfg.Workers))
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	slog.Debug("Built snapshot",
		slog.Int("instructions", snap.Len()),
		slog.String("size", humanize.IBytes(uint64(snap.Size()))), //nolint:gosec
		slog.String("digest", snap.Digest().String()))

	archive, err := encodeArchive(snap, cfg.Verify)
	if err != nil {
		return err
	}

	// Do not replace any existing output if interrupted until here.
	err = ctx.Err()
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	err = writeOutput(cfg.Output, archive, stdout)
	if err != nil {
		return err
	}

	slog.Debug("Wrote archive",
		slog.String("output", cfg.Output),
		slog.String("size", humanize.IBytes(uint64(len(archive)))))

	return nil
}

// encodeArchive encodes the snapshot. With verify set, the archive is decoded
// while it is encoded and the result is compared with the snapshot.
func encodeArchive(snap *snapshot.Snapshot, verify bool) ([]byte, error) {
	var archive bytes.Buffer

	if !verify {
		err := snapshot.Encode(&archive, snap)
		if err != nil {
			return nil, fmt.Errorf("encode: %w", err)
		}

		return archive.Bytes(), nil
	}

	reader, writer := io.Pipe()

	var eg errgroup.Group

	eg.Go(func() error {
		err := snapshot.Encode(io.MultiWriter(&archive, writer), snap)
		_ = writer.CloseWithError(err)

		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}

		return nil
	})

	eg.Go(func() error {
		err := verifyArchive(reader, snap.Digest())
		if err == nil {
			// Drain trailer padding so the encoder can finish.
			_, err = io.Copy(io.Discard, reader)
		}

		_ = reader.CloseWithError(err)

		return err
	})

	err := eg.Wait()
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	slog.Debug("Verified archive", slog.String("digest", snap.Digest().String()))

	return archive.Bytes(), nil
}

func verifyArchive(r io.Reader, expected digest.Digest) error {
	decoded, err := snapshot.Decode(r)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	_, err = snapshot.Replay(decoded, memfs.New())
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	actual := decoded.Digest()
	if actual != expected {
		return fmt.Errorf("verify: %w: %s != %s", ErrVerifyMismatch, actual, expected)
	}

	return nil
}

func handleError(err error) int {
	// ParseArgsError is printed already along with usage.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, false)

	cmd := newCommand(name, cfg, func(cmd *cobra.Command, runCfg *config) error {
		setupLogging(cmd.ErrOrStderr(), runCfg.Debug)
		return run(cmd.Context(), runCfg, cmd.OutOrStdout())
	})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		return handleError(err)
	}

	return 0
}

// Main runs the command with the process arguments and standard streams.
func Main(ctx context.Context) int {
	return Run(ctx, os.Args[1:], IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
}
