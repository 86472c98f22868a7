// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"fmt"
	"io"
	"time"

	"github.com/cavaliergopher/cpio"
)

const (
	dirLinks  = 2
	fileLinks = 1

	dirPerm  = 0o755
	filePerm = 0o644
)

// Timestamps are fixed so archives of equal snapshots are equal.
var epoch = time.Unix(0, 0)

// Writer defines the archive writer interface used by [Encode].
type Writer interface {
	WriteDirectory(path string) error
	WriteRegular(path string, content io.Reader, size int64) error
}

var _ Writer = (*CPIOWriter)(nil)

// CPIOWriter implements [Writer] for [cpio.Writer].
type CPIOWriter struct {
	cpioWriter *cpio.Writer
}

// NewCPIOWriter creates a new archive writer.
func NewCPIOWriter(w io.Writer) *CPIOWriter {
	return &CPIOWriter{cpio.NewWriter(w)}
}

// Close writes the archive trailer. Flush is called by the underlying closer.
func (w *CPIOWriter) Close() error {
	err := w.cpioWriter.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

func (w *CPIOWriter) writeHeader(hdr *cpio.Header) error {
	err := w.cpioWriter.WriteHeader(hdr)
	if err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// WriteDirectory adds a directory entry for the given path to the archive.
func (w *CPIOWriter) WriteDirectory(path string) error {
	header := &cpio.Header{
		Name:    path,
		Mode:    cpio.TypeDir | dirPerm,
		Links:   dirLinks,
		ModTime: epoch,
	}

	return w.writeHeader(header)
}

// WriteRegular adds a regular file entry for the given path with size bytes
// read from content.
func (w *CPIOWriter) WriteRegular(path string, content io.Reader, size int64) error {
	header := &cpio.Header{
		Name:    path,
		Mode:    cpio.TypeReg | filePerm,
		Links:   fileLinks,
		Size:    size,
		ModTime: epoch,
	}

	err := w.writeHeader(header)
	if err != nil {
		return err
	}

	_, err = io.CopyN(w.cpioWriter, content, size)
	if err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
