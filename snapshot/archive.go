// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/aibor/dirsnap/scan"
	"github.com/cavaliergopher/cpio"
)

// archiveRoot is the archive entry name of the root directory.
const archiveRoot = "."

// Encode writes the [Snapshot] as CPIO archive to w.
//
// There is one archive entry per instruction in the same order. Entry names
// are the virtual paths without the leading "/". The root is named ".".
func Encode(w io.Writer, s *Snapshot) error {
	writer := NewCPIOWriter(w)

	err := encode(writer, s)
	if err != nil {
		_ = writer.Close()
		return err
	}

	err = writer.Close()
	if err != nil {
		return &ArchiveError{Op: "close", Err: err}
	}

	return nil
}

func encode(writer Writer, s *Snapshot) error {
	for _, instruction := range s.instructions {
		name := archiveName(instruction.Path)

		var err error

		switch {
		case !fs.ValidPath(name):
			err = ErrInvalidPath
		case instruction.Op == OpCreateDir:
			err = writer.WriteDirectory(name)
		case instruction.Op == OpCreateFile:
			content := instruction.Content
			err = writer.WriteRegular(name, content.Reader(), content.Size())
		default:
			err = ErrUnknownOp
		}

		if err != nil {
			return &ArchiveError{Op: "write", Path: instruction.Path, Err: err}
		}
	}

	return nil
}

// Decode reads a [Snapshot] from a CPIO archive as written by [Encode].
//
// Entries are read in order. Content digests are computed from the read
// content. Only directories and regular files are supported, any other
// entry type results in an [ArchiveError] wrapping [ErrUnsupportedEntry].
// The archive must end with a trailer. A truncated or empty input results in
// an [ArchiveError] wrapping [io.ErrUnexpectedEOF].
func Decode(r io.Reader) (*Snapshot, error) {
	source := &archiveSource{reader: r}
	reader := cpio.NewReader(source)
	instructions := []Instruction{}

	for {
		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			err = source.checkTrailer()
			if err != nil {
				return nil, &ArchiveError{Op: "read", Err: err}
			}

			break
		}

		if err != nil {
			return nil, &ArchiveError{Op: "read", Err: err}
		}

		virtualPath, err := virtualName(hdr.Name)
		if err != nil {
			return nil, &ArchiveError{Op: "read", Path: hdr.Name, Err: err}
		}

		mode := hdr.FileInfo().Mode()

		switch {
		case mode.IsDir():
			instructions = append(instructions, CreateDir(virtualPath))
		case mode.IsRegular():
			data, err := readBody(reader, hdr.Size)
			if err != nil {
				return nil, &ArchiveError{Op: "read", Path: hdr.Name, Err: err}
			}

			instructions = append(instructions,
				CreateFile(virtualPath, newContent(data)))
		default:
			return nil, &ArchiveError{
				Op:   "read",
				Path: hdr.Name,
				Err:  fmt.Errorf("%w: %s", ErrUnsupportedEntry, mode.Type()),
			}
		}
	}

	return &Snapshot{instructions: instructions}, nil
}

// readBody reads exactly size bytes of the current entry.
func readBody(r io.Reader, size int64) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if int64(len(data)) != size {
		return nil, fmt.Errorf("body %d of %d bytes: %w",
			len(data), size, io.ErrUnexpectedEOF)
	}

	return data, nil
}

// entryAlign is the alignment of entries in the newc format.
const entryAlign = 4

// archiveSource tracks the consumption of the underlying archive stream.
//
// The CPIO reader reports the trailer as well as an input ending on an entry
// boundary as [io.EOF]. Only the trailer is a proper end.
type archiveSource struct {
	reader   io.Reader
	consumed int64
	drained  bool
}

func (s *archiveSource) Read(p []byte) (int, error) {
	n, err := s.reader.Read(p)
	s.consumed += int64(n)

	if n == 0 && errors.Is(err, io.EOF) {
		s.drained = true
	}

	return n, err //nolint:wrapcheck
}

// checkTrailer returns an error if the input ended before the trailer entry
// was read completely.
func (s *archiveSource) checkTrailer() error {
	if s.drained {
		return io.ErrUnexpectedEOF
	}

	// The padding after the trailer name may be left unread.
	pad := (entryAlign - s.consumed%entryAlign) % entryAlign

	_, err := io.ReadFull(s, make([]byte, pad))
	if err != nil {
		return io.ErrUnexpectedEOF
	}

	return nil
}

func archiveName(virtualPath string) string {
	name := strings.TrimPrefix(virtualPath, scan.Root)
	if name == "" {
		return archiveRoot
	}

	return name
}

func virtualName(name string) (string, error) {
	if !fs.ValidPath(name) {
		return "", ErrInvalidPath
	}

	if name == archiveRoot {
		return scan.Root, nil
	}

	return scan.Root + name, nil
}
