// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"github.com/aibor/dirsnap/scan"
	"github.com/opencontainers/go-digest"
)

// Snapshot is the ordered list of instructions capturing a directory tree.
type Snapshot struct {
	instructions []Instruction
}

// New creates a [Snapshot] from the given instructions as they are.
func New(instructions ...Instruction) *Snapshot {
	return &Snapshot{
		instructions: slices.Clone(instructions),
	}
}

// Build creates a [Snapshot] from the given scan entries.
//
// Each entry results in exactly one instruction, in the same order.
// The content of files is read from their real path right away. Read failures
// are returned as [fs.PathError] with Op "capture".
func Build(entries []scan.Entry) (*Snapshot, error) {
	instructions := make([]Instruction, 0, len(entries))

	for _, entry := range entries {
		switch entry.Kind {
		case scan.KindDirectory:
			instructions = append(instructions, CreateDir(entry.VirtualPath))
		case scan.KindFile:
			data, err := capture(entry.RealPath)
			if err != nil {
				return nil, err
			}

			instructions = append(instructions,
				CreateFile(entry.VirtualPath, newContent(data)))
		default:
			return nil, fmt.Errorf("%w: %s: %d",
				ErrUnknownKind, entry.VirtualPath, entry.Kind)
		}
	}

	return &Snapshot{instructions: instructions}, nil
}

// capture reads the content of the file at the real path. Failures are
// returned as [fs.PathError] with Op "capture".
func capture(realPath string) ([]byte, error) {
	data, err := os.ReadFile(realPath)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}

		return nil, &fs.PathError{Op: "capture", Path: realPath, Err: err}
	}

	return data, nil
}

// FromDir scans the directory at root and builds a [Snapshot] from it.
func FromDir(root string, opts ...scan.Option) (*Snapshot, error) {
	entries, err := scan.Dir(root, opts...)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return Build(entries)
}

// Instructions returns a copy of the instructions.
func (s *Snapshot) Instructions() []Instruction {
	return slices.Clone(s.instructions)
}

// Len returns the number of instructions.
func (s *Snapshot) Len() int {
	return len(s.instructions)
}

// Size returns the total number of content bytes of all files.
func (s *Snapshot) Size() int64 {
	var size int64

	for _, instruction := range s.instructions {
		size += instruction.Content.Size()
	}

	return size
}

// Digest returns a digest over all operations, paths and content digests.
// Snapshots of equal trees have equal digests.
func (s *Snapshot) Digest() digest.Digest {
	digester := digest.Canonical.Digester()
	hash := digester.Hash()

	for _, instruction := range s.instructions {
		switch instruction.Op {
		case OpCreateFile:
			fmt.Fprintf(hash, "%s %q %s\n",
				instruction.Op, instruction.Path, instruction.Content.Digest())
		default:
			fmt.Fprintf(hash, "%s %q\n", instruction.Op, instruction.Path)
		}
	}

	return digester.Digest()
}
