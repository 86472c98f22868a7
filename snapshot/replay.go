// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"errors"
	"io"
	"path"

	"github.com/aibor/dirsnap/scan"
)

// FS defines the interface required to replay a [Snapshot] into a virtual
// filesystem.
type FS interface {
	// CreateDir creates a directory. Its parent exists.
	CreateDir(name string) error

	// CreateFile creates a regular file and returns a writer for its
	// content. Its parent exists.
	CreateFile(name string) (io.WriteCloser, error)
}

// Replay applies all instructions of the [Snapshot] to fsys in order and
// returns fsys.
//
// Before an instruction is applied, its parent directory must have been
// created by an earlier instruction, otherwise a [HierarchyViolationError]
// is returned. The first instruction failing to apply is returned as
// [ReplayError]. On any error the zero value is returned instead of fsys,
// which may be partially populated and should be discarded.
func Replay[T FS](s *Snapshot, fsys T) (T, error) {
	var zero T

	created := make(map[string]bool)

	for idx, instruction := range s.instructions {
		err := checkHierarchy(idx, instruction, created)
		if err != nil {
			return zero, err
		}

		err = apply(fsys, instruction)
		if err != nil {
			return zero, &ReplayError{
				Index: idx,
				Op:    instruction.Op,
				Path:  instruction.Path,
				Err:   err,
			}
		}

		if instruction.Op == OpCreateDir {
			created[instruction.Path] = true
		}
	}

	return fsys, nil
}

func checkHierarchy(idx int, instruction Instruction, created map[string]bool) error {
	name := instruction.Path

	if !path.IsAbs(name) || path.Clean(name) != name {
		return &ReplayError{
			Index: idx,
			Op:    instruction.Op,
			Path:  name,
			Err:   ErrInvalidPath,
		}
	}

	if name == scan.Root {
		if instruction.Op != OpCreateDir || len(created) > 0 {
			return &HierarchyViolationError{Index: idx, Path: name}
		}

		return nil
	}

	parent := path.Dir(name)
	if !created[parent] {
		return &HierarchyViolationError{Index: idx, Path: name, Parent: parent}
	}

	return nil
}

func apply(fsys FS, instruction Instruction) error {
	switch instruction.Op {
	case OpCreateDir:
		return fsys.CreateDir(instruction.Path) //nolint:wrapcheck
	case OpCreateFile:
		return writeFile(fsys, instruction.Path, instruction.Content)
	default:
		return ErrUnknownOp
	}
}

func writeFile(fsys FS, name string, content Content) error {
	err := content.Verify()
	if err != nil {
		return err
	}

	file, err := fsys.CreateFile(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, err = io.Copy(file, content.Reader())

	return errors.Join(err, file.Close())
}
