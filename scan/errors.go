// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package scan

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPath is returned if an empty root path is given.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrNotDir is returned if the root path is not a directory.
	ErrNotDir = errors.New("not a directory")

	// ErrNotReadable is returned if the root directory can not be read.
	ErrNotReadable = errors.New("directory not readable")

	// ErrUnsupportedType is returned for entries that are neither a directory
	// nor a regular file, like symbolic links, devices, sockets or pipes.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrInvalidName is returned for entries with names that are not valid in
	// the virtual namespace, like names that are not valid UTF-8.
	ErrInvalidName = errors.New("invalid entry name")

	// ErrOutsideRoot is returned if a path is not below the scanned root.
	ErrOutsideRoot = errors.New("path outside of root")
)

// PathResolutionError is returned if the root directory of a scan can not be
// resolved into a canonical, readable directory.
type PathResolutionError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("resolve %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*PathResolutionError) Is(other error) bool {
	_, ok := other.(*PathResolutionError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *PathResolutionError) Unwrap() error {
	return e.Err
}

// WalkError is returned if the walk fails below the root directory. Path is
// the host path of the entry that caused the failure.
type WalkError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *WalkError) Error() string {
	return fmt.Sprintf("walk %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*WalkError) Is(other error) bool {
	_, ok := other.(*WalkError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *WalkError) Unwrap() error {
	return e.Err
}
