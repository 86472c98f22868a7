// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned if an entry has a kind that has no
	// instruction.
	ErrUnknownKind = errors.New("unknown entry kind")

	// ErrUnknownOp is returned for instructions with an unknown operation.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrInvalidPath is returned if a path is not absolute and clean.
	ErrInvalidPath = errors.New("invalid virtual path")

	// ErrContentCorrupt is returned if file content does not match its
	// digest.
	ErrContentCorrupt = errors.New("content does not match digest")

	// ErrUnsupportedEntry is returned if an archive contains an entry that is
	// neither a directory nor a regular file.
	ErrUnsupportedEntry = errors.New("unsupported archive entry")
)

// HierarchyViolationError is returned by [Replay] if an instruction refers
// to a parent directory that has not been created by an earlier instruction.
//
// Snapshots built by [Build] never cause it. It indicates a broken snapshot.
type HierarchyViolationError struct {
	Index  int
	Path   string
	Parent string
}

// Error implements the [error] interface.
func (e *HierarchyViolationError) Error() string {
	if e.Parent == "" {
		return fmt.Sprintf("instruction %d: %s must be created first as directory",
			e.Index, e.Path)
	}

	return fmt.Sprintf("instruction %d: parent %s of %s not created",
		e.Index, e.Parent, e.Path)
}

// Is implements the [errors.Is] interface.
func (*HierarchyViolationError) Is(other error) bool {
	_, ok := other.(*HierarchyViolationError)
	return ok
}

// ReplayError is returned by [Replay] if an instruction fails to apply to
// the target filesystem.
type ReplayError struct {
	Index int
	Op    Op
	Path  string
	Err   error
}

// Error implements the [error] interface.
func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay instruction %d: %s %s: %v",
		e.Index, e.Op, e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*ReplayError) Is(other error) bool {
	_, ok := other.(*ReplayError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ReplayError) Unwrap() error {
	return e.Err
}

// ArchiveError is returned if reading or writing an archive fails.
type ArchiveError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *ArchiveError) Error() string {
	msg := "archive " + e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Is implements the [errors.Is] interface. A target without Op matches any
// [ArchiveError].
func (e *ArchiveError) Is(other error) bool {
	o, ok := other.(*ArchiveError)
	return ok && (o.Op == "" || o.Op == e.Op)
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *ArchiveError) Unwrap() error {
	return e.Err
}
