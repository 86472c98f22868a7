// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package snapshot turns the entries of a directory scan into an ordered list
// of instructions that reconstruct the tree in a virtual filesystem.
//
// A [Snapshot] is built once with [Build] or [FromDir]. File contents are
// read at that moment and never again, so later changes on disk do not affect
// it. It can be written as a CPIO archive with [Encode], embedded into a
// program and read back with [Decode] at run time. [Replay] applies the
// instructions to any [FS] implementation in order.
//
// A [Snapshot] is immutable and may be replayed concurrently into independent
// filesystems.
package snapshot
