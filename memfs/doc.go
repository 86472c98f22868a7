// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package memfs provides an in-memory file tree of directories and regular
// files. It is the default target a snapshot is replayed into and implements
// the read interfaces of [io/fs] for consumers.
//
// Creating methods and [FS.OpenFile] or [FS.Exists] take virtual paths, which
// are absolute and "/" separated. The [io/fs] methods take names as
// [fs.ValidPath] defines them, which are the same paths without the leading
// "/".
//
// An [FS] is not safe for concurrent modification. Once populated, it may be
// read concurrently.
package memfs
