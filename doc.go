// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package dirsnap materializes directory snapshots in virtual filesystems.
//
// A snapshot of a directory is taken at build time by the dirsnap command
// and written as archive file. The archive is embedded into the program and
// loaded at startup. The original directory does not need to exist at run
// time:
//
//	//go:generate go run github.com/aibor/dirsnap/cmd/dirsnap -o assets.cpio assets
//
//	//go:embed assets.cpio
//	var assets []byte
//
//	var assetFS = dirsnap.Must(dirsnap.LoadMemFS(assets))
//
// Any filesystem implementing [snapshot.FS] can be used as target with
// [Load].
package dirsnap
