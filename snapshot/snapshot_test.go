// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/dirsnap/memfs"
	"github.com/aibor/dirsnap/scan"
	"github.com/aibor/dirsnap/snapshot"
	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	root := mkTree(t, exampleTree)

	entries, err := scan.Dir(root)
	require.NoError(t, err)

	snap, err := snapshot.Build(entries)
	require.NoError(t, err)

	instructions := snap.Instructions()
	require.Len(t, instructions, len(entries), "one instruction per entry")

	for idx, entry := range entries {
		instruction := instructions[idx]

		assert.Equal(t, entry.VirtualPath, instruction.Path, "same order")

		if entry.IsDir() {
			assert.Equal(t, snapshot.OpCreateDir, instruction.Op)
			continue
		}

		expected, err := os.ReadFile(entry.RealPath)
		require.NoError(t, err)

		assert.Equal(t, snapshot.OpCreateFile, instruction.Op)
		assert.Equal(t, expected, instruction.Content.Bytes())
		assert.Equal(t, digest.FromBytes(expected), instruction.Content.Digest())
	}

	var size int64
	for _, content := range exampleTree {
		size += int64(len(content))
	}

	assert.Equal(t, size, snap.Size())
	assert.Equal(t, 6, snap.Len())
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name        string
		entries     []scan.Entry
		expectedErr error
	}{
		{
			name: "file vanished",
			entries: []scan.Entry{
				{RealPath: "/", VirtualPath: "/", Kind: scan.KindDirectory},
				{
					RealPath:    filepath.Join(t.TempDir(), "gone"),
					VirtualPath: "/gone",
					Kind:        scan.KindFile,
				},
			},
			expectedErr: os.ErrNotExist,
		},
		{
			name: "unknown kind",
			entries: []scan.Entry{
				{RealPath: "/", VirtualPath: "/", Kind: scan.Kind(7)},
			},
			expectedErr: snapshot.ErrUnknownKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap, err := snapshot.Build(tt.entries)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, snap)
		})
	}
}

func TestBuild_CaptureError(t *testing.T) {
	realPath := filepath.Join(t.TempDir(), "gone")

	_, err := snapshot.Build([]scan.Entry{
		{RealPath: "/", VirtualPath: "/", Kind: scan.KindDirectory},
		{RealPath: realPath, VirtualPath: "/gone", Kind: scan.KindFile},
	})

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	assert.Equal(t, "capture", pathErr.Op)
	assert.Equal(t, realPath, pathErr.Path)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFromDir_ContentFidelity(t *testing.T) {
	root := mkTree(t, exampleTree)

	snap, err := snapshot.FromDir(root)
	require.NoError(t, err)

	// Changes after the build must not show up in the snapshot.
	ellie := filepath.Join(root, "some dir", "ellie.txt")
	require.NoError(t, os.WriteFile(ellie, []byte("changed"), 0o644))
	require.NoError(t, os.Remove(filepath.Join(root, "data.json")))

	fsys, err := snapshot.Replay(snap, memfs.New())
	require.NoError(t, err)

	for name, expected := range exampleTree {
		actual, err := fsys.ReadFile(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, string(actual), name)
	}

	assert.True(t, fsys.Exists("/some dir"))
}

func TestFromDir_Errors(t *testing.T) {
	_, err := snapshot.FromDir(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, &scan.PathResolutionError{})
}

func TestSnapshot_Digest(t *testing.T) {
	content := snapshot.NewContent([]byte("content"))

	base := snapshot.New(
		snapshot.CreateDir("/"),
		snapshot.CreateFile("/file", content),
	)

	tests := []struct {
		name   string
		other  *snapshot.Snapshot
		assert assert.ComparisonAssertionFunc
	}{
		{
			name: "equal",
			other: snapshot.New(
				snapshot.CreateDir("/"),
				snapshot.CreateFile("/file", snapshot.NewContent([]byte("content"))),
			),
			assert: assert.Equal,
		},
		{
			name: "different content",
			other: snapshot.New(
				snapshot.CreateDir("/"),
				snapshot.CreateFile("/file", snapshot.NewContent([]byte("other"))),
			),
			assert: assert.NotEqual,
		},
		{
			name: "different path",
			other: snapshot.New(
				snapshot.CreateDir("/"),
				snapshot.CreateFile("/other", content),
			),
			assert: assert.NotEqual,
		},
		{
			name: "different op",
			other: snapshot.New(
				snapshot.CreateDir("/"),
				snapshot.CreateDir("/file"),
			),
			assert: assert.NotEqual,
		},
		{
			name: "different order",
			other: snapshot.New(
				snapshot.CreateFile("/file", content),
				snapshot.CreateDir("/"),
			),
			assert: assert.NotEqual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, base.Digest(), tt.other.Digest())
		})
	}
}

func TestContent(t *testing.T) {
	data := []byte("immutable")
	content := snapshot.NewContent(data)

	data[0] = 'X'

	assert.Equal(t, "immutable", string(content.Bytes()), "captured a copy")

	content.Bytes()[0] = 'X'

	assert.Equal(t, "immutable", string(content.Bytes()), "returns a copy")
	assert.EqualValues(t, 9, content.Size())
	require.NoError(t, content.Verify())
}

func TestContent_Zero(t *testing.T) {
	var content snapshot.Content

	assert.Equal(t, snapshot.NewContent(nil).Digest(), content.Digest())
	assert.Zero(t, content.Size())
	require.NoError(t, content.Verify())

	fsys, err := snapshot.Replay(snapshot.New(
		snapshot.CreateDir("/"),
		snapshot.CreateFile("/empty", content),
	), memfs.New())
	require.NoError(t, err)

	data, err := fsys.ReadFile("empty")
	require.NoError(t, err)
	assert.Empty(t, data)
}
