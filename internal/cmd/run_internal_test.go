// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aibor/dirsnap/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot(files ...string) *snapshot.Snapshot {
	instructions := []snapshot.Instruction{snapshot.CreateDir("/")}

	for _, file := range files {
		content := snapshot.NewContent([]byte(strings.Repeat(file, 100)))
		instructions = append(instructions, snapshot.CreateFile("/"+file, content))
	}

	return snapshot.New(instructions...)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedOutput string
	}{
		{
			name: "parse args error",
			err:  &ParseArgsError{msg: "args", err: assert.AnError},
		},
		{
			name:           "other error",
			err:            assert.AnError,
			expectedOutput: "level=ERROR msg=\"" + assert.AnError.Error() + "\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer

			setupLogging(&stderr, false)

			exitCode := handleError(tt.err)
			assert.Equal(t, -1, exitCode)

			output := stderr.String()
			if tt.expectedOutput == "" {
				assert.Empty(t, output)
			} else {
				assert.Contains(t, output, tt.expectedOutput)
			}
		})
	}
}

func TestEncodeArchive(t *testing.T) {
	snap := testSnapshot("a", "b", "c")

	plain, err := encodeArchive(snap, false)
	require.NoError(t, err)

	verified, err := encodeArchive(snap, true)
	require.NoError(t, err)

	assert.Equal(t, plain, verified)
}

func TestVerifyArchive(t *testing.T) {
	var archive bytes.Buffer

	require.NoError(t, snapshot.Encode(&archive, testSnapshot("a", "b")))

	tests := []struct {
		name      string
		archive   []byte
		expected  *snapshot.Snapshot
		assertErr require.ErrorAssertionFunc
	}{
		{
			name:      "matches",
			archive:   archive.Bytes(),
			expected:  testSnapshot("a", "b"),
			assertErr: require.NoError,
		},
		{
			name:     "mismatch",
			archive:  archive.Bytes(),
			expected: testSnapshot("a", "c"),
			assertErr: func(t require.TestingT, err error, a ...any) {
				require.ErrorIs(t, err, ErrVerifyMismatch, a...)
			},
		},
		{
			name:      "truncated",
			archive:   archive.Bytes()[:archive.Len()/2],
			expected:  testSnapshot("a", "b"),
			assertErr: require.Error,
		},
		{
			name:     "garbage",
			archive:  bytes.Repeat([]byte("garbage"), 32),
			expected: testSnapshot("a", "b"),
			assertErr: func(t require.TestingT, err error, a ...any) {
				require.ErrorIs(t, err, &snapshot.ArchiveError{Op: "read"}, a...)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := verifyArchive(bytes.NewReader(tt.archive), tt.expected.Digest())
			tt.assertErr(t, err)
		})
	}
}

func TestParseArgsError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseArgsError
		expected string
	}{
		{
			name:     "message only",
			err:      &ParseArgsError{msg: "no dir given"},
			expected: "no dir given",
		},
		{
			name:     "wrapped",
			err:      &ParseArgsError{msg: "workers", err: ErrWorkersOutOfRange},
			expected: "workers: workers must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, &ParseArgsError{})
		})
	}
}
