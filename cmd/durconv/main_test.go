package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/durconv/internal/app"
	"github.com/vk/durconv/internal/cli"
)

func TestRun_Stdin(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	stdin := strings.NewReader("7min\n1day 2hr 3min 4sec\n")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), stdin, out, errOut, []string{"-o", "json"})

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "420000000000\n93784000000000\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_FailOnError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "durations.txt")
	require.NoError(t, os.WriteFile(path, []byte("1sec\n5xx\n"), 0600))
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), strings.NewReader(""), out, errOut, []string{"-i", path, "-fail-on-error"})

	// --- Assert ---
	require.ErrorIs(t, err, app.ErrConversionFailed)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2, "failing elements are rendered in place")
	assert.Equal(t, "1sec", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "error: "), "got %q", lines[1])
	assert.Contains(t, errOut.String(), "Can't convert to duration")
}

func TestRun_Cancelled(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(ctx, strings.NewReader("1sec\n2sec\n"), out, &bytes.Buffer{}, nil)

	// --- Assert ---
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String(), "nothing is converted after cancellation")
}
