package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/osmforge/internal/app"
	"github.com/specialistvlad/osmforge/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_PanicRecovery(t *testing.T) {
	// --- Arrange ---
	// A constructor that panics stands in for any startup programmer error.
	original := newApp
	newApp = func(io.Writer, *app.Config, ...app.Option) *app.App {
		panic("metrics registry collision")
	}
	t.Cleanup(func() { newApp = original })

	args := []string{"-library", "lib", "office.hcl"}
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, args)

	// --- Assert ---
	require.Error(t, runErr, "run() should have returned an error after recovering from a panic")
	require.Contains(t, runErr.Error(), "application startup panicked")
	require.Contains(t, runErr.Error(), "metrics registry collision")
}

func TestRun_InvalidBuilding(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A building description with a syntax error fails while loading inputs.
	invalidHCL := `
		zone "West" {
			surface "Floor" {
		// Missing closing brace here
	`
	dir := testutil.WriteFiles(t, map[string]string{
		"main.hcl":        invalidHCL,
		"lib/library.idf": testutil.LibraryIDF,
	})
	args := []string{"-library", filepath.Join(dir, "lib"), filepath.Join(dir, "main.hcl")}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
	require.NoFileExists(t, filepath.Join(dir, "main.idf"))
}

func TestRun_WritesModel(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"office.hcl":      testutil.BuildingHCL,
		"lib/library.idf": testutil.LibraryIDF,
	})
	out := &bytes.Buffer{}

	err := run(out, []string{"-library", filepath.Join(dir, "lib"), "-log-format", "text", filepath.Join(dir, "office.hcl")})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "office.idf"))
	require.NoError(t, err)
	require.Contains(t, string(data), "BuildingSurface:Detailed")
	require.Contains(t, out.String(), "Assembly finished.")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
