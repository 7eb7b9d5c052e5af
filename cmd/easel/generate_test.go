package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shapeLineRE = regexp.MustCompile(`^Shape \d+: (OVAL|CIRCLE|RECTANGLE|SQUARE) \d+(x\d+)?$`)

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Reset flag state mutated by previous runs; pflag keeps Changed
	// sticky across Execute calls.
	resetFlags := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			f.Changed = false
			_ = f.Value.Set(f.DefValue)
		})
	}
	resetFlags(rootCmd.PersistentFlags())
	resetFlags(generateCmd.Flags())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// reportLines splits a text report into its shape lines, checking the header.
func reportLines(t *testing.T, out string) []string {
	t.Helper()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, "Canvas has the following random shapes:", lines[0])
	assert.Equal(t, "", lines[1])
	return lines[2:]
}

func TestGenerateReport(t *testing.T) {
	out, err := execute(t, "generate", "--config-dir", t.TempDir(), "--seed", "42", "--count", "5")
	require.NoError(t, err)

	shapeLines := reportLines(t, out)
	require.Len(t, shapeLines, 5)

	seen := map[string]bool{}
	for _, line := range shapeLines {
		assert.Regexp(t, shapeLineRE, line)

		// Signature is everything after "Shape <id>: ".
		_, sig, found := strings.Cut(line, ": ")
		require.True(t, found)
		assert.False(t, seen[sig], "duplicate signature %q", sig)
		seen[sig] = true
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	dir := t.TempDir()

	first, err := execute(t, "generate", "--config-dir", dir, "--seed", "7", "--count", "10")
	require.NoError(t, err)
	second, err := execute(t, "generate", "--config-dir", dir, "--seed", "7", "--count", "10")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateJSON(t *testing.T) {
	out, err := execute(t, "generate", "--config-dir", t.TempDir(), "--json", "--seed", "3", "--count", "3")
	require.NoError(t, err)

	var view struct {
		CanvasID string `json:"canvas_id"`
		Shapes   []struct {
			ShapeID    int    `json:"shape_id"`
			Type       string `json:"type"`
			Dimensions string `json:"dimensions"`
		} `json:"shapes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &view))

	_, uuidErr := uuid.Parse(view.CanvasID)
	assert.NoError(t, uuidErr, "canvas_id must be a valid UUID")

	require.Len(t, view.Shapes, 3)
	for _, s := range view.Shapes {
		assert.Greater(t, s.ShapeID, 0)
		assert.Contains(t, []string{"OVAL", "CIRCLE", "RECTANGLE", "SQUARE"}, s.Type)
		assert.Regexp(t, `^\d+(x\d+)?$`, s.Dimensions)
	}
}

func TestGenerateCountFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := "count: 4\nseed: 11\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(cfg), 0o644))

	out, err := execute(t, "generate", "--config-dir", dir)
	require.NoError(t, err)
	assert.Len(t, reportLines(t, out), 4)

	// Flag overrides config.yaml.
	out, err = execute(t, "generate", "--config-dir", dir, "--count", "2")
	require.NoError(t, err)
	assert.Len(t, reportLines(t, out), 2)
}

func TestGenerateRejectsNonPositiveCount(t *testing.T) {
	_, err := execute(t, "generate", "--config-dir", t.TempDir(), "--count", "-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must be positive")
}

func TestGenerateWritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "generate", "--config-dir", dir, "--seed", "1")
	require.NoError(t, err)

	data, readErr := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, readErr)
	assert.Contains(t, string(data), "count: 10")
}
