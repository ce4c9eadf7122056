package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pure-Company/fpidioms"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func expectedText(t *testing.T) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, fpidioms.NewRunner(nil, fpidioms.DefaultSteps()...).Run(&buf))
	return buf.String()
}

func TestRoot_NoArgsPrintsDemonstrations(t *testing.T) {
	out, err := execute(t)

	require.NoError(t, err)
	assert.Equal(t, expectedText(t), out)
	assert.Equal(t, 9, strings.Count(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "Factorial of 5: 120\n"))
	assert.True(t, strings.HasSuffix(out, "Pattern matching (name): Sura\n"))
}

func TestRoot_RepeatedRunsAreIdentical(t *testing.T) {
	first, err := execute(t)
	require.NoError(t, err)
	second, err := execute(t)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRoot_DebugLoggingKeepsStdoutClean(t *testing.T) {
	out, err := execute(t, "--log-level", "debug")

	require.NoError(t, err)
	assert.Equal(t, expectedText(t), out)
}

func TestRoot_JSONOutput(t *testing.T) {
	out, err := execute(t, "--output", "json")
	require.NoError(t, err)

	var report fpidioms.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Lines, 9)
	assert.Equal(t, fpidioms.Line{Label: "Sum", Value: "15"}, report.Lines[4])
}

func TestRoot_YAMLOutput(t *testing.T) {
	out, err := execute(t, "--output", "yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "label: Curried add(5, 3)")
}

func TestRoot_UnknownOutput(t *testing.T) {
	out, err := execute(t, "--output", "xml")

	require.ErrorIs(t, err, fpidioms.ErrUnknownFormat)
	assert.Empty(t, out)
}

func TestRoot_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud")
	require.Error(t, err)
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := execute(t, "extra")
	require.Error(t, err)
}

func TestRoot_EnvSelectsOutput(t *testing.T) {
	t.Setenv("FPIDIOMS_OUTPUT", "json")

	out, err := execute(t)

	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "expected JSON, got %q", out)
}

func TestRoot_FlagOverridesEnv(t *testing.T) {
	t.Setenv("FPIDIOMS_OUTPUT", "json")

	out, err := execute(t, "--output", "text")

	require.NoError(t, err)
	assert.Equal(t, expectedText(t), out)
}

func TestRoot_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpidioms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\nlog_level: error\n"), 0o600))

	out, err := execute(t, "--config", path)

	require.NoError(t, err)
	assert.Contains(t, out, "lines:")
}

func TestRoot_EnvSelectsLogLevel(t *testing.T) {
	t.Setenv("FPIDIOMS_LOG_LEVEL", "loud")

	_, err := execute(t)
	require.Error(t, err)
}

func TestRoot_ConfigFileSelectsLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpidioms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o600))

	_, err := execute(t, "--config", path)
	require.Error(t, err)
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Equal(t, "fpidioms "+version+"\n", out)
}
