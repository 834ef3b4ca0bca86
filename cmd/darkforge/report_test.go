package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportCommand_ReprintsAnalysis(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dir := t.TempDir()
	wordlist := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(wordlist, []byte("password\nTr0ub4dor&9Xk!\n"), 0o600))

	out, err := exec.Command(binaryPath, "analyze", "--file", wordlist, "--out-dir", dir, "--no-visualize").CombinedOutput()
	require.NoError(t, err, string(out))
	reports, err := filepath.Glob(filepath.Join(dir, "analysis_*.json"))
	require.NoError(t, err)
	require.Len(t, reports, 1)

	out, err = exec.Command(binaryPath, "report", "--in", reports[0]).CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "Passwords analyzed: 2")
	assert.Contains(t, string(out), "STRENGTH DISTRIBUTION")
}

func TestReportCommand_MissingFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	out, err := exec.Command(binaryPath, "report", "--in", filepath.Join(t.TempDir(), "nope.json")).CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(out), "failed to read report")
}

func TestReportCommand_Inconsistent(t *testing.T) {
	binaryPath := getBinaryPath(t)
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"summary": {"total": 3}, "records": []}`), 0o600))

	out, err := exec.Command(binaryPath, "report", "--in", path).CombinedOutput()
	require.Error(t, err)
	assert.Contains(t, string(out), "inconsistent")
}
