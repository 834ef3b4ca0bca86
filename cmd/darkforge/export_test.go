package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_MissingInputFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "export", "--format", "hashcat")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestExportCommand_Hashcat(t *testing.T) {
	binaryPath := getBinaryPath(t)
	dir := t.TempDir()
	wordlist := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(wordlist, []byte("password\n"), 0o600))
	outDir := filepath.Join(dir, "out")

	cmd := exec.Command(binaryPath, "export", "--in", wordlist, "--out-dir", outDir, "--format", "hashcat", "--hash-type", "ntlm")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Exported 1 passwords")

	files, err := filepath.Glob(filepath.Join(outDir, "hashcat_*.txt"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	content, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "8846f7eaee8fb117ad06bdd830b7586c:password", strings.TrimSpace(string(content)))
}

func TestExportCommand_UnknownFormat(t *testing.T) {
	binaryPath := getBinaryPath(t)
	wordlist := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(wordlist, []byte("password\n"), 0o600))

	cmd := exec.Command(binaryPath, "export", "--in", wordlist, "--format", "csv")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "unknown export format")
}
