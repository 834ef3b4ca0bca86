package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWordlist(t *testing.T) {
	got, err := ReadWordlist(strings.NewReader("password\n\n  John1985  \r\nqwerty"))
	require.NoError(t, err)
	assert.Equal(t, []string{"password", "John1985", "qwerty"}, got)
}

func TestReadWordlist_Empty(t *testing.T) {
	got, err := ReadWordlist(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWordlistFile_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWordlist(&buf, []string{"John1985", "Smith!"}))
	assert.Equal(t, "John1985\nSmith!\n", buf.String())

	path := filepath.Join(t.TempDir(), "candidates.txt")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	got, err := ReadWordlistFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"John1985", "Smith!"}, got)
}

func TestReadWordlistFile_Missing(t *testing.T) {
	_, err := ReadWordlistFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
