package export

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"

	"github.com/jonathan/darkforge/internal/config"
)

func TestHashers_KnownDigests(t *testing.T) {
	tests := []struct {
		hashType HashType
		want     string
	}{
		{HashMD5, "5f4dcc3b5aa765d61d8327deb882cf99"},
		{HashSHA1, "5baa61e4c9b93f3f0682250b6cf8331b7ee68fd8"},
		{HashSHA256, "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"},
		{HashSHA512, "b109f3bbbc244eb82441917ed06d618b9008dd09b3befd1b5e07394c706a8bb980b1d7785e5976ec049b46df5f1326af5a2ea6d103fd07c95385ffab0cacbc86"},
		{HashNTLM, "8846f7eaee8fb117ad06bdd830b7586c"},
	}
	for _, tt := range tests {
		t.Run(string(tt.hashType), func(t *testing.T) {
			h, err := NewHasher(tt.hashType, nil)
			require.NoError(t, err)
			got, err := h.Hash("password")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHasher_BcryptNeedsPasswordHasher(t *testing.T) {
	_, err := NewHasher(HashBcrypt, nil)
	assert.ErrorIs(t, err, ErrNoPasswordHasher)

	_, err = NewHasher("crc32", nil)
	assert.Error(t, err)
}

func TestExporter_Lines(t *testing.T) {
	tests := []struct {
		format   Format
		hashType HashType
		want     string
	}{
		{FormatPlain, HashMD5, "password"},
		{FormatHashcat, HashMD5, "5f4dcc3b5aa765d61d8327deb882cf99:password"},
		{FormatHashcat, HashNTLM, "8846f7eaee8fb117ad06bdd830b7586c:password"},
		{FormatJohn, HashSHA256, "$SHA256$5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8:password"},
		{FormatJohn, HashNTLM, "$NT$8846f7eaee8fb117ad06bdd830b7586c:password"},
		{FormatJohn, HashMD5, "$dynamic_0$5f4dcc3b5aa765d61d8327deb882cf99:password"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format)+"/"+string(tt.hashType), func(t *testing.T) {
			e, err := New(tt.format, tt.hashType)
			require.NoError(t, err)
			line, err := e.Line("password")
			require.NoError(t, err)
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestExporter_Bcrypt(t *testing.T) {
	pc, err := config.ExportConfig{BcryptCost: config.MinBcryptCost}.Password()
	require.NoError(t, err)

	e, err := New(FormatHashcat, HashBcrypt, WithPasswordHasher(pc))
	require.NoError(t, err)

	line, err := e.Line("Buddy123")
	require.NoError(t, err)
	hash, plain, ok := strings.Cut(line, ":")
	require.True(t, ok)
	assert.Equal(t, "Buddy123", plain)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("Buddy123")))
}

func TestExporter_Write(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e, err := New(FormatHashcat, HashMD5, WithLogger(zap.New(core)))
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := e.Write(context.Background(), &buf, []string{"password", "", "  ", "John1985"})
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99:password", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ":John1985"))
	assert.Equal(t, 1, logs.FilterMessage("Exported candidates").Len())
}

func TestExporter_WriteCancelled(t *testing.T) {
	e, err := New(FormatPlain, "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = e.Write(ctx, &bytes.Buffer{}, []string{"a"})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New("csv", HashMD5)
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	f, err := ParseFormat("john")
	require.NoError(t, err)
	assert.Equal(t, FormatJohn, f)
	_, err = ParseFormat("JOHN")
	assert.Error(t, err)

	h, err := ParseHashType("ntlm")
	require.NoError(t, err)
	assert.Equal(t, HashNTLM, h)
	_, err = ParseHashType("lm")
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	ts := time.Date(2025, 3, 23, 14, 15, 0, 0, time.UTC)
	assert.Equal(t, "hashcat_20250323_141500.txt", FileName(FormatHashcat, ts))
	assert.Equal(t, "john_20250323_141500.txt", FileName(FormatJohn, ts))
	assert.Equal(t, "wordlist_20250323_141500.txt", FileName(FormatPlain, ts))
}
