// Package export writes candidate wordlists in cracking-tool formats.
package export

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"unicode/utf16"

	"golang.org/x/crypto/md4" //nolint:staticcheck // NTLM is defined over MD4
)

// HashType names a digest used for export lines.
type HashType string

// Supported hash types
const (
	HashMD5    HashType = "md5"
	HashSHA1   HashType = "sha1"
	HashSHA256 HashType = "sha256"
	HashSHA512 HashType = "sha512"
	HashNTLM   HashType = "ntlm"
	HashBcrypt HashType = "bcrypt"
)

// HashTypes lists every supported hash type.
var HashTypes = []HashType{HashMD5, HashSHA1, HashSHA256, HashSHA512, HashNTLM, HashBcrypt}

// ParseHashType validates a hash type name.
func ParseHashType(name string) (HashType, error) {
	for _, h := range HashTypes {
		if string(h) == name {
			return h, nil
		}
	}
	return "", fmt.Errorf("unknown hash type %q", name)
}

// Hasher renders the digest of a password as text.
type Hasher interface {
	Hash(password string) (string, error)
}

// PasswordHasher is a salted password hasher such as bcrypt.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type digestHasher func() hash.Hash

func (d digestHasher) Hash(password string) (string, error) {
	h := d()
	h.Write([]byte(password))
	return hex.EncodeToString(h.Sum(nil)), nil
}

type ntlmHasher struct{}

func (ntlmHasher) Hash(password string) (string, error) {
	units := utf16.Encode([]rune(password))
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	h := md4.New()
	h.Write(buf)
	return hex.EncodeToString(h.Sum(nil)), nil
}

type saltedHasher struct {
	inner PasswordHasher
}

func (s saltedHasher) Hash(password string) (string, error) {
	return s.inner.HashPassword(password)
}

// ErrNoPasswordHasher is returned for bcrypt exports without bcrypt settings.
var ErrNoPasswordHasher = errors.New("bcrypt export requires a password hasher")

// NewHasher returns the Hasher for t. The bcrypt type delegates to ph.
func NewHasher(t HashType, ph PasswordHasher) (Hasher, error) {
	switch t {
	case HashMD5:
		return digestHasher(md5.New), nil
	case HashSHA1:
		return digestHasher(sha1.New), nil
	case HashSHA256:
		return digestHasher(sha256.New), nil
	case HashSHA512:
		return digestHasher(sha512.New), nil
	case HashNTLM:
		return ntlmHasher{}, nil
	case HashBcrypt:
		if ph == nil {
			return nil, ErrNoPasswordHasher
		}
		return saltedHasher{inner: ph}, nil
	default:
		return nil, fmt.Errorf("unknown hash type %q", t)
	}
}
