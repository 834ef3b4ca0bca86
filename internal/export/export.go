package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Format is an export line layout.
type Format string

// Supported formats
const (
	FormatPlain   Format = "plain"
	FormatHashcat Format = "hashcat"
	FormatJohn    Format = "john"
)

// Formats lists every supported format.
var Formats = []Format{FormatPlain, FormatHashcat, FormatJohn}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", name)
}

// johnTags are the John the Ripper format prefixes per hash type.
var johnTags = map[HashType]string{
	HashMD5:    "$dynamic_0$",
	HashSHA1:   "$dynamic_26$",
	HashSHA256: "$SHA256$",
	HashSHA512: "$SHA512$",
	HashNTLM:   "$NT$",
	HashBcrypt: "",
}

// Exporter renders candidates as export lines.
type Exporter struct {
	format   Format
	hashType HashType
	hasher   Hasher
	logger   *zap.Logger
}

// Option configures an Exporter.
type Option func(*exportOptions)

type exportOptions struct {
	passwordHasher PasswordHasher
	logger         *zap.Logger
}

// WithPasswordHasher supplies the bcrypt hasher.
func WithPasswordHasher(ph PasswordHasher) Option {
	return func(o *exportOptions) {
		o.passwordHasher = ph
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *exportOptions) {
		o.logger = logger
	}
}

// New builds an Exporter. The hash type is ignored for the plain format.
func New(format Format, hashType HashType, opts ...Option) (*Exporter, error) {
	o := exportOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	e := &Exporter{format: format, hashType: hashType, logger: o.logger}
	switch format {
	case FormatPlain:
		return e, nil
	case FormatHashcat, FormatJohn:
		hasher, err := NewHasher(hashType, o.passwordHasher)
		if err != nil {
			return nil, err
		}
		e.hasher = hasher
		return e, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// Line renders one password.
func (e *Exporter) Line(password string) (string, error) {
	if e.format == FormatPlain {
		return password, nil
	}
	digest, err := e.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", e.hashType, err)
	}
	if e.format == FormatJohn {
		return johnTags[e.hashType] + digest + ":" + password, nil
	}
	return digest + ":" + password, nil
}

// Write renders every password to w, one line each, and returns the number written.
// Blank passwords are skipped.
func (e *Exporter) Write(ctx context.Context, w io.Writer, passwords []string) (int, error) {
	bw := bufio.NewWriter(w)
	written := 0
	for _, pw := range passwords {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if strings.TrimSpace(pw) == "" {
			continue
		}
		line, err := e.Line(pw)
		if err != nil {
			return written, err
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return written, fmt.Errorf("failed to write export line: %w", err)
		}
		written++
	}
	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("failed to flush export: %w", err)
	}

	e.logger.Info("Exported candidates",
		zap.String("format", string(e.format)),
		zap.String("hash_type", string(e.hashType)),
		zap.Int("count", written),
	)
	return written, nil
}

// FileName returns the timestamped output name for format,
// e.g. hashcat_20250323_141500.txt. Plain exports are named wordlist.
func FileName(format Format, t time.Time) string {
	prefix := string(format)
	if format == FormatPlain {
		prefix = "wordlist"
	}
	return fmt.Sprintf("%s_%s.txt", prefix, t.Format("20060102_150405"))
}
