package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/jonathan/darkforge/internal/db"
	"github.com/jonathan/darkforge/internal/types"
)

// errNoDatabase is returned by commands that need a configured database.
var errNoDatabase = errors.New("no database configured; set --database-url or DATABASE_URL")

// connectTimeout bounds the initial database connection.
const connectTimeout = 5 * time.Second

// openStore connects to the configured database. It returns nil, nil when no
// database URL is configured.
func openStore(ctx context.Context) (*db.DB, error) {
	if appConfig == nil || appConfig.DatabaseURL == "" {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	store, err := db.Connect(ctx, appConfig.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// resolveYear picks the year used for year-suffix variants: flag, then config, then the clock.
func resolveYear(flagYear, configYear int, now time.Time) int {
	if flagYear > 0 {
		return flagYear
	}
	if configYear > 0 {
		return configYear
	}
	return now.Year()
}

// resolveTarget picks a flag value over the configured one.
func resolveTarget(flagValue, configValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return configValue
}

// defaultCandidatesPath names the wordlist for a profile inside dir.
func defaultCandidatesPath(dir string, p *types.Profile) string {
	name := strings.ToLower(p.FirstName + "_" + p.LastName)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	return filepath.Join(dir, name+"_passwords.txt")
}

// createOutput creates path and any missing parent directories.
func createOutput(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

// readSecret reads a password without echo when in is a terminal, otherwise
// a single line.
func readSecret(in *os.File, out io.Writer) (string, error) {
	_, _ = fmt.Fprint(out, "Enter password to analyze: ")
	if term.IsTerminal(int(in.Fd())) {
		secret, err := term.ReadPassword(int(in.Fd()))
		_, _ = fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(secret), nil
	}
	return readLine(in)
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// warnStore logs a persistence failure without failing the command.
func warnStore(action string, err error) {
	logger.Warn("Failed to record history", zap.String("action", action), zap.Error(err))
}
