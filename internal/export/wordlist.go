package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineBytes bounds a single wordlist line.
const maxLineBytes = 1 << 20

// ReadWordlist reads one password per line, trimming whitespace and skipping blank lines.
func ReadWordlist(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var out []string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read wordlist: %w", err)
	}
	return out, nil
}

// ReadWordlistFile reads a wordlist from path.
func ReadWordlistFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wordlist %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ReadWordlist(f)
}

// WriteWordlist writes passwords one per line.
func WriteWordlist(w io.Writer, passwords []string) error {
	bw := bufio.NewWriter(w)
	for _, pw := range passwords {
		if _, err := bw.WriteString(pw + "\n"); err != nil {
			return fmt.Errorf("failed to write wordlist: %w", err)
		}
	}
	return bw.Flush()
}
