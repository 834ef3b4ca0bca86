package analyzer

import (
	_ "embed"
	"regexp"
	"strings"
	"unicode"
)

// Detector names
const (
	DetectAllDigits        = "all-digits"
	DetectAllLowercase     = "all-lowercase"
	DetectSequentialDigits = "sequential-digits"
	DetectRepeated         = "repeated-characters"
	DetectKeyboard         = "keyboard-sequence"
	DetectCommonWord       = "common-word"
	DetectDateLike         = "date-like"
)

// Detector is a named predicate flagging a weak password pattern.
type Detector interface {
	Name() string
	Match(password string) bool
}

type detectorFunc struct {
	name string
	fn   func(string) bool
}

func (d detectorFunc) Name() string { return d.name }

func (d detectorFunc) Match(password string) bool {
	if password == "" {
		return false
	}
	return d.fn(password)
}

// NewDetector wraps a predicate as a named Detector. Empty passwords never match.
func NewDetector(name string, fn func(string) bool) Detector {
	return detectorFunc{name: name, fn: fn}
}

// DefaultDetectors returns the ordered default detector table.
func DefaultDetectors() []Detector {
	return []Detector{
		NewDetector(DetectAllDigits, allDigits),
		NewDetector(DetectAllLowercase, allLowercase),
		NewDetector(DetectSequentialDigits, sequentialDigits),
		NewDetector(DetectRepeated, repeatedRun),
		NewDetector(DetectKeyboard, keyboardRun),
		NewDetector(DetectCommonWord, commonWord),
		NewDetector(DetectDateLike, dateLike),
	}
}

const (
	minSequentialRun = 3
	minRepeatRun     = 3
	minKeyboardRun   = 4
)

func allDigits(pw string) bool {
	for _, r := range pw {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allLowercase(pw string) bool {
	for _, r := range pw {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// sequentialDigits looks for ascending or descending runs like 123 or 987.
func sequentialDigits(pw string) bool {
	r := []rune(pw)
	for step := -1; step <= 1; step += 2 {
		run := 1
		for i := 1; i < len(r); i++ {
			if isDigit(r[i]) && isDigit(r[i-1]) && r[i]-r[i-1] == rune(step) {
				run++
				if run >= minSequentialRun {
					return true
				}
				continue
			}
			run = 1
		}
	}
	return false
}

func repeatedRun(pw string) bool {
	r := []rune(pw)
	run := 1
	for i := 1; i < len(r); i++ {
		if r[i] == r[i-1] {
			run++
			if run >= minRepeatRun {
				return true
			}
			continue
		}
		run = 1
	}
	return false
}

var keyboardRows = []string{
	"1234567890",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

type keyPos struct {
	row, col int
}

var keyPositions = func() map[rune]keyPos {
	m := make(map[rune]keyPos)
	for row, keys := range keyboardRows {
		for col, k := range keys {
			m[k] = keyPos{row: row, col: col}
		}
	}
	return m
}()

// keyboardRun looks for walks along a single QWERTY row in either direction.
func keyboardRun(pw string) bool {
	r := []rune(strings.ToLower(pw))
	for step := -1; step <= 1; step += 2 {
		run := 1
		for i := 1; i < len(r); i++ {
			prev, okPrev := keyPositions[r[i-1]]
			cur, okCur := keyPositions[r[i]]
			if okPrev && okCur && prev.row == cur.row && cur.col-prev.col == step {
				run++
				if run >= minKeyboardRun {
					return true
				}
				continue
			}
			run = 1
		}
	}
	return false
}

//go:embed common_passwords.txt
var commonPasswordsRaw string

// commonPasswords holds the embedded list, lowercased.
var commonPasswords = func() map[string]struct{} {
	lines := strings.Split(commonPasswordsRaw, "\n")
	set := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		pw := strings.TrimSpace(line)
		if pw == "" {
			continue
		}
		set[strings.ToLower(pw)] = struct{}{}
	}
	return set
}()

var unleet = strings.NewReplacer("4", "a", "@", "a", "3", "e", "1", "i", "0", "o", "5", "s", "$", "s")

// commonWord checks the password, its letter core and the de-leeted core
// against the common-password list.
func commonWord(pw string) bool {
	lower := strings.ToLower(pw)
	if isCommon(lower) {
		return true
	}
	core := strings.TrimFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) })
	if len([]rune(core)) < 3 {
		return false
	}
	return isCommon(core) || isCommon(unleet.Replace(core))
}

func isCommon(s string) bool {
	_, ok := commonPasswords[s]
	return ok
}

var dateRe = regexp.MustCompile(`(?:19|20)\d{2}|\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4}`)

func dateLike(pw string) bool {
	return dateRe.MatchString(pw)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
