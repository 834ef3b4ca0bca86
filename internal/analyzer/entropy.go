package analyzer

import (
	"math"

	"github.com/jonathan/darkforge/internal/types"
)

// Character class sizes used for the alphabet.
const (
	LowerSetSize         = 26
	UpperSetSize         = 26
	DigitSetSize         = 10
	DefaultSymbolSetSize = 33
)

// Compose counts the character classes of password. Anything that is not an
// ASCII letter or digit counts as a symbol.
func Compose(password string) types.Composition {
	var c types.Composition
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lower++
		case r >= 'A' && r <= 'Z':
			c.Upper++
		case r >= '0' && r <= '9':
			c.Digit++
		default:
			c.Symbol++
		}
	}
	return c
}

// AlphabetSize sums the sizes of the classes present in c.
func AlphabetSize(c types.Composition, symbolSetSize int) int {
	size := 0
	if c.HasLower() {
		size += LowerSetSize
	}
	if c.HasUpper() {
		size += UpperSetSize
	}
	if c.HasDigit() {
		size += DigitSetSize
	}
	if c.HasSymbol() {
		size += symbolSetSize
	}
	return size
}

// Entropy is length × log2(alphabet), zero for an empty alphabet.
func Entropy(length, alphabet int) float64 {
	if length <= 0 || alphabet <= 1 {
		return 0
	}
	return float64(length) * math.Log2(float64(alphabet))
}
