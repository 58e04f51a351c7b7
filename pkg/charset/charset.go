// pkg/charset/charset.go

// Package charset holds the character classes shared by synthesis and rationale.
package charset

import "strings"

const (
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Digits  = "0123456789"
	Symbols = "!@#$%^&*()-_=+[]{}|;:,.<>?"

	// All is the combined charset used for random fill and padding.
	All = Upper + Lower + Digits + Symbols
)

// Coverage records which character classes a string contains.
type Coverage struct {
	Upper  bool
	Lower  bool
	Digit  bool
	Symbol bool
}

// Complete reports whether all four classes are present.
func (c Coverage) Complete() bool {
	return c.Upper && c.Lower && c.Digit && c.Symbol
}

// Classify scans s once. Letters and digits are ASCII only; symbols are Symbols members.
func Classify(s string) Coverage {
	var c Coverage
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= 'a' && r <= 'z':
			c.Lower = true
		case r >= '0' && r <= '9':
			c.Digit = true
		case IsSymbol(r):
			c.Symbol = true
		}
	}
	return c
}

func IsSymbol(r rune) bool {
	return strings.ContainsRune(Symbols, r)
}

func IsASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// FlipCase swaps the case of an ASCII letter and returns anything else unchanged.
func FlipCase(r rune) rune {
	switch {
	case r >= 'A' && r <= 'Z':
		return r + ('a' - 'A')
	case r >= 'a' && r <= 'z':
		return r - ('a' - 'A')
	default:
		return r
	}
}
