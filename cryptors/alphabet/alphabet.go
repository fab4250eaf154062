// Package alphabet converts between the 26 Latin letters and their ordinal
// positions 0 through 25.  Every other cryptor does its arithmetic on these
// ordinals.
package alphabet

import (
	"fmt"
	"strings"
)

// Size is the number of letters in the alphabet.
const Size = 26

// Letter is a letter of the alphabet held as its ordinal, 0 for A through 25
// for Z.
type Letter uint8

const (
	A Letter = 0
	Z Letter = Size - 1
)

// FromRune returns the letter for r.  Upper and lower case are accepted.  The
// boolean is false if r is not a Latin letter.
func FromRune(r rune) (Letter, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Letter(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return Letter(r - 'a'), true
	}
	return 0, false
}

// FromOrdinal returns the letter at ordinal n.  Callers must reduce n modulo
// Size first; an out of range ordinal is a programming error and panics.
func FromOrdinal(n int) Letter {
	if n < 0 || n >= Size {
		panic(fmt.Sprintf("alphabet: ordinal %d out of range", n))
	}
	return Letter(n)
}

// Mod reduces any integer into the alphabet, so Mod(-1) is Z and Mod(26) is A.
func Mod(n int) Letter {
	n %= Size
	if n < 0 {
		n += Size
	}
	return FromOrdinal(n)
}

// Parse converts every rune of s into a letter.  The boolean is false if any
// rune is not a Latin letter.
func Parse(s string) ([]Letter, bool) {
	letters := make([]Letter, 0, len(s))
	for _, r := range s {
		l, ok := FromRune(r)
		if !ok {
			return nil, false
		}
		letters = append(letters, l)
	}
	return letters, true
}

// Format returns the upper case string spelled by letters.
func Format(letters []Letter) string {
	var sb strings.Builder
	sb.Grow(len(letters))
	for _, l := range letters {
		sb.WriteRune(l.Rune())
	}
	return sb.String()
}

// Ordinal returns the position of l in the alphabet.
func (l Letter) Ordinal() int {
	return int(l)
}

// Shift moves l n places along the alphabet, wrapping around in either
// direction.
func (l Letter) Shift(n int) Letter {
	return Mod(int(l) + n)
}

// Rune returns the upper case rune for l.
func (l Letter) Rune() rune {
	return 'A' + rune(l)
}

func (l Letter) String() string {
	return string(l.Rune())
}
