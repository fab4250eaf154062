// cryptor
package cryptors

import (
	"fmt"

	"github.com/bgallie/enigma/cryptors/alphabet"
)

const (
	AlphabetSize = alphabet.Size
	MaxPlugPairs = AlphabetSize / 2
)

// Direction selects which way a signal crosses a wired stage.  Forward is the
// path from the keyboard toward the reflector; Inverse is the path back.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Inverse:
		return "inverse"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Permuter is implemented by the stages that apply a bijection over the
// alphabet and need to know which way the signal is travelling.
type Permuter interface {
	Apply(Direction, alphabet.Letter) alphabet.Letter
}

// ConfigurationError reports a machine setting that cannot be assembled.
type ConfigurationError struct {
	Setting string // rotors, positions, reflector, stator, plugboard or wiring
	Value   string
	Reason  string
}

func NewConfigurationError(setting, value, format string, a ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		Setting: setting,
		Value:   value,
		Reason:  fmt.Sprintf(format, a...),
	}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("enigma: invalid %s %q: %s", e.Setting, e.Value, e.Reason)
}

// InvalidCharacterError is returned when a character offered to the machine is
// not an upper case Latin letter.
type InvalidCharacterError rune

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("enigma: invalid character %q", rune(e))
}
