// stator
package stator

import (
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/alphabet"
	"github.com/bgallie/enigma/cryptors/permutator"
)

type variant struct {
	name   string
	wiring *permutator.Permutator
}

// The army machines wired the keyboard to the entry wheel in alphabetical
// order; the commercial machines followed the keyboard layout.
var catalog = []variant{
	{"army", permutator.MustNew("ABCDEFGHIJKLMNOPQRSTUVWXYZ")},
	{"commercial", permutator.MustNew("QWERTZUIOASDFGHJKPYXCVBNML")},
}

// Names returns the stator variants that New accepts.
func Names() []string {
	names := make([]string, len(catalog))
	for i, v := range catalog {
		names[i] = v.name
	}
	return names
}

// Stator is the entry wheel between the keyboard and the rotors.
type Stator struct {
	variant
}

var _ cryptors.Permuter = (*Stator)(nil)

func New(name string) (*Stator, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, v := range catalog {
		if v.name == n {
			return &Stator{v}, nil
		}
	}
	return nil, cryptors.NewConfigurationError("stator", name, "unknown stator, want one of %s", strings.Join(Names(), ", "))
}

// PassTo relabels l from keyboard contacts to rotor contacts (Forward) or
// back again (Inverse).
func (s *Stator) PassTo(d cryptors.Direction, l alphabet.Letter) alphabet.Letter {
	return s.wiring.Apply(d, l)
}

func (s *Stator) Apply(d cryptors.Direction, l alphabet.Letter) alphabet.Letter {
	return s.PassTo(d, l)
}

func (s *Stator) Name() string {
	return s.name
}
