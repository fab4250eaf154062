// rotor
package rotor

import (
	"fmt"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/alphabet"
	"github.com/bgallie/enigma/cryptors/permutator"
)

type rotorType struct {
	name     string
	wiring   *permutator.Permutator
	turnover alphabet.Letter
}

// The five rotors of the Wehrmacht Enigma I, in catalog order.
var catalog = []rotorType{
	{"I", permutator.MustNew("EKMFLGDQVZNTOWYHXUSPAIBRCJ"), alphabet.Letter('Q' - 'A')},
	{"II", permutator.MustNew("AJDKSIRUXBLHWTMCQGZNPYFVOE"), alphabet.Letter('E' - 'A')},
	{"III", permutator.MustNew("BDFHJLCPRTXVZNYEIWGAKMUSQO"), alphabet.Letter('V' - 'A')},
	{"IV", permutator.MustNew("ESOVPZJAYQUIRHXLNFTGKDCMWB"), alphabet.Letter('J' - 'A')},
	{"V", permutator.MustNew("VZBRGITYUPSDNHLXAWMJQOFECK"), alphabet.Letter('Z' - 'A')},
}

// Names returns the rotor types that New accepts.
func Names() []string {
	names := make([]string, len(catalog))
	for i, t := range catalog {
		names[i] = t.name
	}
	return names
}

func lookup(name string) (rotorType, bool) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for _, t := range catalog {
		if t.name == n {
			return t, true
		}
	}
	return rotorType{}, false
}

// Rotor is a positionable wired wheel.  Only its position changes once it is
// built.
type Rotor struct {
	rotorType
	start    alphabet.Letter
	position alphabet.Letter
}

var _ cryptors.Permuter = (*Rotor)(nil)

// New returns the named rotor turned to start.
func New(name string, start alphabet.Letter) (*Rotor, error) {
	t, ok := lookup(name)
	if !ok {
		return nil, cryptors.NewConfigurationError("rotors", name, "unknown rotor type, want one of %s", strings.Join(Names(), ", "))
	}
	return &Rotor{rotorType: t, start: start, position: start}, nil
}

// Advance turns the rotor one place.
func (r *Rotor) Advance() {
	r.position = r.position.Shift(1)
}

// TurnoverReached reports whether the rotor sits at its turnover letter.
func (r *Rotor) TurnoverReached() bool {
	return r.position == r.turnover
}

// Encode passes l through the rotor.  The contact offset of the current
// position is added on entry and removed on exit, so one wiring table gives a
// different substitution at every position.
func (r *Rotor) Encode(d cryptors.Direction, l alphabet.Letter) alphabet.Letter {
	offset := r.position.Ordinal()
	return r.wiring.Apply(d, l.Shift(offset)).Shift(-offset)
}

func (r *Rotor) Apply(d cryptors.Direction, l alphabet.Letter) alphabet.Letter {
	return r.Encode(d, l)
}

func (r *Rotor) Position() alphabet.Letter {
	return r.position
}

// Reset returns the rotor to the position it was built with.
func (r *Rotor) Reset() {
	r.position = r.start
}

func (r *Rotor) Name() string {
	return r.name
}

func (r *Rotor) Turnover() alphabet.Letter {
	return r.turnover
}

func (r *Rotor) String() string {
	return fmt.Sprintf("%s@%s", r.name, r.position)
}
