// reflector
package reflector

import (
	"errors"
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/alphabet"
	"github.com/bgallie/enigma/cryptors/permutator"
)

var catalog = []struct {
	name   string
	wiring string
}{
	{"A", "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{"B", "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{"C", "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
}

// Names returns the reflector variants that New accepts.
func Names() []string {
	names := make([]string, len(catalog))
	for i, v := range catalog {
		names[i] = v.name
	}
	return names
}

// Reflector turns the signal back through the rotors.  Its wiring is an
// involution without fixed points, so no letter ever encrypts to itself.
type Reflector struct {
	name   string
	wiring *permutator.Permutator
}

// New returns the named reflector variant.
func New(name string) (*Reflector, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for _, v := range catalog {
		if v.name == n {
			return build(v.name, v.wiring)
		}
	}
	return nil, cryptors.NewConfigurationError("reflector", name, "unknown reflector, want one of %s", strings.Join(Names(), ", "))
}

// FromWiring builds a reflector from a custom wiring, such as a rewired UKW-D.
func FromWiring(wiring string) (*Reflector, error) {
	return build("custom", wiring)
}

func build(name, wiring string) (*Reflector, error) {
	p, err := permutator.New(wiring)
	if err != nil {
		var cfgErr *cryptors.ConfigurationError
		if errors.As(err, &cfgErr) {
			return nil, cryptors.NewConfigurationError("reflector", wiring, "%s", cfgErr.Reason)
		}
		return nil, err
	}
	if !p.IsInvolution() {
		return nil, cryptors.NewConfigurationError("reflector", wiring, "wiring is not an involution")
	}
	if fixed := p.FixedPoints(); len(fixed) > 0 {
		return nil, cryptors.NewConfigurationError("reflector", wiring, "wiring maps %s to itself", alphabet.Format(fixed))
	}
	return &Reflector{name: name, wiring: p}, nil
}

// Reflect returns the letter l is paired with.
func (r *Reflector) Reflect(l alphabet.Letter) alphabet.Letter {
	return r.wiring.Forward(l)
}

func (r *Reflector) Name() string {
	return r.name
}

func (r *Reflector) String() string {
	return r.wiring.String()
}
