// permutator
package permutator

import (
	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/alphabet"
)

// Permutator is a fixed bijection over the alphabet.  The inverse table is
// built once so both directions are a single array lookup.
type Permutator struct {
	forward [cryptors.AlphabetSize]alphabet.Letter
	inverse [cryptors.AlphabetSize]alphabet.Letter
}

var _ cryptors.Permuter = (*Permutator)(nil)

// New builds a permutator from a wiring string: the letter at position i is
// where the letter with ordinal i is sent.  The wiring must name every letter
// exactly once.
func New(wiring string) (*Permutator, error) {
	letters, ok := alphabet.Parse(wiring)
	if !ok {
		return nil, cryptors.NewConfigurationError("wiring", wiring, "contains a character that is not a letter")
	}
	if len(letters) != cryptors.AlphabetSize {
		return nil, cryptors.NewConfigurationError("wiring", wiring, "has %d letters, want %d", len(letters), cryptors.AlphabetSize)
	}

	var p Permutator
	var seen [cryptors.AlphabetSize]bool
	for i, l := range letters {
		if seen[l] {
			return nil, cryptors.NewConfigurationError("wiring", wiring, "letter %s appears more than once", l)
		}
		seen[l] = true
		p.forward[i] = l
		p.inverse[l] = alphabet.FromOrdinal(i)
	}
	return &p, nil
}

// MustNew is New for the built in catalogs; it panics on a bad wiring.
func MustNew(wiring string) *Permutator {
	p, err := New(wiring)
	if err != nil {
		panic(err)
	}
	return p
}

// Forward returns the letter l is wired to.
func (p *Permutator) Forward(l alphabet.Letter) alphabet.Letter {
	return p.forward[l]
}

// Inverse returns the letter that is wired to l.
func (p *Permutator) Inverse(l alphabet.Letter) alphabet.Letter {
	return p.inverse[l]
}

func (p *Permutator) Apply(d cryptors.Direction, l alphabet.Letter) alphabet.Letter {
	if d == cryptors.Inverse {
		return p.inverse[l]
	}
	return p.forward[l]
}

// IsInvolution reports whether applying the permutation twice is the identity.
func (p *Permutator) IsInvolution() bool {
	return p.forward == p.inverse
}

// FixedPoints returns the letters the permutation maps to themselves.
func (p *Permutator) FixedPoints() []alphabet.Letter {
	var fixed []alphabet.Letter
	for i, l := range p.forward {
		if int(l) == i {
			fixed = append(fixed, l)
		}
	}
	return fixed
}

// String returns the wiring in the form accepted by New.
func (p *Permutator) String() string {
	return alphabet.Format(p.forward[:])
}
