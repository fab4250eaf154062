// plugboard
package plugboard

import (
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/alphabet"
)

// Plugboard swaps the letters of each configured pair.  Unplugged letters pass
// through unchanged.  The mapping is its own inverse, so the same Pass is used
// on the way in and the way out.
type Plugboard struct {
	wiring [cryptors.AlphabetSize]alphabet.Letter
	pairs  [][2]alphabet.Letter
}

// New parses a whitespace separated list of letter pairs such as "MN AB QZ".
// A letter may appear in at most one pair.  An empty list gives an empty
// plugboard.
func New(pairs string) (*Plugboard, error) {
	var p Plugboard
	for i := range p.wiring {
		p.wiring[i] = alphabet.FromOrdinal(i)
	}

	fields := strings.Fields(pairs)
	if len(fields) > cryptors.MaxPlugPairs {
		return nil, cryptors.NewConfigurationError("plugboard", pairs, "has %d pairs, at most %d fit", len(fields), cryptors.MaxPlugPairs)
	}
	var used [cryptors.AlphabetSize]bool
	for _, field := range fields {
		letters, ok := alphabet.Parse(field)
		if !ok || len(letters) != 2 {
			return nil, cryptors.NewConfigurationError("plugboard", pairs, "pair %q is not two letters", field)
		}
		a, b := letters[0], letters[1]
		if a == b {
			return nil, cryptors.NewConfigurationError("plugboard", pairs, "pair %q plugs a letter into itself", field)
		}
		for _, l := range letters {
			if used[l] {
				return nil, cryptors.NewConfigurationError("plugboard", pairs, "letter %s is used in more than one pair", l)
			}
			used[l] = true
		}
		p.wiring[a], p.wiring[b] = b, a
		p.pairs = append(p.pairs, [2]alphabet.Letter{a, b})
	}
	return &p, nil
}

// Pass returns the partner of l, or l itself if it is not plugged.
func (p *Plugboard) Pass(l alphabet.Letter) alphabet.Letter {
	return p.wiring[l]
}

// String returns the pairs in the upper case form accepted by New.
func (p *Plugboard) String() string {
	fields := make([]string, len(p.pairs))
	for i, pr := range p.pairs {
		fields[i] = alphabet.Format(pr[:])
	}
	return strings.Join(fields, " ")
}
