package enigma

import (
	"bufio"
	"io"

	"github.com/bgallie/enigma/cryptors/alphabet"
)

// Stats counts what Process did with its input.
type Stats struct {
	Letters int64 // letters encrypted
	Skipped int64 // characters that were not letters
}

// Process reads text from src and encrypts every letter in it, folding lower
// case to upper case, handing each result to emit.  Characters that are not
// Latin letters are skipped and never reach the rotors.
func (m *Machine) Process(src io.Reader, emit func(rune) error) (Stats, error) {
	var st Stats
	br := bufio.NewReader(src)
	for {
		r, _, err := br.ReadRune()
		if err == io.EOF {
			return st, nil
		}
		if err != nil {
			return st, err
		}
		l, ok := alphabet.FromRune(r)
		if !ok {
			st.Skipped++
			continue
		}
		if err := emit(m.Encrypt(l).Rune()); err != nil {
			return st, err
		}
		st.Letters++
	}
}
