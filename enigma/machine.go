// Package enigma assembles the cryptors into a working rotor cipher machine.
//
// A Machine is not safe for concurrent use: every keystroke moves the rotors,
// so callers sharing one machine must serialize their calls.
package enigma

import (
	"strings"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/alphabet"
	"github.com/bgallie/enigma/cryptors/plugboard"
	"github.com/bgallie/enigma/cryptors/reflector"
	"github.com/bgallie/enigma/cryptors/rotor"
	"github.com/bgallie/enigma/cryptors/stator"
)

// Machine is an assembled Enigma.  Only the rotor positions change after New.
type Machine struct {
	config    Config
	plugboard *plugboard.Plugboard
	rotors    []*rotor.Rotor      // left to right
	path      []cryptors.Permuter // stator, then the rotors right to left
	reflector *reflector.Reflector
	notched   []bool
	advance   []bool
	index     int64
}

// New assembles a machine from cfg.  Any error is a
// *cryptors.ConfigurationError and no machine is returned.
func New(cfg Config) (*Machine, error) {
	return assemble(cfg.clone())
}

func assemble(cfg Config) (*Machine, error) {
	if err := checkShape(cfg); err != nil {
		return nil, err
	}
	positions, ok := alphabet.Parse(cfg.Positions)
	if !ok {
		return nil, cryptors.NewConfigurationError("positions", cfg.Positions, "must contain only letters")
	}
	if len(positions) != len(cfg.Rotors) {
		return nil, cryptors.NewConfigurationError("positions", cfg.Positions,
			"has %d letters for %d rotors", len(positions), len(cfg.Rotors))
	}

	m := &Machine{
		config:  cfg,
		rotors:  make([]*rotor.Rotor, len(cfg.Rotors)),
		notched: make([]bool, len(cfg.Rotors)),
		advance: make([]bool, len(cfg.Rotors)),
	}
	var err error
	for i, name := range cfg.Rotors {
		if m.rotors[i], err = rotor.New(name, positions[i]); err != nil {
			return nil, err
		}
	}
	if cfg.ReflectorWiring != "" {
		m.reflector, err = reflector.FromWiring(cfg.ReflectorWiring)
	} else {
		m.reflector, err = reflector.New(cfg.Reflector)
	}
	if err != nil {
		return nil, err
	}
	s, err := stator.New(cfg.Stator)
	if err != nil {
		return nil, err
	}
	if m.plugboard, err = plugboard.New(cfg.Plugboard); err != nil {
		return nil, err
	}
	m.config.Plugboard = m.plugboard.String()

	m.path = append(m.path, s)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		m.path = append(m.path, m.rotors[i])
	}
	return m, nil
}

// Encrypt steps the rotors and then sends l through the machine.  Encryption
// and decryption are the same operation.
func (m *Machine) Encrypt(l alphabet.Letter) alphabet.Letter {
	m.step()
	m.index++

	c := m.plugboard.Pass(l)
	for _, p := range m.path {
		c = p.Apply(cryptors.Forward, c)
	}
	c = m.reflector.Reflect(c)
	for i := len(m.path) - 1; i >= 0; i-- {
		c = m.path[i].Apply(cryptors.Inverse, c)
	}
	return m.plugboard.Pass(c)
}

// EncryptRune encrypts an upper case Latin letter.  Anything else returns an
// InvalidCharacterError and leaves the rotors where they were.
func (m *Machine) EncryptRune(r rune) (rune, error) {
	if r < 'A' || r > 'Z' {
		return 0, cryptors.InvalidCharacterError(r)
	}
	l, _ := alphabet.FromRune(r)
	return m.Encrypt(l).Rune(), nil
}

// EncryptString encrypts s, which must consist of upper case Latin letters
// only.  The whole string is checked before the rotors move.
func (m *Machine) EncryptString(s string) (string, error) {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return "", cryptors.InvalidCharacterError(r)
		}
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		l, _ := alphabet.FromRune(r)
		sb.WriteRune(m.Encrypt(l).Rune())
	}
	return sb.String(), nil
}

// Positions returns the current rotor positions, left to right.
func (m *Machine) Positions() []alphabet.Letter {
	out := make([]alphabet.Letter, len(m.rotors))
	for i, r := range m.rotors {
		out[i] = r.Position()
	}
	return out
}

// Window renders the rotor positions the way they show through the lid,
// for example "| A | D | U |".
func (m *Machine) Window() string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, r := range m.rotors {
		sb.WriteString(" ")
		sb.WriteString(r.Position().String())
		sb.WriteString(" |")
	}
	return sb.String()
}

// Index returns the number of letters encrypted since New or the last Reset.
func (m *Machine) Index() int64 {
	return m.index
}

// Reset returns every rotor to its configured starting position.
func (m *Machine) Reset() {
	for _, r := range m.rotors {
		r.Reset()
	}
	m.index = 0
}

// Config returns the configuration the machine was built from, with the
// plugboard pairs in upper case and single spaced.
func (m *Machine) Config() Config {
	return m.config.clone()
}
