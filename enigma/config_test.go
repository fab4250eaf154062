package enigma

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bgallie/enigma/cryptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		setting string
	}{
		{"unknown rotor", func(c *Config) { c.Rotors[2] = "VI" }, "rotors"},
		{"no rotors", func(c *Config) { c.Rotors = []string{} }, "rotors"},
		{"blank rotor", func(c *Config) { c.Rotors[1] = "" }, "rotors"},
		{"missing positions", func(c *Config) { c.Positions = "" }, "positions"},
		{"short positions", func(c *Config) { c.Positions = "AA" }, "positions"},
		{"non letter position", func(c *Config) { c.Positions = "A1A" }, "positions"},
		{"missing reflector", func(c *Config) { c.Reflector = "" }, "reflector"},
		{"unknown reflector", func(c *Config) { c.Reflector = "D" }, "reflector"},
		{"reflector wiring with fixed point", func(c *Config) { c.ReflectorWiring = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" }, "reflector"},
		{"short reflector wiring", func(c *Config) { c.ReflectorWiring = "YRUHQ" }, "reflector"},
		{"too many plugs", func(c *Config) { c.Plugboard = "AB CD EF GH IJ KL MN OP QR ST UV WX YZ AC" }, "plugboard"},
		{"unknown stator", func(c *Config) { c.Stator = "navy" }, "stator"},
		{"overlapping plugs", func(c *Config) { c.Plugboard = "AB BC" }, "plugboard"},
		{"bad plug", func(c *Config) { c.Plugboard = "ABC" }, "plugboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			m, err := New(cfg)
			assert.Nil(t, m)
			var cfgErr *cryptors.ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.setting, cfgErr.Setting)
			assert.Equal(t, err, cfg.Validate())
		})
	}
}

func TestEmptyAndNilRotorsAgree(t *testing.T) {
	for _, rotors := range [][]string{nil, {}} {
		cfg := DefaultConfig()
		cfg.Rotors = rotors

		_, err := New(cfg)
		require.Error(t, err)
		assert.Equal(t, err.Error(), cfg.Validate().Error(), "rotors %#v", rotors)
		assert.Equal(t, rotors, cfg.clone().Rotors)
	}
}

func TestCustomReflectorNeedsNoName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Reflector = ""
	cfg.ReflectorWiring = "YRUHQSLDPXNGOKMIEBFZCWVJAT"
	require.NoError(t, cfg.Validate())
	assert.Contains(t, cfg.String(), "reflector=custom:YRUHQSLDPXNGOKMIEBFZCWVJAT")
}

func TestComponents(t *testing.T) {
	c := Components()
	assert.Equal(t, []string{"I", "II", "III", "IV", "V"}, c.Rotors)
	assert.Equal(t, []string{"A", "B", "C"}, c.Reflectors)
	assert.Equal(t, []string{"army", "commercial"}, c.Stators)
}

func TestKeySheetRoundTrip(t *testing.T) {
	cfg := Config{
		Rotors:    []string{"IV", "II", "V"},
		Positions: "QEV",
		Reflector: "C",
		Stator:    "commercial",
		Plugboard: "MN AB",
	}

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteKeySheet(&buf))
	assert.Contains(t, buf.String(), "positions: QEV")

	got, err := LoadKeySheet(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestKeySheetCarriesReflectorWiring(t *testing.T) {
	got, err := LoadKeySheet(strings.NewReader("reflectorWiring: BADCFEHGJILKNMPORQTSVUXWZY\n"))
	require.NoError(t, err)
	assert.Equal(t, "BADCFEHGJILKNMPORQTSVUXWZY", got.ReflectorWiring)

	var buf bytes.Buffer
	require.NoError(t, got.WriteKeySheet(&buf))
	assert.Contains(t, buf.String(), "reflectorWiring: BADCFEHGJILKNMPORQTSVUXWZY")
}

func TestLoadKeySheetDefaults(t *testing.T) {
	got, err := LoadKeySheet(strings.NewReader("reflector: C\nplugboard: XY\n"))
	require.NoError(t, err)

	want := DefaultConfig()
	want.Reflector = "C"
	want.Plugboard = "XY"
	assert.Equal(t, want, got)
}

func TestLoadKeySheetErrors(t *testing.T) {
	_, err := LoadKeySheet(strings.NewReader("rotor: [I]\n"))
	assert.Error(t, err, "unknown field")

	_, err = LoadKeySheet(strings.NewReader("rotors: [I, II]\n"))
	var cfgErr *cryptors.ConfigurationError
	require.True(t, errors.As(err, &cfgErr), "got %v", err)
	assert.Equal(t, "positions", cfgErr.Setting)
}

func TestConfigString(t *testing.T) {
	assert.Equal(t, `rotors=I,II,III positions=AAA reflector=B stator=army plugboard=""`, DefaultConfig().String())
}
