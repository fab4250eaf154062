package plugboard

import (
	"errors"
	"testing"

	"github.com/bgallie/enigma/cryptors"
	"github.com/bgallie/enigma/cryptors/alphabet"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func letter(r rune) alphabet.Letter {
	l, _ := alphabet.FromRune(r)
	return l
}

func TestEmptyPlugboard(t *testing.T) {
	p, err := New("")
	require.NoError(t, err)
	for l := alphabet.A; l <= alphabet.Z; l++ {
		assert.Equal(t, l, p.Pass(l))
	}
	assert.Empty(t, p.pairs)
	assert.Equal(t, "", p.String())
}

func TestPairsSwap(t *testing.T) {
	p, err := New("mn  AB\tqz")
	require.NoError(t, err)

	assert.Equal(t, letter('N'), p.Pass(letter('M')))
	assert.Equal(t, letter('M'), p.Pass(letter('N')))
	assert.Equal(t, letter('B'), p.Pass(letter('A')))
	assert.Equal(t, letter('Z'), p.Pass(letter('Q')))
	assert.Equal(t, letter('X'), p.Pass(letter('X')))
	assert.Equal(t, "MN AB QZ", p.String())
	assert.Len(t, p.pairs, 3)
}

func TestFullPlugboard(t *testing.T) {
	p, err := New("AB CD EF GH IJ KL MN OP QR ST UV WX YZ")
	require.NoError(t, err)
	assert.Len(t, p.pairs, cryptors.MaxPlugPairs)
	for l := alphabet.A; l <= alphabet.Z; l++ {
		assert.NotEqual(t, l, p.Pass(l))
	}
}

func TestInvalidPairs(t *testing.T) {
	tests := []struct {
		name  string
		pairs string
	}{
		{"single letter", "A"},
		{"three letters", "ABC"},
		{"not letters", "A1"},
		{"self pair", "AA"},
		{"duplicate across pairs", "AB CA"},
		{"repeated pair", "AB AB"},
		{"too many pairs", "AB CD EF GH IJ KL MN OP QR ST UV WX YZ AB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.pairs)
			var cfgErr *cryptors.ConfigurationError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, "plugboard", cfgErr.Setting)
		})
	}
}

func TestPlugboardIsSelfInverse(t *testing.T) {
	p, err := New("AZ BY CX DW")
	require.NoError(t, err)

	properties := gopter.NewProperties(gopter.DefaultTestParameters())
	properties.Property("pass twice is identity", prop.ForAll(
		func(n int) bool {
			l := alphabet.FromOrdinal(n)
			return p.Pass(p.Pass(l)) == l
		},
		gen.IntRange(0, alphabet.Size-1),
	))
	properties.TestingRun(t)
}
