package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bgallie/enigma/enigma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMachine(t *testing.T, cfg enigma.Config) *enigma.Machine {
	t.Helper()
	m, err := enigma.New(cfg)
	require.NoError(t, err)
	return m
}

func TestCipherHelper(t *testing.T) {
	m := newTestMachine(t, enigma.DefaultConfig())
	var out bytes.Buffer
	_, err := out.ReadFrom(cipherHelper(strings.NewReader("a a a a a"), m, layout{group: 5, line: 40}))
	require.NoError(t, err)
	wg.Wait()
	assert.Equal(t, "BDZGO\n", out.String())
}

func TestPlainRoundTrip(t *testing.T) {
	usePem, useASCII85, compression = false, false, false
	cfg := enigma.Config{
		Rotors:    []string{"II", "IV", "V"},
		Positions: "BLA",
		Reflector: "B",
		Stator:    "army",
		Plugboard: "AV BS CG DL FU HZ IN KM OW RX",
	}
	l := layout{group: 4, line: 40}

	var cipher bytes.Buffer
	require.NoError(t, writeCiphertext(&cipher, strings.NewReader("Attack at dawn!"), newTestMachine(t, cfg), l))
	wg.Wait()
	assert.Regexp(t, `^[A-Z]{4} [A-Z]{4} [A-Z]{4}\n$`, cipher.String())

	var plain bytes.Buffer
	require.NoError(t, readCiphertext(&plain, &cipher, newTestMachine(t, cfg), l))
	wg.Wait()
	assert.Equal(t, "ATTA CKAT DAWN\n", plain.String())
}

func TestReadCiphertextRejectsBadHeader(t *testing.T) {
	m := newTestMachine(t, enigma.DefaultConfig())
	err := readCiphertext(&bytes.Buffer{}, strings.NewReader("+ENIGMA|a\nXYZ"), m, layout{4, 40})
	assert.Error(t, err)
	assert.Equal(t, int64(0), m.Index())
}

func TestReadCiphertextShortInput(t *testing.T) {
	m := newTestMachine(t, enigma.DefaultConfig())
	var out bytes.Buffer
	require.NoError(t, readCiphertext(&out, strings.NewReader("BD"), m, layout{4, 40}))
	wg.Wait()
	assert.Equal(t, "AA\n", out.String())
}

func TestArmoredRoundTrip(t *testing.T) {
	defer func() { usePem, useASCII85, compression = false, false, false }()
	l := layout{group: 5, line: 25}
	plaintext := "The quick brown fox jumps over the lazy dog"

	tests := []struct {
		name                   string
		pem, ascii85, compress bool
		prefix                 string
	}{
		{"pem", true, false, false, "-----BEGIN"},
		{"pem compressed", true, false, true, "-----BEGIN"},
		{"ascii85", false, true, false, "+ENIGMA|a|false\n"},
		{"ascii85 compressed", false, true, true, "+ENIGMA|a|true\n"},
		{"binary", false, false, true, "+ENIGMA|b|true\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usePem, useASCII85, compression = tt.pem, tt.ascii85, tt.compress

			var cipher bytes.Buffer
			require.NoError(t, writeCiphertext(&cipher, strings.NewReader(plaintext), newTestMachine(t, enigma.DefaultConfig()), l))
			wg.Wait()
			assert.True(t, strings.HasPrefix(cipher.String(), tt.prefix), cipher.String())

			var plain bytes.Buffer
			require.NoError(t, readCiphertext(&plain, &cipher, newTestMachine(t, enigma.DefaultConfig()), l))
			wg.Wait()
			assert.Equal(t, "THEQU ICKBR OWNFO XJUMP SOVER\nTHELA ZYDOG\n", plain.String())
		})
	}
}
