package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGroups(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		layout layout
		want   string
	}{
		{"empty", "", layout{4, 40}, ""},
		{"partial group", "ABC", layout{4, 40}, "ABC"},
		{"groups", "ABCDEFGHIJ", layout{4, 40}, "ABCD EFGH IJ"},
		{"line break", "ABCDEFGHIJ", layout{2, 6}, "AB CD EF\nGH IJ"},
		{"no grouping", "ABCDEFG", layout{0, 3}, "ABC\nDEF\nG"},
		{"no lines", "ABCDEFG", layout{5, 0}, "ABCDE FG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatGroups([]rune(tt.in), tt.layout))
		})
	}
}

func TestGroupWriterClose(t *testing.T) {
	var buf bytes.Buffer
	gw := newGroupWriter(&buf, layout{group: 5, line: 10})
	for _, r := range "ABCDEFGHIJKL" {
		require.NoError(t, gw.WriteLetter(r))
	}
	require.NoError(t, gw.Close())
	assert.Equal(t, "ABCDE FGHIJ\nKL\n", buf.String())

	buf.Reset()
	empty := newGroupWriter(&buf, layout{group: 5, line: 10})
	require.NoError(t, empty.Close())
	assert.Equal(t, "", buf.String())
}

func TestLayoutWidth(t *testing.T) {
	assert.Equal(t, 49, layout{group: 4, line: 40}.width())
	assert.Equal(t, 30, layout{group: 0, line: 30}.width())
	assert.Equal(t, defaultLine+(defaultLine-1)/5, layout{group: 5, line: 0}.width())
	assert.Equal(t, defaultLine, layout{}.width())

	full := formatGroups([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZABCDEFGHIJKLMN"), layout{group: 4, line: 40})
	assert.Len(t, full, layout{group: 4, line: 40}.width())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestGroupWriterReportsWriteErrors(t *testing.T) {
	gw := newGroupWriter(failingWriter{}, layout{group: 4, line: 40})
	require.NoError(t, gw.WriteLetter('A'))
	assert.EqualError(t, gw.Close(), "disk full")
}
