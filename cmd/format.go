/*
Copyright © 2021 Billy G. Allie <bill.allie@defiant.mug.org>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultGroup = 4
	defaultLine  = 40
)

// layout is how letters are laid out on the page: group letters to a group
// and line letters to a line.  Zero or less turns either off.
type layout struct {
	group int
	line  int
}

func currentLayout() layout {
	return layout{group: viper.GetInt("group"), line: viper.GetInt("line")}
}

// width is the number of columns a full line takes up.  Without a line length
// the default one is assumed.
func (l layout) width() int {
	line := l.line
	if line <= 0 {
		line = defaultLine
	}
	if l.group <= 0 {
		return line
	}
	return line + (line-1)/l.group
}

type groupWriter struct {
	w *bufio.Writer
	layout
	n int
}

func newGroupWriter(w io.Writer, l layout) *groupWriter {
	return &groupWriter{w: bufio.NewWriter(w), layout: l}
}

// WriteLetter writes r, preceded by a space or a newline when it starts a new
// group or line.
func (g *groupWriter) WriteLetter(r rune) error {
	if g.n > 0 {
		var err error
		switch {
		case g.line > 0 && g.n%g.line == 0:
			err = g.w.WriteByte('\n')
		case g.group > 0 && g.n%g.group == 0:
			err = g.w.WriteByte(' ')
		}
		if err != nil {
			return err
		}
	}
	g.n++
	_, err := g.w.WriteRune(r)
	return err
}

// Close ends the last line and flushes.  It does not close the underlying
// writer.
func (g *groupWriter) Close() error {
	if g.n > 0 {
		if err := g.w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return g.w.Flush()
}

// formatGroups lays out rs without a trailing newline.
func formatGroups(rs []rune, l layout) string {
	var sb strings.Builder
	gw := newGroupWriter(&sb, l)
	for _, r := range rs {
		gw.WriteLetter(r)
	}
	gw.w.Flush()
	return sb.String()
}
