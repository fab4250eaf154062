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
	"os"
	"strings"
	"unicode"

	"github.com/bgallie/enigma/enigma"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFF00"))

	windowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	ruleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	plainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	cipherStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))
)

// interactiveCmd represents the interactive command
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"keyboard"},
	Short:   "Type on the machine one key at a time",
	Long: `Type on the machine one key at a time.  Each letter lights up its
ciphertext letter and the rotors move, just as on the real machine.  Other keys
are ignored.  Press Ctrl+X to exit.`,
	Run: func(cmd *cobra.Command, args []string) {
		interactive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func interactive() {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		cobra.CheckErr("interactive mode needs a terminal.")
	}
	m := initMachine()
	_, err := tea.NewProgram(newKeyboardModel(m, currentLayout()), tea.WithAltScreen()).Run()
	cobra.CheckErr(err)
	logger.Info("session ended", "letters", m.Index(), "window", m.Window())
}

type keyMap struct {
	Reset key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset rotors"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+x", "ctrl+c"),
		key.WithHelp("ctrl+x", "exit"),
	),
}

// keyboardModel is the lamp board: what was typed, what lit up, and the
// rotor window above them.
type keyboardModel struct {
	machine *enigma.Machine
	layout  layout
	plain   []rune
	cipher  []rune
	keys    keyMap
	help    help.Model
}

func newKeyboardModel(m *enigma.Machine, l layout) keyboardModel {
	return keyboardModel{
		machine: m,
		layout:  l,
		keys:    keys,
		help:    help.New(),
	}
}

func (m keyboardModel) Init() tea.Cmd {
	return nil
}

func (m keyboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.machine.Reset()
			m.plain, m.cipher = nil, nil
			return m, nil
		}
		if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
			return m, nil
		}
		r := unicode.ToUpper(msg.Runes[0])
		out, err := m.machine.EncryptRune(r)
		if err != nil {
			return m, nil
		}
		m.plain = append(m.plain, r)
		m.cipher = append(m.cipher, out)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m keyboardModel) View() string {
	rule := ruleStyle.Render(strings.Repeat("=", m.layout.width()))
	var b strings.Builder
	b.WriteString(titleStyle.Render("Enigma is working. Press Ctrl+X for Exit."))
	b.WriteString("\n")
	b.WriteString(windowStyle.Render(m.machine.Window()))
	b.WriteString("\n")
	b.WriteString(rule + "\n")
	b.WriteString(plainStyle.Render(formatGroups(m.plain, m.layout)) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(cipherStyle.Render(formatGroups(m.cipher, m.layout)) + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
