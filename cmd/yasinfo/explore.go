package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pmed/yas/header"
)

// ExploreCmd opens an interactive header decoder.
type ExploreCmd struct {
	Initial string `arg:"" optional:"" help:"Header to decode on start, e.g. yas13 or 83"`
}

func (c *ExploreCmd) Run(e *env) error {
	m := newExploreModel(e.styles)
	if c.Initial != "" {
		m.input.SetValue(c.Initial)
		m.decode()
	}
	_, err := tea.NewProgram(m).Run()
	return err
}

// decodeInput parses a text header, with or without its magic prefix.
func decodeInput(s string) (header.Header, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, header.Magic) {
		s = header.Magic + s
	}
	codec, err := header.CodecFor(header.FormatText)
	if err != nil {
		return 0, err
	}
	return codec.Decode(strings.NewReader(s), header.WithHeader)
}

type exploreModel struct {
	input   textinput.Model
	styles  styles
	header  header.Header
	decoded bool
	err     error
}

func newExploreModel(s styles) *exploreModel {
	ti := textinput.New()
	ti.Placeholder = "yas83"
	ti.Prompt = "header: "
	ti.CharLimit = 16
	ti.Width = 20
	ti.Focus()
	return &exploreModel{input: ti, styles: s}
}

func (m *exploreModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.decode()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *exploreModel) decode() {
	m.header, m.err = decodeInput(m.input.Value())
	m.decoded = m.err == nil
}

func (m *exploreModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("yas header explorer"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	case m.decoded:
		h := m.header
		row := func(label, value string) {
			b.WriteString(m.styles.label.Render(fmt.Sprintf("%-8s", label)))
			b.WriteString(" ")
			b.WriteString(m.styles.value.Render(value))
			b.WriteString("\n")
		}
		row("packed", fmt.Sprintf("0x%02X", h.Byte()))
		row("bits", m.styles.bits.Render(bitString(h)))
		row("version", fmt.Sprintf("%d", h.Version()))
		row("format", h.Format().String())
		row("width", h.Width().String())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.help.Render("enter decode • esc quit"))
	return b.String()
}
