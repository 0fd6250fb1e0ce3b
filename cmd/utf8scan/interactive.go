package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/unicode/runenames"

	"github.com/wippyai/utf8scan/report"
	"github.com/wippyai/utf8scan/utf8"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorState int

const (
	stateEdit inspectorState = iota
	stateBrowse
)

type inspectorModel struct {
	input  textinput.Model
	data   []byte
	report *report.Report
	cursor utf8.Cursor[[]byte]
	// earlier cursor positions, most recent last
	trail []utf8.Cursor[[]byte]
	state inspectorState
}

func newInspectorModel(data []byte) *inspectorModel {
	ti := textinput.New()
	ti.Placeholder = `text or \xNN escapes`
	ti.Prompt = "input: "
	ti.Width = 60
	ti.Focus()

	m := &inspectorModel{input: ti, state: stateEdit}
	if len(data) > 0 {
		m.load(data)
		m.state = stateBrowse
		m.input.Blur()
	}
	return m
}

// load inspects data and rewinds the cursor.
func (m *inspectorModel) load(data []byte) {
	m.data = data
	m.report = report.Build(data, report.Options{Names: true, MaxCodepoints: 1})
	m.trail = m.trail[:0]
	m.cursor = utf8.Cursor[[]byte]{}
	if m.report.Valid {
		m.cursor = utf8.NewCursor(data)
	}
}

func (m *inspectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if ok && key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.state == stateEdit {
		if ok {
			switch key.String() {
			case "enter":
				m.load(unescape(m.input.Value()))
				m.state = stateBrowse
				m.input.Blur()
				return m, nil
			case "esc":
				if m.report != nil {
					m.state = stateBrowse
					m.input.Blur()
				}
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit

	case "right", "l":
		if !m.cursor.Done() {
			m.trail = append(m.trail, m.cursor)
			m.cursor.Next()
		}

	case "left", "h":
		if n := len(m.trail); n > 0 {
			m.cursor = m.trail[n-1]
			m.trail = m.trail[:n-1]
		}

	case "home", "g":
		if len(m.trail) > 0 {
			m.cursor = m.trail[0]
			m.trail = m.trail[:0]
		}

	case "e", "i":
		m.state = stateEdit
		m.input.SetValue("")
		return m, m.input.Focus()
	}
	return m, nil
}

func (m *inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("UTF-8 Inspector"))
	b.WriteString("\n\n")

	if m.state == stateEdit {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter inspect • esc back • ctrl+c quit"))
		return b.String()
	}

	fmt.Fprintf(&b, "%d bytes\n\n", len(m.data))

	if !m.report.Valid {
		b.WriteString(m.renderBytes(m.report.Error.Offset, 1))
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s at byte %d", m.report.Error.Explanation, m.report.Error.Offset)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("e edit • q quit"))
		return b.String()
	}

	b.WriteString(m.renderBytes(m.cursor.Offset(), m.cursor.Width()))
	b.WriteString("\n\n")
	if m.cursor.Done() {
		b.WriteString(resultStyle.Render(fmt.Sprintf("end of text, %d codepoints", m.report.Count)))
	} else {
		cp := m.cursor.Value()
		fmt.Fprintf(&b, "codepoint %s of %d\n", valueStyle.Render(fmt.Sprint(len(m.trail)+1)), m.report.Count)
		fmt.Fprintf(&b, "offset    %d\n", m.cursor.Offset())
		fmt.Fprintf(&b, "width     %d\n", m.cursor.Width())
		fmt.Fprintf(&b, "value     %s\n", valueStyle.Render(fmt.Sprintf("U+%04X", cp)))
		if name := runenames.Name(cp); name != "" {
			fmt.Fprintf(&b, "name      %s", name)
		}
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("←/→ step • g start • e edit • q quit"))
	return b.String()
}

// renderBytes prints the input as hex with width bytes at off highlighted.
func (m *inspectorModel) renderBytes(off, width int) string {
	parts := make([]string, len(m.data))
	for i, c := range m.data {
		cell := fmt.Sprintf("%02x", c)
		if i >= off && i < off+width {
			cell = selectedStyle.Render(cell)
		}
		parts[i] = cell
	}
	return strings.Join(parts, " ")
}

func runInteractive(data []byte) error {
	p := tea.NewProgram(newInspectorModel(data), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
