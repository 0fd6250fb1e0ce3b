package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	validStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#90EE90"))

	invalidStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	codepointStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	bytesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const rowFormat = "%6s  %5s  %-9s  %-11s  %s"

// WriteText writes a human readable rendering of r to w. When styled is set
// the output carries terminal colors.
func (r *Report) WriteText(w io.Writer, styled bool) error {
	paint := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	if r.Valid {
		fmt.Fprintf(&b, "valid: %s\n", paint(validStyle, "yes"))
	} else {
		fmt.Fprintf(&b, "valid: %s\n", paint(invalidStyle, "no"))
	}
	fmt.Fprintf(&b, "size: %d bytes\n", r.Size)

	if r.Error != nil {
		fmt.Fprintf(&b, "error: %s at byte %d\n", paint(invalidStyle, r.Error.Explanation), r.Error.Offset)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "codepoints: %d\n", r.Count)
	if len(r.Codepoints) > 0 {
		b.WriteString("\n")
		b.WriteString(paint(headerStyle, strings.TrimRight(fmt.Sprintf(rowFormat, "OFFSET", "WIDTH", "CODEPOINT", "BYTES", "NAME"), " ")))
		b.WriteString("\n")
		for _, e := range r.Codepoints {
			row := fmt.Sprintf(rowFormat,
				fmt.Sprint(e.Offset),
				fmt.Sprint(e.Width),
				paint(codepointStyle, fmt.Sprintf("%-9s", e.Hex)),
				paint(bytesStyle, fmt.Sprintf("%-11s", e.Bytes)),
				e.Name)
			b.WriteString(strings.TrimRight(row, " "))
			b.WriteString("\n")
		}
	}
	if r.Truncated {
		b.WriteString(paint(noteStyle, fmt.Sprintf("... %d more", r.Count-len(r.Codepoints))))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
