package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel  = lipgloss.NewStyle().Foreground(colorGray)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleOK     = lipgloss.NewStyle().Foreground(colorGreen)
)

const iconSuccess = "✓"

// field is one "label  value" row of a summary.
type field struct {
	label string
	value any
}

// printSummary writes a titled block of aligned fields.
func printSummary(w io.Writer, title string, fields []field) {
	width := 0
	for _, f := range fields {
		if len(f.label) > width {
			width = len(f.label)
		}
	}

	var b strings.Builder
	b.WriteString(styleOK.Render(iconSuccess) + " " + styleTitle.Render(title) + "\n")
	for _, f := range fields {
		label := styleLabel.Render(fmt.Sprintf("%-*s", width, f.label))
		b.WriteString("  " + label + "  " + styleNumber.Render(fmt.Sprint(f.value)) + "\n")
	}
	fmt.Fprint(w, b.String())
}

// printRows writes plain rows with a dim header.
func printRows(w io.Writer, header string, rows []string) {
	fmt.Fprintln(w, styleDim.Render(header))
	for _, r := range rows {
		fmt.Fprintln(w, r)
	}
}
