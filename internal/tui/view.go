package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")) // Pinkish

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Grey

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)
)

func (m WizardModel) View() string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("PGS-Browser"))
	b.WriteString("\n\n")

	genotypeLabel := "VCF file"
	if m.bfileMode {
		genotypeLabel = "PLINK prefix"
	}
	genotypeLabel += " " + modeStyle.Render("(ctrl+t to switch)")

	labels := [fieldCount]string{
		fieldGenotype:   genotypeLabel,
		fieldModel:      "PGS model file",
		fieldOutDir:     "Output directory",
		fieldMinOverlap: "Minimum variant overlap",
	}

	for i := 0; i < fieldCount; i++ {
		style := labelStyle
		if i == m.focus {
			style = focusedLabelStyle
		}
		b.WriteString("  ")
		b.WriteString(style.Render(labels[i]))
		b.WriteString("\n  ")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString("  ")
	b.WriteString(hintStyle.Render("enter: next/confirm · tab: move · esc: cancel"))
	b.WriteString("\n")

	return b.String()
}
