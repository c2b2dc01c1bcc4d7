package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles events. Enter advances through the fields and confirms
// on the last one; tab/shift+tab move freely; ctrl+t flips the genotype
// input between VCF and PLINK prefix.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "ctrl+t":
			m.bfileMode = !m.bfileMode
			return m, nil

		case "enter":
			if m.focus == fieldCount-1 {
				if m.valid() {
					m.done = true
					return m, tea.Quit
				}
				// Jump back to the first empty required field.
				m.setFocus(m.firstInvalid())
				return m, nil
			}
			m.setFocus(m.focus + 1)
			return m, nil

		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil

		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *WizardModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m WizardModel) valid() bool {
	return m.firstInvalid() == -1
}

// firstInvalid returns the index of the first required field that is
// still empty, or -1. Outdir and min_overlap have defaults upstream and
// may stay blank.
func (m WizardModel) firstInvalid() int {
	if m.inputs[fieldGenotype].Value() == "" {
		return fieldGenotype
	}
	if m.inputs[fieldModel].Value() == "" {
		return fieldModel
	}
	return -1
}
