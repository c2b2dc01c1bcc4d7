package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/ArtomovLab/PGS-Browser/internal/model"
)

// Field indices for the wizard form.
const (
	fieldGenotype = iota
	fieldModel
	fieldOutDir
	fieldMinOverlap
	fieldCount
)

// WizardModel holds the state of the interactive input form.
type WizardModel struct {
	inputs [fieldCount]textinput.Model
	focus  int

	// Genotype input kind: false = VCF, true = PLINK prefix.
	bfileMode bool

	done    bool
	aborted bool
}

// InitialWizard returns the form pre-filled with whatever was already
// supplied on the command line or in the config file.
func InitialWizard(seed model.RunSpec) WizardModel {
	m := WizardModel{}

	mk := func(placeholder, value string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 512
		ti.Width = 60
		ti.SetValue(value)
		return ti
	}

	genotype := seed.VCF
	if seed.Bfile != "" {
		genotype = seed.Bfile
		m.bfileMode = true
	}
	m.inputs[fieldGenotype] = mk("cohort.vcf.gz", genotype)
	m.inputs[fieldModel] = mk("PGS000123.txt.gz", seed.Model)
	m.inputs[fieldOutDir] = mk("outputs", seed.OutDir)
	m.inputs[fieldMinOverlap] = mk("0.7", seed.MinOverlap)

	m.inputs[fieldGenotype].Focus()
	return m
}

// Spec returns the collected inputs and whether the form was confirmed.
func (m WizardModel) Spec() (model.RunSpec, bool) {
	if !m.done || m.aborted {
		return model.RunSpec{}, false
	}
	spec := model.RunSpec{
		Model:      m.inputs[fieldModel].Value(),
		OutDir:     m.inputs[fieldOutDir].Value(),
		MinOverlap: m.inputs[fieldMinOverlap].Value(),
	}
	if m.bfileMode {
		spec.Bfile = m.inputs[fieldGenotype].Value()
	} else {
		spec.VCF = m.inputs[fieldGenotype].Value()
	}
	return spec, true
}

// Aborted reports whether the user bailed out of the form.
func (m WizardModel) Aborted() bool { return m.aborted }
