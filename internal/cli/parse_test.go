package cli

import (
	"reflect"
	"testing"
)

func TestParseValid(t *testing.T) {
	opts, err := Parse([]string{"--vcf", "a.vcf.gz", "--pgs_model", "m.tsv.gz", "--outdir", "res", "--min_overlap", "0.85"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if opts.Spec.VCF != "a.vcf.gz" || opts.Spec.Model != "m.tsv.gz" {
		t.Errorf("unexpected spec: %+v", opts.Spec)
	}
	if opts.Spec.OutDir != "res" {
		t.Errorf("OutDir = %q, want %q", opts.Spec.OutDir, "res")
	}
	if opts.Spec.MinOverlap != "0.85" {
		t.Errorf("MinOverlap = %q, want %q", opts.Spec.MinOverlap, "0.85")
	}
	if len(opts.Spec.Extra) != 0 {
		t.Errorf("Extra = %v, want none", opts.Spec.Extra)
	}
}

func TestParseArgumentErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
	}{
		{"both genotype inputs", []string{"--vcf", "a.vcf", "--bfile", "plink/chr1", "--pgs_model", "m.tsv"}},
		{"no genotype input", []string{"--pgs_model", "m.tsv"}},
		{"missing model", []string{"--vcf", "a.vcf"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if _, ok := err.(*ArgumentError); !ok {
				t.Fatalf("error type = %T, want *ArgumentError", err)
			}
		})
	}
}

func TestParsePassthrough(t *testing.T) {
	opts, err := Parse([]string{
		"--vcf", "a.vcf.gz",
		"--ancestry_ref", "panel.pgen",
		"--pgs_model", "m.tsv.gz",
		"--plot=false",
		"--threads", "8",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"--ancestry_ref", "panel.pgen", "--plot=false", "--threads", "8"}
	if !reflect.DeepEqual(opts.Spec.Extra, want) {
		t.Errorf("Extra = %v, want %v", opts.Spec.Extra, want)
	}
}

func TestParsePassthroughAfterDoubleDash(t *testing.T) {
	opts, err := Parse([]string{"--vcf", "a.vcf", "--pgs_model", "m.tsv", "--", "--vcf", "literal"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"--vcf", "literal"}
	if !reflect.DeepEqual(opts.Spec.Extra, want) {
		t.Errorf("Extra = %v, want %v", opts.Spec.Extra, want)
	}
}

func TestParseModesSkipValidation(t *testing.T) {
	for _, args := range [][]string{
		{"--help"},
		{"-h"},
		{"--version"},
		{"--update"},
		{"--interactive"},
	} {
		if _, err := Parse(args); err != nil {
			t.Errorf("Parse(%v): unexpected error %v", args, err)
		}
	}
}

func TestParseGenotypeHelpers(t *testing.T) {
	opts, err := Parse([]string{"--bfile", "plink/chr_all", "--pgs_model", "m.tsv"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := opts.Spec.GenotypeFlag(); got != "--bfile" {
		t.Errorf("GenotypeFlag = %q, want --bfile", got)
	}
	if got := opts.Spec.GenotypePath(); got != "plink/chr_all" {
		t.Errorf("GenotypePath = %q, want plink/chr_all", got)
	}
}
