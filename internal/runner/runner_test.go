package runner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ArtomovLab/PGS-Browser/internal/model"
	"github.com/ArtomovLab/PGS-Browser/internal/mount"
)

func TestArgs(t *testing.T) {
	l := &Launcher{Runtime: "docker", Image: "artomovlab/pgs-browser:latest"}
	plan := mount.Plan{DataDir: "/home/u", OutDir: "/home/u/proj/outputs"}
	spec := model.RunSpec{
		VCF:        "/home/u/data/a.vcf.gz",
		Model:      "/home/u/models/m.tsv.gz",
		OutDir:     "/home/u/proj/outputs",
		MinOverlap: "0.7",
		Extra:      []string{"--plot=false"},
	}

	args, warns := l.Args(spec, plan)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}

	want := []string{
		"run", "--rm",
		"-v", "/home/u:/app/data:ro",
		"-v", "/home/u/proj/outputs:/app/outputs",
		"artomovlab/pgs-browser:latest",
		"--vcf", "/app/data/data/a.vcf.gz",
		"--pgs_model", "/app/data/models/m.tsv.gz",
		"--outdir", "/app/outputs",
		"--min_overlap", "0.7",
		"--plot=false",
	}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("Args =\n  %v\nwant\n  %v", args, want)
	}
}

func TestArgsBfileAndTTY(t *testing.T) {
	l := &Launcher{Runtime: "podman", Image: "img", TTY: true}
	plan := mount.Plan{DataDir: "/srv", OutDir: "/srv/out"}
	spec := model.RunSpec{
		Bfile:      "/srv/plink/chr_all",
		Model:      "/srv/models/m.tsv",
		OutDir:     "/srv/out",
		MinOverlap: "0.85",
	}

	args, warns := l.Args(spec, plan)
	if len(warns) != 0 {
		t.Fatalf("unexpected warnings: %v", warns)
	}
	if args[2] != "-it" {
		t.Errorf("expected -it after run --rm, got %v", args[:4])
	}
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "--bfile /app/data/plink/chr_all") {
		t.Errorf("bfile not rewritten: %s", joined)
	}
	if !strings.Contains(joined, "--min_overlap 0.85") {
		t.Errorf("min_overlap not forwarded verbatim: %s", joined)
	}
}

func TestArgsOutsideMountWarns(t *testing.T) {
	l := &Launcher{Runtime: "docker", Image: "img"}
	plan := mount.Plan{DataDir: "/home/u/data", OutDir: "/home/u/out"}
	spec := model.RunSpec{
		VCF:        "/home/u/data/a.vcf.gz",
		Model:      "/var/stray/m.tsv", // outside the data mount
		OutDir:     "/home/u/out",
		MinOverlap: "0.7",
	}

	args, warns := l.Args(spec, plan)
	if len(warns) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warns)
	}
	if _, ok := warns[0].(*mount.OutsideMountError); !ok {
		t.Errorf("warning type = %T, want *mount.OutsideMountError", warns[0])
	}
	// The stray path must pass through unchanged so the failure is visible
	// downstream.
	if !strings.Contains(strings.Join(args, " "), "--pgs_model /var/stray/m.tsv") {
		t.Errorf("stray path was altered: %v", args)
	}
}

func TestDetectRuntimeExplicit(t *testing.T) {
	name, _ := DetectRuntime("definitely-not-a-runtime")
	if name != "definitely-not-a-runtime" {
		t.Errorf("explicit runtime not honored: %q", name)
	}
}

func TestPlanReportMentionsBothMounts(t *testing.T) {
	l := &Launcher{Runtime: "docker", Image: "img"}
	plan := mount.Plan{DataDir: "/home/u", OutDir: "/home/u/out"}
	args, _ := l.Args(model.RunSpec{VCF: "/home/u/a.vcf", Model: "/home/u/m.tsv", OutDir: "/home/u/out", MinOverlap: "0.7"}, plan)

	report := PlanReport(l, plan, args)
	for _, want := range []string{"/home/u", "/app/data", "/app/outputs", "docker"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
