package runner

import (
	"errors"
	"os"
	"os/exec"

	"github.com/ArtomovLab/PGS-Browser/internal/model"
	"github.com/ArtomovLab/PGS-Browser/internal/mount"
)

// Launcher issues the single container invocation for a run.
type Launcher struct {
	Runtime string // docker or podman binary
	Image   string
	TTY     bool // allocate a pseudo-terminal so the tool's progress output stays colorized
}

// DetectRuntime picks the container runtime binary. An explicit preference
// wins unchecked; otherwise docker then podman are searched on PATH. The
// second return value reports whether the binary was actually found — a
// missing runtime is informational only, the invocation itself produces
// the real error.
func DetectRuntime(preferred string) (string, bool) {
	if preferred != "" {
		_, err := exec.LookPath(preferred)
		return preferred, err == nil
	}
	for _, bin := range []string{"docker", "podman"} {
		if _, err := exec.LookPath(bin); err == nil {
			return bin, true
		}
	}
	return "docker", false
}

// Args builds the full runtime argument list: mounts, image, then the
// tool's flags with every host path rewritten through the plan. Rewrite
// failures come back as warnings; the affected flag keeps its host path
// so the problem surfaces inside the container instead of vanishing.
func (l *Launcher) Args(spec model.RunSpec, plan mount.Plan) ([]string, []error) {
	var warns []error
	rewrite := func(p string) string {
		cp, err := plan.RewriteData(p)
		if err != nil {
			warns = append(warns, err)
		}
		return cp
	}

	args := []string{"run", "--rm"}
	if l.TTY {
		args = append(args, "-it")
	}
	args = append(args, plan.VolumeArgs()...)
	args = append(args, l.Image)

	args = append(args, spec.GenotypeFlag(), rewrite(spec.GenotypePath()))
	args = append(args, "--pgs_model", rewrite(spec.Model))
	args = append(args, "--outdir", plan.RewriteOut(spec.OutDir))
	args = append(args, "--min_overlap", spec.MinOverlap)
	args = append(args, spec.Extra...)

	return args, warns
}

// Run executes the runtime synchronously with the parent's standard
// streams attached and returns the exit code to propagate. Interrupts
// reach the child through normal foreground process-group delivery, so
// no signal plumbing is needed here.
func (l *Launcher) Run(args []string) (int, error) {
	cmd := exec.Command(l.Runtime, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The tool already printed its own diagnostics on the inherited
		// stderr; just carry the code.
		return exitErr.ExitCode(), nil
	}
	return 1, err
}
