package mount

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Fixed mount points inside the container. The image's entrypoint reads
// inputs from DataMount and writes results under OutputMount.
const (
	DataMount   = "/app/data"
	OutputMount = "/app/outputs"
)

// Absolutize resolves p against the current working directory and cleans
// it. Symlinks are left alone; the container runtime resolves bind-mount
// sources itself. The path does not need to exist.
func Absolutize(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", p, err)
	}
	return abs, nil
}

// EnsureOutDir creates dir if it is missing and returns its absolute form.
// The directory must exist before resolution so the runtime mounts a
// directory rather than auto-creating a root-owned one.
func EnsureOutDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return Absolutize(dir)
}

// CommonDir returns the deepest directory that is an ancestor of every
// given absolute path. Comparison is segment-wise, not character-wise, so
// sibling directories with a shared name prefix (/home/user1 vs
// /home/user10) never produce a bogus common root.
//
// If the raw shared prefix is not an existing directory (it can land on a
// full filename when one input is a prefix of another), it is walked up to
// the nearest existing directory. "/" always exists, so this terminates.
func CommonDir(paths ...string) string {
	if len(paths) == 0 {
		return "/"
	}
	common := splitSegments(paths[0])
	for _, p := range paths[1:] {
		segs := splitSegments(p)
		i := 0
		for i < len(common) && i < len(segs) && common[i] == segs[i] {
			i++
		}
		common = common[:i]
	}

	dir := "/" + strings.Join(common, "/")
	for dir != "/" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			break
		}
		dir = filepath.Dir(dir)
	}
	return dir
}

func splitSegments(p string) []string {
	p = strings.Trim(filepath.Clean(p), "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

// Plan maps the two host directories onto the container's fixed layout.
type Plan struct {
	DataDir string // mounted read-only at DataMount
	OutDir  string // mounted read-write at OutputMount
}

// NewPlan builds the mount plan for a set of resolved input paths and the
// resolved output directory. inputs are the genotype and model paths; the
// output directory gets its own independent mount and never participates
// in the common-directory computation.
func NewPlan(outDir string, inputs ...string) Plan {
	return Plan{DataDir: CommonDir(inputs...), OutDir: outDir}
}

// VolumeArgs returns the runtime -v flags for both mounts.
func (p Plan) VolumeArgs() []string {
	return []string{
		"-v", p.DataDir + ":" + DataMount + ":ro",
		"-v", p.OutDir + ":" + OutputMount,
	}
}

// OutsideMountError reports a resolved path that does not fall under the
// plan's data directory. The launch still proceeds with the host path, so
// the failure surfaces downstream as a file-not-found inside the
// container instead of being silently mangled.
type OutsideMountError struct {
	Path string
	Dir  string
}

func (e *OutsideMountError) Error() string {
	return fmt.Sprintf("path %s is outside the mounted directory %s; passing it through unchanged", e.Path, e.Dir)
}

// RewriteData maps an absolute host path under DataDir to its in-container
// form. On a path outside DataDir it returns the path unchanged together
// with an *OutsideMountError.
func (p Plan) RewriteData(hostPath string) (string, error) {
	rel, ok := relUnder(p.DataDir, hostPath)
	if !ok {
		return hostPath, &OutsideMountError{Path: hostPath, Dir: p.DataDir}
	}
	return path.Join(DataMount, rel), nil
}

// RewriteOut maps the resolved output path to its in-container form. The
// plan's own OutDir maps to OutputMount exactly; deeper paths keep their
// remainder.
func (p Plan) RewriteOut(hostPath string) string {
	rel, ok := relUnder(p.OutDir, hostPath)
	if !ok {
		return OutputMount
	}
	return path.Join(OutputMount, rel)
}

// relUnder returns hostPath relative to dir, matching only on whole path
// segments.
func relUnder(dir, hostPath string) (string, bool) {
	if hostPath == dir {
		return ".", true
	}
	prefix := dir
	if prefix != "/" {
		prefix += "/"
	}
	if strings.HasPrefix(hostPath, prefix) {
		return hostPath[len(prefix):], true
	}
	return "", false
}
