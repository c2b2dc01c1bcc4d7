package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ArtomovLab/PGS-Browser/internal/model"
)

// ArgumentError is a fatal pre-flight failure: missing or conflicting
// required flags. Nothing is launched when one is reported.
type ArgumentError struct {
	msg string
}

func (e *ArgumentError) Error() string { return e.msg }

func argErrf(format string, a ...any) *ArgumentError {
	return &ArgumentError{msg: fmt.Sprintf(format, a...)}
}

// Options is everything the launcher itself consumes. Flags the wrapper
// does not recognize end up in Spec.Extra and are forwarded to the
// container tool untouched, so new tool flags work without a wrapper
// release.
type Options struct {
	Spec model.RunSpec

	ConfigPath string
	Image      string
	Runtime    string

	DryRun      bool
	Interactive bool
	Help        bool
	ShowVersion bool
	CheckUpdate bool
}

func newFlagSet(opts *Options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("pgs-browser", pflag.ContinueOnError)
	fs.SortFlags = false
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {} // usage is printed by the caller

	fs.StringVar(&opts.Spec.VCF, "vcf", "", "Genotype input as VCF or VCF.gz")
	fs.StringVar(&opts.Spec.Bfile, "bfile", "", "Genotype input as PLINK bed/bim/fam prefix (no extension)")
	fs.StringVar(&opts.Spec.Model, "pgs_model", "", "PGS model file")
	fs.StringVar(&opts.Spec.OutDir, "outdir", "", "Output directory, created if missing (default \"outputs\")")
	fs.StringVar(&opts.Spec.MinOverlap, "min_overlap", "", "Minimum model/genotype variant overlap (default \"0.7\")")

	fs.StringVar(&opts.ConfigPath, "config", "", "TOML config file (default ~/.config/pgs-browser/config.toml)")
	fs.StringVar(&opts.Image, "image", "", "Container image to run")
	fs.StringVar(&opts.Runtime, "runtime", "", "Container runtime binary: docker or podman")

	fs.BoolVarP(&opts.DryRun, "dry-run", "n", false, "Print the mount plan and command without running it")
	fs.BoolVarP(&opts.Interactive, "interactive", "i", false, "Fill in the inputs through a terminal wizard")
	fs.BoolVarP(&opts.ShowVersion, "version", "V", false, "Print version information")
	fs.BoolVarP(&opts.CheckUpdate, "update", "u", false, "Check for a newer release")
	fs.BoolVarP(&opts.Help, "help", "h", false, "Show this help message")

	return fs
}

// Parse interprets args (without the program name). Recognized flags fill
// Options; everything else is collected in order into Spec.Extra.
// Validation of the required flags is skipped for the modes that do not
// launch anything (help, version, update) and for the wizard, which
// collects the inputs itself.
func Parse(args []string) (*Options, error) {
	opts := &Options{}
	fs := newFlagSet(opts)
	if err := fs.Parse(args); err != nil {
		return nil, argErrf("%v", err)
	}
	opts.Spec.Extra = passthrough(fs, args)

	if opts.Help || opts.ShowVersion || opts.CheckUpdate || opts.Interactive {
		return opts, nil
	}

	switch {
	case opts.Spec.VCF != "" && opts.Spec.Bfile != "":
		return nil, argErrf("--vcf and --bfile are mutually exclusive; supply exactly one genotype input")
	case opts.Spec.VCF == "" && opts.Spec.Bfile == "":
		return nil, argErrf("one of --vcf or --bfile is required")
	case opts.Spec.Model == "":
		return nil, argErrf("--pgs_model is required")
	}
	return opts, nil
}

// passthrough re-scans the raw arguments and keeps every token pflag did
// not claim. The scan mirrors pflag's whitelist behavior for unknown
// flags: "--flag value" counts the following token as the flag's value
// when it does not itself start with a dash.
func passthrough(fs *pflag.FlagSet, args []string) []string {
	var extra []string
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			extra = append(extra, args[i+1:]...)
			break
		}

		switch {
		case strings.HasPrefix(arg, "--"):
			name := arg[2:]
			hasValue := false
			if j := strings.Index(name, "="); j >= 0 {
				name, hasValue = name[:j], true
			}
			if f := fs.Lookup(name); f != nil {
				if !hasValue && f.Value.Type() != "bool" {
					i++ // skip the known flag's value token
				}
				continue
			}
			extra = append(extra, arg)
			if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				extra = append(extra, args[i])
			}

		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			// All of our shorthands are boolean, so a cluster of known
			// shorthands consumes no value.
			known := true
			for _, c := range arg[1:] {
				if fs.ShorthandLookup(string(c)) == nil {
					known = false
					break
				}
			}
			if !known {
				extra = append(extra, arg)
			}

		default:
			extra = append(extra, arg)
		}
	}
	return extra
}

// Usage writes the launcher's help text, pflag defaults included.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: pgs-browser [options]\n\n")
	fmt.Fprintf(w, "pgs-browser launches the containerized PGS-Browser scoring tool.\n")
	fmt.Fprintf(w, "Host paths are mounted into the container automatically; results\n")
	fmt.Fprintf(w, "are written to the output directory on the host.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fs := newFlagSet(&Options{})
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  pgs-browser --vcf cohort.vcf.gz --pgs_model PGS000123.txt.gz\n")
	fmt.Fprintf(w, "  pgs-browser --bfile plink/chr_all --pgs_model model.tsv --outdir results\n")
	fmt.Fprintf(w, "  pgs-browser -n --vcf a.vcf.gz --pgs_model m.tsv   # show the docker command only\n")
	fmt.Fprintf(w, "  pgs-browser -i                                    # interactive wizard\n")
	fmt.Fprintf(w, "\nUnrecognized flags are forwarded to the container tool unchanged.\n")
}
