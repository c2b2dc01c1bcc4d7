package main

import (
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/tcnksm/go-latest"

	"github.com/ArtomovLab/PGS-Browser/internal/cli"
	"github.com/ArtomovLab/PGS-Browser/internal/config"
	"github.com/ArtomovLab/PGS-Browser/internal/model"
	"github.com/ArtomovLab/PGS-Browser/internal/mount"
	"github.com/ArtomovLab/PGS-Browser/internal/runner"
	"github.com/ArtomovLab/PGS-Browser/internal/tui"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "ArtomovLab",
		Repository: "PGS-Browser",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/ArtomovLab/PGS-Browser/releases")
	} else {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgs-browser: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'pgs-browser --help' for usage.\n")
		return 1
	}

	if opts.Help {
		cli.Usage(os.Stderr)
		return 1
	}

	if opts.ShowVersion {
		fmt.Printf("pgs-browser version %s\n", model.Version)
		return 0
	}

	if opts.CheckUpdate {
		checkUpdate(model.Version)
		return 0
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgs-browser: %v\n", err)
		return 1
	}
	applyConfig(opts, cfg)

	if opts.Interactive {
		wm := tui.InitialWizard(opts.Spec)
		p := tea.NewProgram(wm)
		final, err := p.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "pgs-browser: wizard error: %v\n", err)
			return 1
		}
		spec, ok := final.(tui.WizardModel).Spec()
		if !ok {
			return 1 // user cancelled
		}
		spec.Extra = opts.Spec.Extra
		opts.Spec = spec
		applyConfig(opts, cfg) // re-fill defaults the wizard left blank
	}

	return launch(opts)
}

// applyConfig fills the options the user left unset from the config
// layer, which itself sits on the built-in defaults.
func applyConfig(opts *cli.Options, cfg config.Config) {
	if opts.Image == "" {
		opts.Image = cfg.Image
	}
	if opts.Runtime == "" {
		opts.Runtime = cfg.Runtime
	}
	if opts.Spec.OutDir == "" {
		opts.Spec.OutDir = cfg.OutDir
	}
	if opts.Spec.MinOverlap == "" {
		opts.Spec.MinOverlap = strconv.FormatFloat(cfg.MinOverlap, 'g', -1, 64)
	}
}

// launch resolves the paths, builds the mount plan and runs (or prints)
// the container invocation. parse -> resolve -> compute -> invoke, all
// synchronous.
func launch(opts *cli.Options) int {
	spec := opts.Spec

	genotype, err := mount.Absolutize(spec.GenotypePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgs-browser: %v\n", err)
		return 1
	}
	modelPath, err := mount.Absolutize(spec.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgs-browser: %v\n", err)
		return 1
	}
	outDir, err := mount.EnsureOutDir(spec.OutDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgs-browser: %v\n", err)
		return 1
	}

	if spec.Bfile != "" {
		spec.Bfile = genotype
	} else {
		spec.VCF = genotype
	}
	spec.Model = modelPath
	spec.OutDir = outDir

	plan := mount.NewPlan(outDir, genotype, modelPath)

	rt, found := runner.DetectRuntime(opts.Runtime)
	if !found {
		fmt.Fprintf(os.Stderr, "pgs-browser: note: %s not found on PATH; the launch below will fail until a container runtime is installed\n", rt)
	}

	l := &runner.Launcher{
		Runtime: rt,
		Image:   opts.Image,
		TTY:     isatty.IsTerminal(os.Stdout.Fd()),
	}

	runArgs, warns := l.Args(spec, plan)
	for _, w := range warns {
		fmt.Fprint(os.Stderr, runner.Warnf(w))
	}

	if opts.DryRun {
		fmt.Print(runner.PlanReport(l, plan, runArgs))
		return 0
	}

	code, err := l.Run(runArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pgs-browser: %s: %v\n", rt, err)
	}
	return code
}
