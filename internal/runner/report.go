package runner

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ArtomovLab/PGS-Browser/internal/mount"
)

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1)

	reportLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	reportDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	reportCmdStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange
)

// PlanReport renders the dry-run view: both mounts and the exact command
// that would be executed.
func PlanReport(l *Launcher, plan mount.Plan, args []string) string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render("PGS-Browser launch plan"))
	b.WriteString("\n\n")

	b.WriteString(reportLabelStyle.Render("Mounts"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s  %s\n", plan.DataDir, reportDimStyle.Render("->"), mount.DataMount+" (read-only)")
	fmt.Fprintf(&b, "  %s  %s  %s\n", plan.OutDir, reportDimStyle.Render("->"), mount.OutputMount+" (read-write)")
	b.WriteString("\n")

	b.WriteString(reportLabelStyle.Render("Command"))
	b.WriteString("\n")
	b.WriteString(reportCmdStyle.Render(l.Runtime + " " + strings.Join(args, " ")))
	b.WriteString("\n")

	return b.String()
}

// Warnf formats a path warning for stderr.
func Warnf(err error) string {
	return warnStyle.Render("warning: "+err.Error()) + "\n"
}
