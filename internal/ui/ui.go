// Package ui prints styled progress, warning and summary lines.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Console writes human-readable output. Colours are applied only when the
// underlying writer is a terminal.
type Console struct {
	out, err io.Writer
	quiet    bool

	success lipgloss.Style
	muted   lipgloss.Style
	warning lipgloss.Style
	header  lipgloss.Style
}

// New returns a Console writing progress to out and warnings to errOut.
// When quiet is set, per-block lines are suppressed.
func New(out, errOut io.Writer, quiet bool) *Console {
	ro := lipgloss.NewRenderer(out)
	re := lipgloss.NewRenderer(errOut)
	return &Console{
		out:     out,
		err:     errOut,
		quiet:   quiet,
		success: ro.NewStyle().Foreground(lipgloss.Color("#04B575")),
		muted:   ro.NewStyle().Foreground(lipgloss.Color("#767676")),
		warning: re.NewStyle().Foreground(lipgloss.Color("#FFCC00")),
		header:  ro.NewStyle().Bold(true),
	}
}

// Saved reports a block written to path.
func (c *Console) Saved(path, kind, name string) {
	if c.quiet {
		return
	}
	_, _ = fmt.Fprintln(c.out, c.success.Render(fmt.Sprintf("Saved: %s (%s, name=%q)", path, kind, name)))
}

// Unchanged reports a block whose identical copy already exists at path.
func (c *Console) Unchanged(path, kind, name string) {
	if c.quiet {
		return
	}
	_, _ = fmt.Fprintln(c.out, c.muted.Render(fmt.Sprintf("Unchanged: %s (%s, name=%q)", path, kind, name)))
}

// Empty reports a file without any blocks.
func (c *Console) Empty(path string) {
	if c.quiet {
		return
	}
	_, _ = fmt.Fprintln(c.out, c.muted.Render(fmt.Sprintf("(no blocks found in %s)", path)))
}

// Warn prints a warning line to the error writer.
func (c *Console) Warn(format string, a ...any) {
	_, _ = fmt.Fprintln(c.err, c.warning.Render("Warning: "+fmt.Sprintf(format, a...)))
}

// Summary prints the end-of-run report.
func (c *Console) Summary(s Stats) {
	_, _ = fmt.Fprintln(c.out)
	_, _ = fmt.Fprintln(c.out, c.header.Render("Done."))
	_, _ = fmt.Fprintf(c.out, "Contracts in: %s\n", s.ContractsDir)
	_, _ = fmt.Fprintf(c.out, "Groups in: %s\n", s.GroupsDir)
	_, _ = fmt.Fprintf(c.out, "Manifest saved to: %s\n", s.Manifest)
	_, _ = fmt.Fprintf(c.out, "%d file(s) scanned, %d contract(s), %d group(s), %d written, %d warning(s)\n",
		s.Files, s.Contracts, s.Groups, s.Written, s.Warnings)
}

// Stats summarizes one run.
type Stats struct {
	ContractsDir string
	GroupsDir    string
	Manifest     string
	Files        int
	Contracts    int
	Groups       int
	Written      int
	Warnings     int
}
