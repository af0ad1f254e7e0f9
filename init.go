package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phobologic/cfgextract/internal/config"
)

const (
	sentinelStart = "# cfgextract:start"
	sentinelEnd   = "# cfgextract:end"
)

func newInitCmd(stdout, stderr io.Writer) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "init [flags] [path-to-.gitignore]",
		Short: "Add cfgextract output paths to a .gitignore",
		Long: `Write a section listing the cfgextract output directories and manifest to a
.gitignore file. The section is wrapped in sentinel comments so it can be
updated in place on subsequent runs without touching surrounding content.
Creates the file if it does not exist.

Output paths come from the cfgextract config next to the .gitignore, if any.
path-to-.gitignore defaults to ./.gitignore.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return initGitignore(path, dryRun, stdout, stderr)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print what would be written without modifying the file")
	return cmd
}

func initGitignore(path string, dryRun bool, stdout, stderr io.Writer) error {
	dir := "."
	if path != "" {
		dir = filepath.Dir(path)
	}
	cfg, err := config.Load(nil, dir, "")
	if err != nil {
		return err
	}
	section := generateSection(cfg)

	// --dry-run with no path: just print the section itself.
	if dryRun && path == "" {
		_, _ = fmt.Fprintln(stdout, section)
		return nil
	}

	if path == "" {
		path = ".gitignore"
	}

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	updated := applySection(string(existing), section)

	if dryRun {
		_, _ = fmt.Fprint(stdout, updated)
		return nil
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(stderr, "wrote cfgextract section to %s\n", path)
	return nil
}

// generateSection returns the sentinel-wrapped ignore rules for cfg's outputs.
func generateSection(cfg *config.Config) string {
	lines := []string{
		sentinelStart,
		"# Extracted blocks and manifest; regenerate with `cfgextract`.",
		anchored(cfg.ContractsDir) + "/",
		anchored(cfg.GroupsDir) + "/",
		anchored(cfg.Manifest),
		sentinelEnd,
	}
	return strings.Join(lines, "\n")
}

func anchored(p string) string {
	return "/" + strings.TrimPrefix(filepath.ToSlash(filepath.Clean(p)), "/")
}

// applySection inserts section into content, replacing an existing sentinel
// block if present or appending if not. It is a pure function for easy testing.
func applySection(content, section string) string {
	start := strings.Index(content, sentinelStart)
	end := strings.Index(content, sentinelEnd)

	if start >= 0 && end > start {
		return content[:start] + section + content[end+len(sentinelEnd):]
	}

	// Append, ensuring a blank line separator.
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + "\n" + section + "\n"
}
