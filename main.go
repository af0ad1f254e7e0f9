// cfgextract extracts CONTRACT_TYPE and CONTRACT_GROUP blocks from a tree of
// .cfg files into one file per block, plus a JSON manifest.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/phobologic/cfgextract/internal/config"
	"github.com/phobologic/cfgextract/internal/discover"
	"github.com/phobologic/cfgextract/internal/export"
	"github.com/phobologic/cfgextract/internal/manifest"
	"github.com/phobologic/cfgextract/internal/naming"
	"github.com/phobologic/cfgextract/internal/toon"
	"github.com/phobologic/cfgextract/internal/ui"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

type rootOptions struct {
	workdir     string
	configFile  string
	showVersion bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "cfgextract [flags] [root]",
		Short: "Extract CONTRACT_TYPE and CONTRACT_GROUP blocks from .cfg files",
		Long: `Scan root (default: the current directory) for .cfg files and write every
CONTRACT_TYPE and CONTRACT_GROUP block to its own file under the working
directory, along with an index.json manifest mapping block names to the
files they were saved to and the files they came from.

Settings are read from flags, CFGEXTRACT_* environment variables, and a
cfgextract.yaml (or .json) in the working directory, in that order.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				_, _ = fmt.Fprintf(stdout, "cfgextract %s\n", version)
				return nil
			}
			root := "."
			if len(args) > 0 {
				root = args[0]
			}
			return extract(cmd.Flags(), root, opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.CompletionOptions.DisableDefaultCmd = true

	f := cmd.Flags()
	f.StringVarP(&opts.workdir, "workdir", "C", "", "working directory for outputs and the manifest (default: current directory)")
	f.StringVar(&opts.configFile, "config", "", "config file (YAML or JSON)")
	f.BoolVarP(&opts.showVersion, "version", "V", false, "show version and exit")
	config.Flags(f)

	cmd.AddCommand(newInitCmd(stdout, stderr), newTranslateCmd(stdout, stderr))
	return cmd
}

func extract(flags *pflag.FlagSet, rootArg string, opts rootOptions, stdout, stderr io.Writer) error {
	workdir, err := resolveWorkdir(opts.workdir)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags, workdir, opts.configFile)
	if err != nil {
		return err
	}

	root, err := filepath.Abs(rootArg)
	if err != nil {
		return fmt.Errorf("resolving root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", root)
	}

	contractsDir, err := within(workdir, "contracts-dir", cfg.ContractsDir)
	if err != nil {
		return err
	}
	groupsDir, err := within(workdir, "groups-dir", cfg.GroupsDir)
	if err != nil {
		return err
	}
	manifestPath, err := within(workdir, "manifest", cfg.Manifest)
	if err != nil {
		return err
	}

	out := afero.NewBasePathFs(afero.NewOsFs(), workdir)
	for _, dir := range []string{contractsDir, groupsDir} {
		if err := out.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	// Discover files, leaving out our own output
	files, err := discover.Files(root, discover.Options{
		Exclude:   []string{filepath.Join(workdir, contractsDir), filepath.Join(workdir, groupsDir)},
		Gitignore: cfg.Gitignore,
	})
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	// Keep stdout a clean TOON document
	progress := stdout
	if cfg.Summary == config.SummaryTOON {
		progress = stderr
	}
	console := ui.New(progress, stderr, cfg.Quiet)
	files, skipped := filterBySize(files, cfg.MaxFileSize, console)

	sources := make([]export.Source, 0, len(files))
	for _, f := range files {
		abs := filepath.Join(root, f.Path)
		display, err := filepath.Rel(workdir, abs)
		if err != nil {
			display = abs
		}
		sources = append(sources, export.Source{Path: abs, Display: display})
	}

	m := manifest.New()
	paths := naming.Paths{Layout: cfg.Layout, Contracts: contractsDir, Groups: groupsDir}
	res := export.New(afero.NewOsFs(), out, paths, console).Run(sources, m)

	if err := m.Write(out, manifestPath); err != nil {
		return err
	}

	if cfg.Summary == config.SummaryTOON {
		_, _ = fmt.Fprintln(stdout, toon.Encode(filepath.ToSlash(manifestPath), m.Manifest()))
		return nil
	}

	contracts, groups := m.Len()
	console.Summary(ui.Stats{
		ContractsDir: filepath.Join(workdir, contractsDir),
		GroupsDir:    filepath.Join(workdir, groupsDir),
		Manifest:     filepath.Join(workdir, manifestPath),
		Files:        res.Files,
		Contracts:    contracts,
		Groups:       groups,
		Written:      res.Written,
		Warnings:     res.Warnings + skipped,
	})
	return nil
}

func resolveWorkdir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving workdir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("workdir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: not a directory", abs)
	}
	return abs, nil
}

// within returns p relative to workdir, rejecting paths outside it.
func within(workdir, key, p string) (string, error) {
	rel := filepath.Clean(p)
	if filepath.IsAbs(rel) {
		var err error
		if rel, err = filepath.Rel(workdir, rel); err != nil {
			return "", fmt.Errorf("%s: %w", key, err)
		}
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s %q must be inside the working directory %s", key, p, workdir)
	}
	return rel, nil
}

func filterBySize(files []discover.FileEntry, maxSize int64, console *ui.Console) ([]discover.FileEntry, int) {
	if maxSize <= 0 {
		return files, 0
	}
	var kept []discover.FileEntry
	skipped := 0
	for _, f := range files {
		if f.Size > maxSize {
			console.Warn("%s: skipped (>%d bytes)", f.Path, maxSize)
			skipped++
			continue
		}
		kept = append(kept, f)
	}
	return kept, skipped
}
