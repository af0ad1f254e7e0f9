// Package export runs the per-file extraction pipeline: read, extract, name,
// save and record.
package export

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/phobologic/cfgextract/internal/extract"
	"github.com/phobologic/cfgextract/internal/manifest"
	"github.com/phobologic/cfgextract/internal/model"
	"github.com/phobologic/cfgextract/internal/naming"
)

// Source is one input file.
type Source struct {
	Path    string // Path used to read the file from the source filesystem
	Display string // Path recorded in the manifest, relative to the working directory
}

// Reporter receives progress and warnings.
type Reporter interface {
	Saved(path, kind, name string)
	Unchanged(path, kind, name string)
	Empty(path string)
	Warn(format string, a ...any)
}

// Result counts what a run did.
type Result struct {
	Files    int
	Blocks   int
	Written  int
	Warnings int
}

// Exporter extracts blocks from sources and saves them through a Store.
type Exporter struct {
	src    afero.Fs
	store  *naming.Store
	paths  naming.Paths
	report Reporter
}

// New returns an Exporter reading sources from src and writing to out.
func New(src, out afero.Fs, paths naming.Paths, report Reporter) *Exporter {
	return &Exporter{
		src:    src,
		store:  naming.NewStore(out),
		paths:  paths,
		report: report,
	}
}

// Run processes sources in order and records every saved block in m.
// Read and write failures are reported and skipped; Run itself never fails.
func (e *Exporter) Run(sources []Source, m *manifest.Builder) Result {
	var res Result
	for _, s := range sources {
		e.file(s, m, &res)
	}
	return res
}

func (e *Exporter) file(s Source, m *manifest.Builder, res *Result) {
	res.Files++

	data, err := afero.ReadFile(e.src, s.Path)
	if err != nil {
		res.Warnings++
		e.report.Warn("reading %s: %v", s.Display, err)
		return
	}

	n := 0
	for b := range extract.Blocks(string(data)) {
		n++
		if err := e.block(b, s, m, res); err != nil {
			res.Warnings++
			e.report.Warn("saving %s block from %s: %v", b.Kind, s.Display, err)
		}
	}
	if n == 0 {
		e.report.Empty(s.Display)
	}
}

func (e *Exporter) block(b model.Block, s Source, m *manifest.Builder, res *Result) error {
	res.Blocks++
	nb := naming.LogicalName(b)
	target := e.paths.Target(nb, s.Path)

	loc, err := e.store.Save(target, []byte(b.Text))
	if err != nil {
		return fmt.Errorf("name %q: %w", nb.Name, err)
	}

	if loc.Written {
		res.Written++
		e.report.Saved(loc.Path, string(b.Kind), nb.Name)
	} else {
		e.report.Unchanged(loc.Path, string(b.Kind), nb.Name)
	}
	m.Add(b.Kind, nb.Name, loc.Path, s.Display)
	return nil
}
