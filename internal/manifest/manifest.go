// Package manifest accumulates where every extracted block was saved.
package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/phobologic/cfgextract/internal/model"
)

// DefaultName is the manifest file written to the working directory.
const DefaultName = "index.json"

// Builder collects manifest entries over a run.
type Builder struct {
	m model.Manifest
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{m: model.Manifest{
		Contracts: map[string][]model.Entry{},
		Groups:    map[string][]model.Entry{},
	}}
}

// Add records that the block called name was saved at saved from source.
// Both paths are stored slash-separated.
func (b *Builder) Add(kind model.Kind, name, saved, source string) {
	e := model.Entry{Saved: filepath.ToSlash(saved), Source: filepath.ToSlash(source)}
	switch kind {
	case model.ContractGroup:
		b.m.Groups[name] = append(b.m.Groups[name], e)
	default:
		b.m.Contracts[name] = append(b.m.Contracts[name], e)
	}
}

// Manifest returns the accumulated manifest.
func (b *Builder) Manifest() model.Manifest {
	return b.m
}

// Len returns the number of recorded entries across both kinds.
func (b *Builder) Len() (contracts, groups int) {
	for _, es := range b.m.Contracts {
		contracts += len(es)
	}
	for _, es := range b.m.Groups {
		groups += len(es)
	}
	return contracts, groups
}

// Marshal encodes the manifest as indented JSON. Map keys are sorted, so the
// output is stable for identical input.
func (b *Builder) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(b.m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Write serializes the manifest to p on fs, creating p's directory.
func (b *Builder) Write(fs afero.Fs, p string) error {
	data, err := b.Marshal()
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	if err := afero.WriteFile(fs, p, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// Read decodes a manifest previously written with Write.
func Read(fs afero.Fs, p string) (model.Manifest, error) {
	var m model.Manifest
	data, err := afero.ReadFile(fs, p)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("decoding %s: %w", p, err)
	}
	return m, nil
}
