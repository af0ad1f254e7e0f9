// Package naming derives safe output paths for extracted blocks.
package naming

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/phobologic/cfgextract/internal/extract"
	"github.com/phobologic/cfgextract/internal/model"
)

// Ext is the extension of every written block file.
const Ext = ".cfg"

// Ungrouped is the directory for type blocks without a group field.
const Ungrouped = "_ungrouped"

var (
	unsafeRe     = regexp.MustCompile(`[<>:"/\\|?*\s]+`)
	underscoreRe = regexp.MustCompile(`_+`)
	dotsRe       = regexp.MustCompile(`^\.+$`)
)

// Sanitize makes name usable as a single path component.
func Sanitize(name string) string {
	s := unsafeRe.ReplaceAllString(name, "_")
	s = underscoreRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if dotsRe.MatchString(s) {
		s = ""
	}
	if s != "" {
		return s
	}
	if name != "" && !unsafeRe.MatchString(name) && !dotsRe.MatchString(name) {
		return name
	}
	return "_"
}

// LogicalName returns the block's name field, or a name derived from the
// kind and the MD5 of its text when no name is declared.
func LogicalName(b model.Block) model.NamedBlock {
	if name, ok := extract.Field(b.Text, "name"); ok {
		return model.NamedBlock{Block: b, Name: name, Explicit: true}
	}
	sum := md5.Sum([]byte(b.Text))
	return model.NamedBlock{
		Block: b,
		Name:  fmt.Sprintf("%s_%s", b.Kind.Lower(), hex.EncodeToString(sum[:])[:8]),
	}
}

// Layout selects how type blocks are arranged under the contracts root.
type Layout string

const (
	// Flat places type blocks at contracts/<source>/<name>.cfg.
	Flat Layout = "flat"
	// Grouped places type blocks at contracts/<group>/<source>/<name>.cfg.
	Grouped Layout = "grouped"
)

// ParseLayout validates a layout name.
func ParseLayout(s string) (Layout, error) {
	switch l := Layout(strings.ToLower(strings.TrimSpace(s))); l {
	case Flat, Grouped:
		return l, nil
	}
	return "", fmt.Errorf("unknown layout %q (want %q or %q)", s, Flat, Grouped)
}

// Paths holds the configured output roots, relative to the working directory.
type Paths struct {
	Layout    Layout
	Contracts string
	Groups    string
}

// Target returns the preferred path for nb, before collision handling.
// source is the path of the file the block came from.
func (p Paths) Target(nb model.NamedBlock, source string) string {
	file := Sanitize(nb.Name) + Ext
	if nb.Kind == model.ContractGroup {
		return filepath.Join(p.Groups, file)
	}
	base := Sanitize(baseName(source))
	if p.Layout == Grouped {
		group, ok := extract.Field(nb.Text, "group")
		if !ok {
			group = Ungrouped
		}
		return filepath.Join(p.Contracts, Sanitize(group), base, file)
	}
	return filepath.Join(p.Contracts, base, file)
}

// baseName strips the directory and a case-insensitive .cfg suffix.
func baseName(source string) string {
	name := filepath.Base(source)
	if len(name) > len(Ext) && strings.EqualFold(name[len(name)-len(Ext):], Ext) {
		name = name[:len(name)-len(Ext)]
	}
	return name
}
