// Package toon renders a manifest in TOON (Token-Oriented Object Notation).
package toon

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/phobologic/cfgextract/internal/model"
)

var (
	needsQuoting = regexp.MustCompile(`[,:"\\{}\[\]]`)
	looksNumeric = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?$`)
	keywords     = map[string]struct{}{
		"true":  {},
		"false": {},
		"null":  {},
	}
)

var entryColumns = []string{"name", "saved", "source"}

// Encode converts a manifest into TOON. Rows are ordered by name, then by the
// order in which entries were recorded.
func Encode(manifestPath string, m model.Manifest) string {
	parts := []string{
		fmt.Sprintf("manifest: %s", encodeValue(manifestPath)),
		formatTabular("contracts", entryColumns, entryRows(m.Contracts)),
		formatTabular("groups", entryColumns, entryRows(m.Groups)),
	}
	return strings.Join(parts, "\n")
}

func entryRows(entries map[string][]model.Entry) [][]string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)

	var rows [][]string
	for _, name := range names {
		for _, e := range entries[name] {
			rows = append(rows, []string{name, e.Saved, e.Source})
		}
	}
	return rows
}

func formatTabular(name string, columns []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%d]{%s}:", name, len(rows), strings.Join(columns, ","))
	for _, row := range rows {
		encoded := make([]string, len(row))
		for i, cell := range row {
			encoded[i] = encodeValue(cell)
		}
		fmt.Fprintf(&b, "\n  %s", strings.Join(encoded, ","))
	}
	return b.String()
}

func encodeValue(value string) string {
	switch {
	case value == "":
		return `""`
	case value != strings.TrimSpace(value), strings.ContainsAny(value, "\n\r\t"):
		return quote(value)
	}
	if _, ok := keywords[strings.ToLower(value)]; ok {
		return quote(value)
	}
	if looksNumeric.MatchString(value) {
		return value
	}
	if needsQuoting.MatchString(value) || strings.HasPrefix(value, "-") {
		return quote(value)
	}
	return value
}

func quote(value string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	return `"` + r.Replace(value) + `"`
}
