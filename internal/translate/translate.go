// Package translate rewrites the human-readable text fields of contract
// config files through a phrase table, leaving every other line untouched.
package translate

import (
	"cmp"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Fields lists the translatable field names, in match priority.
var Fields = []string{"title", "description", "notes", "synopsis", "completedMessage", "agent"}

// companyMarkers identify agent values that are proper names.
var companyMarkers = []string{",", "Inc", "LLC", "Corp", "Ltd"}

var (
	fieldMu    sync.Mutex
	fieldLines = map[string]*regexp.Regexp{}
)

// FieldLine splits a "field = value" line into its prefix (indentation, key,
// equals sign and surrounding spaces) and value.
func FieldLine(line, field string) (prefix, value string, ok bool) {
	fieldMu.Lock()
	re, found := fieldLines[field]
	if !found {
		re = regexp.MustCompile(`^(\s*` + regexp.QuoteMeta(field) + `\s*=\s*)(.*)$`)
		fieldLines[field] = re
	}
	fieldMu.Unlock()

	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// Translator maps English contract text to another language.
type Translator struct {
	phrases  map[string]string
	keys     []string // sorted, for deterministic case-insensitive lookup
	replacer *strings.Replacer
}

// New returns a Translator over the built-in table merged with extra.
// Entries in extra win over built-in ones.
func New(extra map[string]string) *Translator {
	phrases := make(map[string]string, len(builtin)+len(extra))
	for k, v := range builtin {
		phrases[k] = v
	}
	for k, v := range extra {
		phrases[k] = v
	}

	keys := make([]string, 0, len(phrases))
	for k := range phrases {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	// Longest first so a phrase wins over any phrase it contains.
	byLength := slices.Clone(keys)
	slices.SortStableFunc(byLength, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	pairs := make([]string, 0, 2*len(byLength))
	for _, k := range byLength {
		pairs = append(pairs, k, phrases[k])
	}

	return &Translator{phrases: phrases, keys: keys, replacer: strings.NewReplacer(pairs...)}
}

// Phrase translates one field value: an exact match, then a case-insensitive
// exact match, then replacement of every known phrase inside the text.
func (t *Translator) Phrase(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	if v, ok := t.phrases[text]; ok {
		return v
	}
	for _, k := range t.keys {
		if strings.EqualFold(k, text) {
			return t.phrases[k]
		}
	}
	return t.replacer.Replace(text)
}

// File translates every translatable field line of a config file. Agent
// values that look like company names are kept as they are.
func (t *Translator) File(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		for _, field := range Fields {
			prefix, value, ok := FieldLine(line, field)
			if !ok || value == "" {
				continue
			}
			if field != "agent" || !isCompany(value) {
				lines[i] = prefix + t.Phrase(value)
			}
			break
		}
	}
	return strings.Join(lines, "\n")
}

func isCompany(value string) bool {
	for _, marker := range companyMarkers {
		if strings.Contains(value, marker) {
			return true
		}
	}
	return false
}

// phraseFile is the on-disk shape of a user phrase table.
type phraseFile struct {
	Phrases map[string]string `yaml:"phrases"`
}

// LoadPhrases reads a YAML phrase table of the form
//
//	phrases:
//	  "Let's get a probe into orbit": "Vamos colocar uma sonda em órbita"
func LoadPhrases(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf phraseFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return pf.Phrases, nil
}
