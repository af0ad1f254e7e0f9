// Package extract finds keyword blocks and field values in config text.
package extract

import (
	"iter"
	"regexp"
	"strings"
	"sync"

	"github.com/phobologic/cfgextract/internal/model"
)

var keywordRe = regexp.MustCompile(`(?i)(CONTRACT_TYPE|CONTRACT_GROUP)\s*\{`)

// Blocks returns the blocks of text in order of appearance. The sequence is
// a single forward scan: an unbalanced keyword occurrence is dropped and the
// scan resumes just after its opening brace, while a balanced one moves the
// cursor past its closing brace, so keywords nested inside an emitted block
// are never yielded on their own.
func Blocks(text string) iter.Seq[model.Block] {
	return func(yield func(model.Block) bool) {
		cursor := 0
		for cursor < len(text) {
			loc := keywordRe.FindStringSubmatchIndex(text[cursor:])
			if loc == nil {
				return
			}
			start := cursor + loc[0]
			brace := cursor + loc[1] - 1
			kind := model.Kind(strings.ToUpper(text[cursor+loc[2] : cursor+loc[3]]))

			end := matchBrace(text, brace)
			if end < 0 {
				cursor = brace + 1
				continue
			}

			b := model.Block{Kind: kind, Text: text[start : end+1], Start: start, End: end + 1}
			if !yield(b) {
				return
			}
			cursor = end + 1
		}
	}
}

// All collects every block in text.
func All(text string) []model.Block {
	var blocks []model.Block
	for b := range Blocks(text) {
		blocks = append(blocks, b)
	}
	return blocks
}

// matchBrace returns the index of the brace closing the one at open, or -1
// if the text ends first.
func matchBrace(text string, open int) int {
	depth := 0
	for i := open; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

var (
	fieldMu    sync.Mutex
	fieldCache = map[string]*regexp.Regexp{}
)

func fieldPattern(field string) *regexp.Regexp {
	fieldMu.Lock()
	defer fieldMu.Unlock()
	if re, ok := fieldCache[field]; ok {
		return re
	}
	re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(field) + `\s*=\s*(?:"([^"]+)"|'([^']+)'|([\w.:+\-]+))`)
	fieldCache[field] = re
	return re
}

// Field returns the value of the first "field = value" assignment in block.
// Values may be double-quoted, single-quoted, or a bare token; quotes are
// stripped. The field name is matched case-insensitively as a whole key.
func Field(block, field string) (string, bool) {
	m := fieldPattern(field).FindStringSubmatch(block)
	if m == nil {
		return "", false
	}
	for _, v := range m[1:] {
		if v != "" {
			return v, true
		}
	}
	return "", false
}
