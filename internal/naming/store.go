package naming

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/phobologic/cfgextract/internal/model"
)

// numericSuffix matches a trailing "_N", removed before a new suffix is added.
var numericSuffix = regexp.MustCompile(`_\d+$`)

// MaxCollisions bounds the number of numeric suffixes tried for one block.
const MaxCollisions = 4096

// ErrTooManyCollisions is returned when every suffix up to MaxCollisions is
// taken by a file with different content.
var ErrTooManyCollisions = errors.New("too many name collisions")

// Store writes blocks under a filesystem rooted at the working directory and
// never overwrites a file whose content differs.
type Store struct {
	fs afero.Fs
}

// NewStore returns a Store writing to fs.
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Save writes content at target, or at the first suffixed variant of target
// that is free or already holds identical content. Variants replace any
// numeric suffix target already has, so Mk_2.cfg collides to Mk_1.cfg.
func (s *Store) Save(target string, content []byte) (model.Location, error) {
	dir := filepath.Dir(target)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return model.Location{}, fmt.Errorf("creating %s: %w", dir, err)
	}

	ext := filepath.Ext(target)
	stem := numericSuffix.ReplaceAllString(strings.TrimSuffix(filepath.Base(target), ext), "")

	candidate := target
	for n := 1; ; n++ {
		same, exists, err := s.compare(candidate, content)
		if err != nil {
			return model.Location{}, err
		}
		if same {
			return model.Location{Path: candidate}, nil
		}
		if !exists {
			break
		}
		if n > MaxCollisions {
			return model.Location{}, fmt.Errorf("%s: %w", target, ErrTooManyCollisions)
		}
		candidate = filepath.Join(dir, stem+"_"+strconv.Itoa(n)+ext)
	}

	if err := afero.WriteFile(s.fs, candidate, content, 0o644); err != nil {
		return model.Location{}, fmt.Errorf("writing %s: %w", candidate, err)
	}
	return model.Location{Path: candidate, Written: true}, nil
}

// compare reports whether p exists and whether its content equals content.
func (s *Store) compare(p string, content []byte) (same, exists bool, err error) {
	existing, err := afero.ReadFile(s.fs, p)
	if errors.Is(err, os.ErrNotExist) {
		return false, false, nil
	}
	if err != nil {
		return false, true, fmt.Errorf("reading %s: %w", p, err)
	}
	return bytes.Equal(existing, content), true, nil
}
