// Package discover finds config files in a directory tree.
package discover

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	ignore "github.com/sabhiram/go-gitignore"
)

// Ext is the config file extension, matched case-insensitively.
const Ext = ".cfg"

// FileEntry represents a discovered config file.
type FileEntry struct {
	Path string // Relative to root
	Size int64
}

// Options controls which files Files returns.
type Options struct {
	// Exclude lists absolute directories that are never descended into.
	Exclude []string
	// Gitignore skips files ignored by git (git ls-files when root is a
	// repository, otherwise the root .gitignore).
	Gitignore bool
}

var skipDirs = map[string]struct{}{
	".git": {},
	".hg":  {},
	".svn": {},
}

// Files discovers config files under root, sorted by path.
func Files(root string, opts Options) ([]FileEntry, error) {
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, dir := range opts.Exclude {
		exclude[filepath.Clean(dir)] = struct{}{}
	}

	var gitFiles map[string]struct{}
	var gi *ignore.GitIgnore
	if opts.Gitignore {
		gitFiles = gitLsFiles(root)
		if gitFiles == nil {
			gi = loadGitignore(root)
		}
	}

	var results []FileEntry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // skip errors
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[d.Name()]; skip {
				return filepath.SkipDir
			}
			if _, skip := exclude[filepath.Clean(path)]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip symlinks and other non-regular files
		if !d.Type().IsRegular() {
			return nil
		}

		if !IsConfig(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if gitFiles != nil {
			if _, ok := gitFiles[filepath.ToSlash(rel)]; !ok {
				return nil
			}
		} else if gi != nil && gi.MatchesPath(rel) {
			return nil
		}

		entry := FileEntry{Path: rel}
		if info, err := d.Info(); err == nil {
			entry.Size = info.Size()
		}
		results = append(results, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, nil
}

// IsConfig reports whether name has the config extension.
func IsConfig(name string) bool {
	return len(name) >= len(Ext) && strings.EqualFold(name[len(name)-len(Ext):], Ext)
}

func gitLsFiles(root string) map[string]struct{} {
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	files := make(map[string]struct{})
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if line != "" {
			files[line] = struct{}{}
		}
	}
	return files
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
