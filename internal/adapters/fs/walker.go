// Package fs provides file system adapters for walking and discovering
// project files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SourceExtensions are the project file kinds the engine fingerprints and
// checks. Shared so discovery and projections cannot drift apart.
var SourceExtensions = []string{".ts", ".tsx", ".js", ".jsx"}

// Walker provides file walking and source discovery.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files under root, relative to root, skipping excluded
// directories and files. Unreadable subtrees are skipped rather than aborting
// the walk.
func (w *Walker) WalkFiles(root string, excludes []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil //nolint:nilerr // unreadable entries are not fatal
			}

			name := d.Name()
			if d.IsDir() {
				// Hidden VCS metadata is never interesting.
				if name == ".git" || name == ".jj" || excluded(name, excludes) {
					return filepath.SkipDir
				}
				return nil
			}

			if excluded(name, excludes) {
				return nil
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}

			if !yield(filepath.ToSlash(rel)) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// SourceFiles returns all files under root whose extension is in exts,
// sorted for deterministic enumeration.
func (w *Walker) SourceFiles(root string, exts, excludes []string) []string {
	extSet := make(map[string]bool, len(exts))
	for _, ext := range exts {
		extSet[ext] = true
	}

	var files []string
	for path := range w.WalkFiles(root, excludes) {
		if extSet[filepath.Ext(path)] {
			files = append(files, path)
		}
	}
	sort.Strings(files)
	return files
}

// ConfigFiles returns the subset of names that exist directly under root.
// Names may be globs (".eslintrc*").
func (w *Walker) ConfigFiles(root string, names []string) []string {
	var found []string
	for _, name := range names {
		if strings.ContainsAny(name, "*?[") {
			matches, err := filepath.Glob(filepath.Join(root, name))
			if err != nil {
				continue
			}
			for _, m := range matches {
				rel, relErr := filepath.Rel(root, m)
				if relErr != nil {
					rel = m
				}
				found = append(found, filepath.ToSlash(rel))
			}
			continue
		}
		if _, err := os.Stat(filepath.Join(root, name)); err == nil {
			found = append(found, name)
		}
	}
	sort.Strings(found)
	return found
}

func excluded(name string, excludes []string) bool {
	for _, pattern := range excludes {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
