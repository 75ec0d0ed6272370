// Package metrics implements the scan engine: it walks a generated
// project directory, classifies files, counts lines, and aggregates a
// deterministic report of what was produced.
package metrics

import (
	"path"
	"path/filepath"
	"strings"
)

// NoExtension is the type tag assigned to files whose name carries no
// extension (including bare dotfiles such as ".env").
const NoExtension = "no_extension"

// Classification is the outcome of classifying a single path.
type Classification struct {
	// TypeTag is the lowercase extension including the leading dot
	// (".py", ".tsx"), or NoExtension.
	TypeTag string

	// Excluded reports whether the path is rejected by the deny rules.
	Excluded bool
}

// Classifier decides, from the path string alone, how a file is
// bucketed and whether it is excluded from counting. It never touches
// the filesystem.
type Classifier struct {
	ignoreDirs  map[string]bool
	ignoreFiles []string
}

// NewClassifier builds a Classifier from a deny-list of directory names
// and a list of glob patterns matched against file base names.
func NewClassifier(ignoreDirs []string, ignoreFiles []string) *Classifier {
	dirs := make(map[string]bool, len(ignoreDirs))
	for _, d := range ignoreDirs {
		dirs[d] = true
	}
	return &Classifier{ignoreDirs: dirs, ignoreFiles: ignoreFiles}
}

// Classify returns the type tag for a file path and whether it is
// excluded. A path is excluded when any ancestor directory segment is
// on the deny-list, or when its base name matches an ignore pattern.
func (c *Classifier) Classify(p string) Classification {
	return Classification{
		TypeTag:  TypeTag(p),
		Excluded: c.excludedByAncestor(p) || c.IgnoreFile(filepath.Base(p)),
	}
}

// IgnoreDir reports whether a directory name is on the deny-list.
// Deny-listed directories are pruned whole during the walk.
func (c *Classifier) IgnoreDir(name string) bool {
	return c.ignoreDirs[name]
}

// IgnoreFile reports whether a file base name matches any of the
// configured ignore patterns.
func (c *Classifier) IgnoreFile(name string) bool {
	for _, pattern := range c.ignoreFiles {
		if ok, err := path.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

func (c *Classifier) excludedByAncestor(p string) bool {
	dir := filepath.Dir(p)
	if dir == "." || dir == string(filepath.Separator) {
		return false
	}
	for _, seg := range strings.Split(filepath.ToSlash(dir), "/") {
		if c.ignoreDirs[seg] {
			return true
		}
	}
	return false
}

// TypeTag derives the bucketing tag for a file path: the final
// dot-delimited suffix of the base name, lowercased, with its leading
// dot. A name with no suffix tags as NoExtension. A leading dot is part
// of the name, not an extension, so ".env" also tags as NoExtension.
func TypeTag(p string) string {
	base := filepath.Base(p)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return NoExtension
	}
	return strings.ToLower(ext)
}
