package metrics

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ScanRootError indicates the scan root is missing or not a directory.
// It is fatal: no partial report is produced.
type ScanRootError struct {
	Path string
	Err  error
}

func (e *ScanRootError) Error() string {
	return fmt.Sprintf("scan root %s: %v", e.Path, e.Err)
}

func (e *ScanRootError) Unwrap() error { return e.Err }

// Walk enumerates all files under root in deterministic lexicographic
// order and returns their paths relative to root, plus the number of
// entries excluded by the classifier.
//
// Deny-listed directories are pruned, not descended into: a pruned
// directory increments the excluded count by exactly one regardless of
// how many files it contains. Files matching an ignore pattern each
// count one.
func Walk(root string, classifier *Classifier) ([]string, int, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, 0, &ScanRootError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return nil, 0, &ScanRootError{Path: root, Err: fmt.Errorf("not a directory")}
	}

	var accepted []string
	excluded := 0

	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != root && classifier.IgnoreDir(d.Name()) {
				excluded++
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if classifier.IgnoreFile(d.Name()) {
			excluded++
			return nil
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		accepted = append(accepted, rel)
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walking %s: %w", root, err)
	}

	return accepted, excluded, nil
}
