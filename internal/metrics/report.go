package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FileEntry is one counted file's metadata within a scan.
type FileEntry struct {
	// Path is the file's path relative to the scan root, using forward
	// slashes so reports compare across platforms.
	Path string `json:"path"`

	// Lines is the number of line-terminator-delimited segments.
	Lines int `json:"lines"`

	// Type is the normalized extension tag, or NoExtension.
	Type string `json:"type"`

	// IsTest marks files matching test naming conventions. It is kept
	// internal to preserve the published report shape.
	IsTest bool `json:"-"`
}

// Report is the immutable result of one scan. Invariants:
// TotalFiles == len(FileDetails), TotalLines is the sum of entry lines,
// and the FilesByType counts sum to TotalFiles.
type Report struct {
	TotalFiles   int            `json:"total_files"`
	TotalLines   int            `json:"total_lines"`
	FilesByType  map[string]int `json:"files_by_type"`
	FileDetails  []FileEntry    `json:"file_details"`
	IgnoredFiles int            `json:"ignored_files_count"`
}

// TestFileCount returns how many entries look like test artifacts.
func (r *Report) TestFileCount() int {
	n := 0
	for _, f := range r.FileDetails {
		if f.IsTest {
			n++
		}
	}
	return n
}

// Builder orchestrates walker, classifier, line counter, and test
// detector into a Report.
type Builder struct {
	classifier *Classifier

	// Warnf receives diagnostics for files skipped mid-scan. Defaults
	// to stderr; the JSON report never carries warnings.
	Warnf func(format string, args ...any)

	// Parallelism bounds concurrent file reads. Zero means NumCPU.
	Parallelism int
}

// NewBuilder returns a Builder using the given classifier.
func NewBuilder(classifier *Classifier) *Builder {
	return &Builder{
		classifier: classifier,
		Warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
		},
	}
}

// fileResult is one file-processing attempt: either an entry or a
// skip with reason. Collected per-index so the merge stays in
// traversal order no matter how reads interleave.
type fileResult struct {
	entry   FileEntry
	skipErr error
}

// Build scans root and returns a fresh Report. A per-file read or
// decode failure is not fatal: the file is counted as ignored, a
// warning is emitted, and the scan completes with an internally
// consistent partial report. Only a bad root (ScanRootError) aborts.
func (b *Builder) Build(root string) (*Report, error) {
	paths, excluded, err := Walk(root, b.classifier)
	if err != nil {
		return nil, err
	}

	results := make([]fileResult, len(paths))

	limit := b.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	var g errgroup.Group
	g.SetLimit(limit)

	for i, rel := range paths {
		g.Go(func() error {
			results[i] = b.processFile(root, rel)
			return nil
		})
	}
	// Workers never return errors; failures land in results.
	_ = g.Wait()

	report := &Report{
		FilesByType:  make(map[string]int),
		FileDetails:  make([]FileEntry, 0, len(paths)),
		IgnoredFiles: excluded,
	}
	for i, res := range results {
		if res.skipErr != nil {
			b.warnf("skipping %s: %v", paths[i], res.skipErr)
			report.IgnoredFiles++
			continue
		}
		report.TotalFiles++
		report.TotalLines += res.entry.Lines
		report.FilesByType[res.entry.Type]++
		report.FileDetails = append(report.FileDetails, res.entry)
	}
	return report, nil
}

func (b *Builder) processFile(root, rel string) fileResult {
	content, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		return fileResult{skipErr: err}
	}
	lines, err := CountLines(content)
	if err != nil {
		return fileResult{skipErr: err}
	}
	return fileResult{entry: FileEntry{
		Path:   filepath.ToSlash(rel),
		Lines:  lines,
		Type:   b.classifier.Classify(rel).TypeTag,
		IsTest: IsTestFile(rel),
	}}
}

func (b *Builder) warnf(format string, args ...any) {
	if b.Warnf != nil {
		b.Warnf(format, args...)
	}
}
