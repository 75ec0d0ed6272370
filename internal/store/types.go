// Package store provides SQLite persistence for scan snapshots so runs
// can be compared over time.
package store

import "time"

// Scan is one stored evaluation snapshot.
type Scan struct {
	ID           int64     `json:"id"`
	TakenAt      time.Time `json:"taken_at"`
	ScanRoot     string    `json:"scan_root"`
	TotalFiles   int       `json:"total_files"`
	TotalLines   int       `json:"total_lines"`
	IgnoredFiles int       `json:"ignored_files_count"`
	TestFiles    int       `json:"test_files"`
	Version      string    `json:"version"`
}

// FileTypeCount is one type-tag bucket within a stored scan.
type FileTypeCount struct {
	ScanID  int64  `json:"scan_id"`
	TypeTag string `json:"type"`
	Count   int    `json:"count"`
}

// ScanDelta is the comparison between two scans of the same root.
type ScanDelta struct {
	Previous   *Scan `json:"previous"`
	Current    *Scan `json:"current"`
	FilesDelta int   `json:"files_delta"`
	LinesDelta int   `json:"lines_delta"`
	TestsDelta int   `json:"tests_delta"`
}

// Diff computes the deltas between two scans, previous first.
func Diff(previous, current *Scan) ScanDelta {
	return ScanDelta{
		Previous:   previous,
		Current:    current,
		FilesDelta: current.TotalFiles - previous.TotalFiles,
		LinesDelta: current.TotalLines - previous.TotalLines,
		TestsDelta: current.TestFiles - previous.TestFiles,
	}
}
