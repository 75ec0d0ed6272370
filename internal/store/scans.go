package store

import (
	"database/sql"
	"sort"
	"time"

	"github.com/blackwell-systems/ideval/internal/metrics"
)

// SaveScan stores a report as a new snapshot for the given root and
// returns the snapshot ID. Per-type counts are inserted in sorted tag
// order so a stored scan reads back deterministically.
func (db *DB) SaveScan(root string, report *metrics.Report, version string) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO scans
		(taken_at, scan_root, total_files, total_lines, ignored_files, test_files, version)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), root,
		report.TotalFiles, report.TotalLines, report.IgnoredFiles,
		report.TestFileCount(), version,
	)
	if err != nil {
		return 0, err
	}
	scanID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	tags := make([]string, 0, len(report.FilesByType))
	for tag := range report.FilesByType {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		if _, err := tx.Exec(
			"INSERT INTO scan_file_types (scan_id, type_tag, file_count) VALUES (?, ?, ?)",
			scanID, tag, report.FilesByType[tag],
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return scanID, nil
}

// ListScans returns the most recent scans, newest first, up to limit.
// A limit of zero returns everything.
func (db *DB) ListScans(limit int) ([]Scan, error) {
	query := `SELECT id, taken_at, scan_root, total_files, total_lines,
		ignored_files, test_files, version FROM scans ORDER BY id DESC`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = db.conn.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = db.conn.Query(query)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scans []Scan
	for rows.Next() {
		s, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// LatestScansForRoot returns up to n most recent scans of one root,
// newest first.
func (db *DB) LatestScansForRoot(root string, n int) ([]Scan, error) {
	rows, err := db.conn.Query(
		`SELECT id, taken_at, scan_root, total_files, total_lines,
		 ignored_files, test_files, version
		 FROM scans WHERE scan_root = ? ORDER BY id DESC LIMIT ?`,
		root, n,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var scans []Scan
	for rows.Next() {
		s, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// GetFileTypes returns the per-type counts stored for a scan, in tag
// order.
func (db *DB) GetFileTypes(scanID int64) ([]FileTypeCount, error) {
	rows, err := db.conn.Query(
		"SELECT scan_id, type_tag, file_count FROM scan_file_types WHERE scan_id = ? ORDER BY type_tag",
		scanID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var counts []FileTypeCount
	for rows.Next() {
		var c FileTypeCount
		if err := rows.Scan(&c.ScanID, &c.TypeTag, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func scanRow(rows *sql.Rows) (Scan, error) {
	var s Scan
	var takenAt string
	err := rows.Scan(&s.ID, &takenAt, &s.ScanRoot, &s.TotalFiles, &s.TotalLines,
		&s.IgnoredFiles, &s.TestFiles, &s.Version)
	if err != nil {
		return Scan{}, err
	}
	s.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
	return s, nil
}
