package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/ideval/internal/metrics"
)

func sampleReport() *metrics.Report {
	return &metrics.Report{
		TotalFiles: 3,
		TotalLines: 42,
		FilesByType: map[string]int{
			".py": 2,
			".md": 1,
		},
		FileDetails: []metrics.FileEntry{
			{Path: "app.py", Lines: 30, Type: ".py"},
			{Path: "tests/test_app.py", Lines: 10, Type: ".py", IsTest: true},
			{Path: "README.md", Lines: 2, Type: ".md"},
		},
		IgnoredFiles: 1,
	}
}

func TestSaveScan_RoundTrip(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	id, err := db.SaveScan("/tmp/run1", sampleReport(), "test")
	require.NoError(t, err)
	require.NotZero(t, id)

	scans, err := db.ListScans(0)
	require.NoError(t, err)
	require.Len(t, scans, 1)

	s := scans[0]
	assert.Equal(t, "/tmp/run1", s.ScanRoot)
	assert.Equal(t, 3, s.TotalFiles)
	assert.Equal(t, 42, s.TotalLines)
	assert.Equal(t, 1, s.IgnoredFiles)
	assert.Equal(t, 1, s.TestFiles)
	assert.False(t, s.TakenAt.IsZero())

	types, err := db.GetFileTypes(id)
	require.NoError(t, err)
	require.Len(t, types, 2)
	// Stored in tag order.
	assert.Equal(t, ".md", types[0].TypeTag)
	assert.Equal(t, 1, types[0].Count)
	assert.Equal(t, ".py", types[1].TypeTag)
	assert.Equal(t, 2, types[1].Count)
}

func TestListScans_NewestFirstWithLimit(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	for i := 0; i < 3; i++ {
		_, err := db.SaveScan("/tmp/run", sampleReport(), "test")
		require.NoError(t, err)
	}

	scans, err := db.ListScans(2)
	require.NoError(t, err)
	require.Len(t, scans, 2)
	assert.Greater(t, scans[0].ID, scans[1].ID)
}

func TestLatestScansForRoot_FiltersAndDiffs(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	first := sampleReport()
	_, err = db.SaveScan("/tmp/a", first, "test")
	require.NoError(t, err)

	second := sampleReport()
	second.TotalFiles = 5
	second.TotalLines = 60
	_, err = db.SaveScan("/tmp/a", second, "test")
	require.NoError(t, err)

	_, err = db.SaveScan("/tmp/other", sampleReport(), "test")
	require.NoError(t, err)

	scans, err := db.LatestScansForRoot("/tmp/a", 2)
	require.NoError(t, err)
	require.Len(t, scans, 2)

	delta := Diff(&scans[1], &scans[0])
	assert.Equal(t, 2, delta.FilesDelta)
	assert.Equal(t, 18, delta.LinesDelta)
	assert.Equal(t, 0, delta.TestsDelta)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	// Open already migrated; a second run must be a no-op.
	require.NoError(t, db.Migrate())
}
