package output

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/ideval/internal/metrics"
)

func TestMarkdown(t *testing.T) {
	r := &metrics.Report{
		TotalFiles: 3,
		TotalLines: 60,
		FilesByType: map[string]int{
			".py": 2,
			".md": 1,
		},
		FileDetails: []metrics.FileEntry{
			{Path: "app.py", Lines: 40, Type: ".py"},
			{Path: "tests/test_app.py", Lines: 15, Type: ".py", IsTest: true},
			{Path: "README.md", Lines: 5, Type: ".md"},
		},
		IgnoredFiles: 2,
	}

	md := Markdown(r)

	for _, want := range []string{
		"- Total Files: **3**",
		"- Total Lines of Code: **60**",
		"- Test Files: **1**",
		"- Ignored Files: **2**",
		"| .py | 2 |",
		"| .md | 1 |",
		"| app.py | 40 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}

	// Types sorted by count descending: .py before .md.
	if strings.Index(md, "| .py |") > strings.Index(md, "| .md |") {
		t.Error(".py (count 2) should render before .md (count 1)")
	}
	// Largest files descend: app.py before test_app.py.
	if strings.Index(md, "| app.py |") > strings.Index(md, "| tests/test_app.py |") {
		t.Error("largest file should render first")
	}
}

func TestMarkdown_Deterministic(t *testing.T) {
	r := &metrics.Report{
		FilesByType: map[string]int{".a": 1, ".b": 1, ".c": 1, ".d": 1},
		FileDetails: []metrics.FileEntry{
			{Path: "w.a", Lines: 1, Type: ".a"},
			{Path: "x.b", Lines: 1, Type: ".b"},
			{Path: "y.c", Lines: 1, Type: ".c"},
			{Path: "z.d", Lines: 1, Type: ".d"},
		},
		TotalFiles: 4,
		TotalLines: 4,
	}

	first := Markdown(r)
	for i := 0; i < 10; i++ {
		if Markdown(r) != first {
			t.Fatal("markdown rendering is not deterministic")
		}
	}
}
