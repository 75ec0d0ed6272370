package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTree creates the given relative-path → content files under root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWalk_DeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"zeta.go":      "",
		"alpha.go":     "",
		"sub/b.go":     "",
		"sub/a.go":     "",
		"another/x.go": "",
	})

	c := NewClassifier(nil, nil)
	first, _, err := Walk(root, c)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := Walk(root, c)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{
		"alpha.go",
		filepath.FromSlash("another/x.go"),
		filepath.FromSlash("sub/a.go"),
		filepath.FromSlash("sub/b.go"),
		"zeta.go",
	}
	if !reflect.DeepEqual(first, want) {
		t.Errorf("walk order = %v, want %v", first, want)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("walk not reproducible: %v vs %v", first, second)
	}
}

func TestWalk_PrunedDirCountsOnce(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"src/index.ts":               "x",
		"node_modules/a/one.js":      "x",
		"node_modules/a/two.js":      "x",
		"node_modules/b/deep/3.js":   "x",
		"node_modules/b/deep/4.json": "x",
	})

	c := NewClassifier([]string{"node_modules"}, nil)
	accepted, excluded, err := Walk(root, c)
	if err != nil {
		t.Fatal(err)
	}

	if len(accepted) != 1 {
		t.Fatalf("expected 1 accepted file, got %d: %v", len(accepted), accepted)
	}
	// The pruned directory counts one, not one per descendant.
	if excluded != 1 {
		t.Errorf("excluded = %d, want 1", excluded)
	}
}

func TestWalk_IgnoredFilesCountIndividually(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.py":        "x",
		"a.pyc":       "x",
		"sub/b.pyc":   "x",
		"sub/keep.py": "x",
	})

	c := NewClassifier(nil, []string{"*.pyc"})
	accepted, excluded, err := Walk(root, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(accepted) != 2 {
		t.Fatalf("expected 2 accepted files, got %v", accepted)
	}
	if excluded != 2 {
		t.Errorf("excluded = %d, want 2", excluded)
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	_, _, err := Walk(filepath.Join(t.TempDir(), "nope"), NewClassifier(nil, nil))
	var rootErr *ScanRootError
	if !errors.As(err, &rootErr) {
		t.Fatalf("expected ScanRootError, got %v", err)
	}
}

func TestWalk_RootIsFile(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Walk(file, NewClassifier(nil, nil))
	var rootErr *ScanRootError
	if !errors.As(err, &rootErr) {
		t.Fatalf("expected ScanRootError for non-directory root, got %v", err)
	}
}

func TestWalk_DenyListedRootNameNotPruned(t *testing.T) {
	// The root itself is never matched against the deny-list; only
	// entries below it are.
	parent := t.TempDir()
	root := filepath.Join(parent, "node_modules")
	writeTree(t, root, map[string]string{"x.js": "x"})

	c := NewClassifier([]string{"node_modules"}, nil)
	accepted, excluded, err := Walk(root, c)
	if err != nil {
		t.Fatal(err)
	}
	if len(accepted) != 1 || excluded != 0 {
		t.Errorf("accepted=%v excluded=%d, want the root scanned normally", accepted, excluded)
	}
}
