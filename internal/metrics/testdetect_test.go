package metrics

import (
	"path/filepath"
	"testing"
)

func TestIsTestFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		// Prefix/suffix tokens.
		{"test_app.py", true},
		{"app_test.go", true},
		{"app-test.js", true},
		{"app.test.tsx", true},
		{"app.spec.ts", true},
		{"spec_helper.rb", true},
		{"test.py", true},

		// Directory residence.
		{"tests/helpers.py", true},
		{"src/spec/runner.js", true},
		{"Test/Thing.java", true},

		// Non-tests.
		{"app.py", false},
		{"contest.go", false},
		{"latest.txt", false},
		{"testament/notes.md", false},
		{"protester.js", false},
	}
	for _, tc := range cases {
		if got := IsTestFile(filepath.FromSlash(tc.path)); got != tc.want {
			t.Errorf("IsTestFile(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
