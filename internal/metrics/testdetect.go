package metrics

import (
	"path/filepath"
	"strings"
)

// testDirNames are directory segments that mark everything beneath
// them as test artifacts.
var testDirNames = map[string]bool{
	"test":  true,
	"tests": true,
	"spec":  true,
	"specs": true,
}

// IsTestFile reports whether a path looks like a test artifact, using
// naming conventions only: a "test"/"spec" token at a name boundary
// (test_app.py, app_test.go, app.spec.ts) or residence under a
// test/tests/spec/specs directory. Case-insensitive, no filesystem
// access. The result is informational and never affects counting.
func IsTestFile(p string) bool {
	slashed := filepath.ToSlash(strings.ToLower(p))
	segments := strings.Split(slashed, "/")

	base := segments[len(segments)-1]
	for _, dir := range segments[:len(segments)-1] {
		if testDirNames[dir] {
			return true
		}
	}

	// Strip all extensions so "app.test.tsx" inspects "app.test".
	name := base
	if i := strings.IndexByte(name, '.'); i > 0 {
		if hasTestToken(name[:i]) {
			return true
		}
	}
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return hasTestToken(name)
}

// hasTestToken reports whether name carries a test/spec token in prefix
// or suffix position, delimited by '_', '-', '.', or the name edge.
func hasTestToken(name string) bool {
	for _, token := range []string{"test", "spec"} {
		if name == token {
			return true
		}
		for _, sep := range []string{"_", "-", "."} {
			if strings.HasPrefix(name, token+sep) || strings.HasSuffix(name, sep+token) {
				return true
			}
		}
	}
	return false
}
