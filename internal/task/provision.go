package task

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TaskTypes are the recognized template categories, in detection order.
var TaskTypes = []string{"greenfield", "brownfield"}

// DetectType finds which category a task template belongs to by
// checking <tasksDir>/<type>/<name> for each known type.
func DetectType(tasksDir, taskName string) (string, error) {
	for _, typ := range TaskTypes {
		if info, err := os.Stat(filepath.Join(tasksDir, typ, taskName)); err == nil && info.IsDir() {
			return typ, nil
		}
	}
	return "", fmt.Errorf("task %q not found under %s", taskName, tasksDir)
}

// ListTemplates returns the template names available under tasksDir,
// grouped by task type. Missing type directories are skipped.
func ListTemplates(tasksDir string) (map[string][]string, error) {
	templates := make(map[string][]string)
	for _, typ := range TaskTypes {
		entries, err := os.ReadDir(filepath.Join(tasksDir, typ))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				templates[typ] = append(templates[typ], e.Name())
			}
		}
	}
	return templates, nil
}

// WorkspacePath generates the result directory for a run:
// <resultsDir>/<task>-<ide>-<llm>-<timestamp>, lowercased with spaces
// replaced so the name is shell-friendly.
func WorkspacePath(resultsDir string, m *Metadata) string {
	stamp := time.Now().Format("20060102_150405")
	name := fmt.Sprintf("%s-%s-%s-%s", m.TaskName, m.IDE, m.LLM, stamp)
	name = strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	return filepath.Join(resultsDir, name)
}

// Provision copies the task template tree into the workspace
// directory, creating it (and parents) as needed.
func Provision(templateDir, workspace string) error {
	if info, err := os.Stat(templateDir); err != nil || !info.IsDir() {
		return fmt.Errorf("task template not found: %s", templateDir)
	}
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		return err
	}
	return copyTree(templateDir, workspace)
}

func copyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		srcPath := filepath.Join(src, e.Name())
		dstPath := filepath.Join(dst, e.Name())
		if e.IsDir() {
			if err := os.MkdirAll(dstPath, 0o755); err != nil {
				return err
			}
			if err := copyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
