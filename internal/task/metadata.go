// Package task provisions isolated task workspaces for comparison runs
// and records run metadata. It contains no evaluation logic; scanning a
// populated workspace is the metrics package's job.
package task

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// MetadataFile is the filename written into each provisioned workspace.
const MetadataFile = "metadata.json"

// Metadata describes one task run: what was asked, with which tool,
// and under what environment.
type Metadata struct {
	// TaskType is "greenfield" or "brownfield".
	TaskType string `json:"task_type"`

	// TaskName is the template name, e.g. "todo-app".
	TaskName string `json:"task_name"`

	// IDE is the editor integration used for this run.
	IDE string `json:"ide"`

	// LLM identifies the provider and model.
	LLM string `json:"llm"`

	IDEVersion string `json:"ide_version,omitempty"`
	StartTime  string `json:"start_time"`

	EnvironmentInfo map[string]string `json:"environment_info"`
	Tags            []string          `json:"tags"`
	Notes           string            `json:"notes"`
}

// NewMetadata builds run metadata stamped with the current time and
// environment info.
func NewMetadata(taskType, taskName, ide, llm string) *Metadata {
	return &Metadata{
		TaskType:        taskType,
		TaskName:        taskName,
		IDE:             ide,
		LLM:             llm,
		StartTime:       time.Now().Format(time.RFC3339),
		EnvironmentInfo: EnvironmentInfo(),
		Tags:            []string{},
	}
}

// EnvironmentInfo collects details of the machine the run executes on.
func EnvironmentInfo() map[string]string {
	info := map[string]string{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"go_version": runtime.Version(),
	}
	if host, err := os.Hostname(); err == nil {
		info["hostname"] = host
	}
	return info
}

// Save writes the metadata as indented JSON into the workspace and
// returns the file path.
func (m *Metadata) Save(workspace string) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(workspace, MetadataFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// LoadMetadata reads a previously saved metadata file from a workspace.
func LoadMetadata(workspace string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(workspace, MetadataFile))
	if err != nil {
		return nil, err
	}
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
