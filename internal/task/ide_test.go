package task

import (
	"testing"

	"github.com/blackwell-systems/ideval/internal/config"
)

func TestDetectIDEVersion_NoCommand(t *testing.T) {
	if v := DetectIDEVersion(config.IDE{}); v != "" {
		t.Errorf("expected empty version, got %q", v)
	}
}

func TestDetectIDEVersion_MissingBinary(t *testing.T) {
	ide := config.IDE{Command: "ideval-no-such-editor"}
	if v := DetectIDEVersion(ide); v != "" {
		t.Errorf("expected empty version for missing binary, got %q", v)
	}
}

func TestDetectIDEVersion_VersionCmdOverride(t *testing.T) {
	// echo stands in for an editor's --version output.
	ide := config.IDE{Command: "irrelevant", VersionCmd: []string{"echo", "\n1.2.3\nbuild abc"}}
	if v := DetectIDEVersion(ide); v != "1.2.3" {
		t.Errorf("expected first meaningful line %q, got %q", "1.2.3", v)
	}
}

func TestLaunchIDE_NoCommand(t *testing.T) {
	if err := LaunchIDE(config.IDE{}, t.TempDir()); err == nil {
		t.Error("expected error when no launch command is configured")
	}
}
