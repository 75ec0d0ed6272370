package task

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/blackwell-systems/ideval/internal/config"
)

// DetectIDEVersion probes an IDE's version, best-effort. It runs the
// configured version command (default `<command> --version`) and
// returns the first meaningful output line. An empty string means the
// version could not be determined; that is never fatal to a run.
func DetectIDEVersion(ide config.IDE) string {
	argv := ide.VersionCmd
	if len(argv) == 0 {
		if ide.Command == "" {
			return ""
		}
		argv = []string{ide.Command, "--version"}
	}

	out, err := exec.Command(argv[0], argv[1:]...).Output()
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// LaunchIDE opens the workspace in the IDE and returns without waiting
// for the editor to exit.
func LaunchIDE(ide config.IDE, workspace string) error {
	if ide.Command == "" {
		return fmt.Errorf("no launch command configured")
	}
	cmd := exec.Command(ide.Command, workspace)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", ide.Command, err)
	}
	// Detach; the editor session is interactive and outlives us.
	return cmd.Process.Release()
}
