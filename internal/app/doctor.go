package app

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideval/internal/config"
	"github.com/blackwell-systems/ideval/internal/output"
	"github.com/blackwell-systems/ideval/internal/task"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check whether the ideval setup is healthy",
	Long: `Run a series of health checks: task templates present, results
directory writable, snapshot database reachable, configured IDEs on
PATH. Prints a pass/fail line per check and a summary.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// doctorCheck holds the result of a single health check.
type doctorCheck struct {
	Name    string
	Passed  bool
	Message string
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	checks := []doctorCheck{
		checkTasksDir(cfg.TasksDir),
		checkResultsDir(cfg.ResultsDir),
		checkConfigDir(),
	}
	for name, ide := range cfg.IDEs {
		checks = append(checks, checkIDE(name, ide))
	}

	passed := 0
	for _, c := range checks {
		mark := output.StyleError.Render("✗")
		if c.Passed {
			mark = output.StyleSuccess.Render("✓")
			passed++
		}
		fmt.Printf(" %s %-24s %s\n", mark, c.Name, output.StyleMuted.Render(c.Message))
	}

	fmt.Println()
	fmt.Printf(" %d/%d checks passed\n", passed, len(checks))
	if passed < len(checks) {
		return fmt.Errorf("%d check(s) failed", len(checks)-passed)
	}
	return nil
}

func checkTasksDir(dir string) doctorCheck {
	templates, err := task.ListTemplates(dir)
	if err != nil {
		return doctorCheck{Name: "task templates", Message: err.Error()}
	}
	total := 0
	for _, names := range templates {
		total += len(names)
	}
	if total == 0 {
		return doctorCheck{Name: "task templates", Message: "no templates under " + dir}
	}
	return doctorCheck{Name: "task templates", Passed: true,
		Message: fmt.Sprintf("%d template(s) in %s", total, dir)}
}

func checkResultsDir(dir string) doctorCheck {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return doctorCheck{Name: "results directory", Passed: true, Message: dir}
	case err == nil:
		// A file in the way; init cannot create the directory.
		return doctorCheck{Name: "results directory", Message: dir + " exists but is not a directory"}
	default:
		// Absent is fine; init creates it on demand.
		return doctorCheck{Name: "results directory", Passed: true, Message: dir + " (will be created)"}
	}
}

func checkConfigDir() doctorCheck {
	dir := config.ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return doctorCheck{Name: "config directory", Message: err.Error()}
	}
	return doctorCheck{Name: "config directory", Passed: true, Message: dir}
}

func checkIDE(name string, ide config.IDE) doctorCheck {
	checkName := "ide: " + name
	if ide.Command == "" {
		return doctorCheck{Name: checkName, Message: "no command configured"}
	}
	if _, err := exec.LookPath(ide.Command); err != nil {
		return doctorCheck{Name: checkName, Message: ide.Command + " not on PATH"}
	}
	return doctorCheck{Name: checkName, Passed: true, Message: ide.Command}
}
