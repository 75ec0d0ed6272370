package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideval/internal/config"
	"github.com/blackwell-systems/ideval/internal/output"
	"github.com/blackwell-systems/ideval/internal/task"
)

var (
	initFlagType   string
	initFlagTags   []string
	initFlagNotes  string
	initFlagOutput string
	initFlagLaunch bool
)

var initCmd = &cobra.Command{
	Use:   "init <task> <ide> <llm>",
	Short: "Provision a task workspace for an IDE/model run",
	Long: `Init copies a task template into a fresh timestamped workspace under
the results directory, records run metadata (IDE version, environment,
tags), and optionally launches the IDE on it. The populated workspace
is later scored with 'ideval eval'.`,
	Args: cobra.ExactArgs(3),
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initFlagType, "task-type", "", "Task type: greenfield or brownfield (auto-detected if empty)")
	initCmd.Flags().StringSliceVar(&initFlagTags, "tags", nil, "Tags for categorizing this run")
	initCmd.Flags().StringVar(&initFlagNotes, "notes", "", "Additional notes about this run")
	initCmd.Flags().StringVar(&initFlagOutput, "output-dir", "", "Custom workspace directory")
	initCmd.Flags().BoolVar(&initFlagLaunch, "launch", false, "Open the workspace in the IDE after provisioning")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	taskName, ideName, llm := args[0], args[1], args[2]

	taskType := initFlagType
	if taskType == "" {
		taskType, err = task.DetectType(cfg.TasksDir, taskName)
		if err != nil {
			return err
		}
	}

	ide, ok := cfg.IDEs[ideName]
	if !ok {
		// Unknown IDEs still get metadata and a workspace; launch and
		// version detection just have nothing to call.
		fmt.Fprintf(os.Stderr, "warning: IDE %q not configured\n", ideName)
	}

	meta := task.NewMetadata(taskType, taskName, ideName, llm)
	meta.Tags = append(meta.Tags, initFlagTags...)
	meta.Notes = initFlagNotes
	if v := task.DetectIDEVersion(ide); v != "" {
		meta.IDEVersion = v
	} else if ok {
		fmt.Fprintf(os.Stderr, "warning: could not detect %s version\n", ideName)
	}

	workspace := initFlagOutput
	if workspace == "" {
		workspace = task.WorkspacePath(cfg.ResultsDir, meta)
	}

	templateDir := filepath.Join(cfg.TasksDir, taskType, taskName)
	if err := task.Provision(templateDir, workspace); err != nil {
		return err
	}
	if _, err := meta.Save(workspace); err != nil {
		return fmt.Errorf("saving metadata: %w", err)
	}

	printInitSummary(meta, workspace)

	if initFlagLaunch {
		if err := task.LaunchIDE(ide, workspace); err != nil {
			return err
		}
	}
	return nil
}

func printInitSummary(meta *task.Metadata, workspace string) {
	fmt.Println(output.Section("Task Initialized"))
	fmt.Println()

	rows := []struct{ label, value string }{
		{"Task Type", meta.TaskType},
		{"Task Name", meta.TaskName},
		{"IDE", meta.IDE + " " + meta.IDEVersion},
		{"LLM", meta.LLM},
		{"Workspace", workspace},
		{"Start Time", meta.StartTime},
	}
	for _, r := range rows {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render(r.label+":"),
			output.StyleValue.Render(r.value))
	}

	fmt.Println()
	fmt.Println(output.StyleSuccess.Render(" Task files copied and ready for development."))
	fmt.Printf(" Next: open %s and run the task, then score it with 'ideval eval'.\n", workspace)
}
