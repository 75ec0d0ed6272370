package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideval/internal/config"
	"github.com/blackwell-systems/ideval/internal/metrics"
	"github.com/blackwell-systems/ideval/internal/output"
	"github.com/blackwell-systems/ideval/internal/store"
)

var (
	evalFlagOutput string
	evalFlagFormat string
	evalFlagSave   bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <dir>",
	Short: "Scan a generated project and emit the report",
	Long: `Eval walks the task directory, classifies every file by extension,
counts lines, detects test artifacts, and prints a deterministic JSON
report. Dependency caches, VCS metadata, and build output directories
are excluded; warnings for unreadable files go to stderr, never into
the report itself.`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalFlagOutput, "output", "o", "", "Write the report to a file instead of stdout")
	evalCmd.Flags().StringVarP(&evalFlagFormat, "format", "f", "json", "Output format: json or markdown")
	evalCmd.Flags().BoolVar(&evalFlagSave, "save", false, "Also store the scan as a snapshot for history comparison")

	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if evalFlagFormat != "json" && evalFlagFormat != "markdown" {
		return fmt.Errorf("unknown format %q (want json or markdown)", evalFlagFormat)
	}

	root := args[0]
	builder := metrics.NewBuilder(metrics.NewClassifier(cfg.IgnoreDirs, cfg.IgnoreFiles))
	if flagVerbose {
		fmt.Fprintln(os.Stderr, "scanning", root)
	}

	report, err := builder.Build(root)
	if err != nil {
		return err
	}

	rendered, err := renderReport(report, evalFlagFormat)
	if err != nil {
		return err
	}

	if evalFlagOutput != "" {
		if err := os.WriteFile(evalFlagOutput, rendered, 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintln(os.Stderr, "report saved to", evalFlagOutput)
	} else {
		os.Stdout.Write(rendered)
	}

	if evalFlagSave {
		if err := saveSnapshot(root, report); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}
	return nil
}

func renderReport(report *metrics.Report, format string) ([]byte, error) {
	if format == "markdown" {
		return []byte(output.Markdown(report)), nil
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func saveSnapshot(root string, report *metrics.Report) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	id, err := db.SaveScan(root, report, appVersion)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "snapshot %d stored\n", id)
	return nil
}
