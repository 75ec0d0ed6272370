// Package app contains the Cobra command tree for ideval.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideval/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "ideval",
	Short: "Comparative evaluation of AI-assisted code generation",
	Long: `ideval runs side-by-side evaluations of AI coding tools. It provisions
isolated task workspaces from templates, hands them to an IDE/model to
populate, and scans the generated output into a deterministic structural
report (file counts, line counts, type breakdown, test presence).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.AutoDetect()
		if flagNoColor {
			output.SetNoColor(true)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("ideval", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  init      Provision a task workspace for an IDE/model run")
		fmt.Println("  eval      Scan a generated project and emit the report")
		fmt.Println("  history   List stored scans and compare runs")
		fmt.Println("  cleanup   Remove provisioned result workspaces")
		fmt.Println("  doctor    Check whether the ideval setup is healthy")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/ideval/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
