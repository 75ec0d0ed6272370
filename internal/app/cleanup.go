package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideval/internal/config"
	"github.com/blackwell-systems/ideval/internal/output"
)

var cleanupFlagDryRun bool

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove provisioned result workspaces",
	Long: `Cleanup deletes all workspaces under the results directory. Use
--dry-run to list what would be removed without deleting anything.`,
	RunE: runCleanup,
}

func init() {
	cleanupCmd.Flags().BoolVar(&cleanupFlagDryRun, "dry-run", false, "List workspaces without deleting them")
	rootCmd.AddCommand(cleanupCmd)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entries, err := os.ReadDir(cfg.ResultsDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println(output.StyleMuted.Render("Nothing to clean up."))
			return nil
		}
		return fmt.Errorf("reading results dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		workspace := filepath.Join(cfg.ResultsDir, e.Name())
		if cleanupFlagDryRun {
			fmt.Println("would remove", workspace)
			continue
		}
		fmt.Println("removing", workspace)
		if err := os.RemoveAll(workspace); err != nil {
			return fmt.Errorf("removing %s: %w", workspace, err)
		}
		removed++
	}

	if cleanupFlagDryRun {
		return nil
	}
	fmt.Printf("%s %d workspace(s) removed\n", output.StyleSuccess.Render("Done:"), removed)
	return nil
}
