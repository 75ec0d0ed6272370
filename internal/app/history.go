package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/ideval/internal/config"
	"github.com/blackwell-systems/ideval/internal/output"
	"github.com/blackwell-systems/ideval/internal/store"
)

var (
	historyFlagLimit   int
	historyFlagCompare string
	historyFlagJSON    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored scans and compare runs",
	Long: `History lists scan snapshots stored with 'eval --save', newest first.
With --compare it diffs the two most recent scans of the given directory
and shows file/line/test deltas with trend arrows.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyFlagLimit, "limit", 20, "Show at most N snapshots")
	historyCmd.Flags().StringVar(&historyFlagCompare, "compare", "", "Compare the two latest scans of this directory")
	historyCmd.Flags().BoolVar(&historyFlagJSON, "json", false, "Output as JSON")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := store.Open(config.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if historyFlagCompare != "" {
		return compareScans(db, historyFlagCompare)
	}
	return listScans(db)
}

func listScans(db *store.DB) error {
	scans, err := db.ListScans(historyFlagLimit)
	if err != nil {
		return fmt.Errorf("listing scans: %w", err)
	}

	if historyFlagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(scans)
	}

	if len(scans) == 0 {
		fmt.Println(output.StyleMuted.Render("No snapshots stored yet. Run 'ideval eval --save <dir>'."))
		return nil
	}

	fmt.Println(output.Section("Scan History"))
	fmt.Println()

	tbl := output.NewTable("ID", "Taken", "Directory", "Files", "Lines", "Tests", "Ignored")
	for _, s := range scans {
		tbl.AddRow(
			fmt.Sprintf("%d", s.ID),
			s.TakenAt.Local().Format(time.DateTime),
			s.ScanRoot,
			fmt.Sprintf("%d", s.TotalFiles),
			fmt.Sprintf("%d", s.TotalLines),
			fmt.Sprintf("%d", s.TestFiles),
			fmt.Sprintf("%d", s.IgnoredFiles),
		)
	}
	tbl.Print()
	return nil
}

func compareScans(db *store.DB, root string) error {
	scans, err := db.LatestScansForRoot(root, 2)
	if err != nil {
		return fmt.Errorf("loading scans: %w", err)
	}
	if len(scans) < 2 {
		return fmt.Errorf("need at least two stored scans of %s to compare, have %d", root, len(scans))
	}

	// ListScans order is newest first.
	delta := store.Diff(&scans[1], &scans[0])

	if historyFlagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(delta)
	}

	fmt.Println(output.Section("Scan Comparison"))
	fmt.Println()
	fmt.Printf(" %s %s → %s\n",
		output.StyleLabel.Render("Snapshots:"),
		delta.Previous.TakenAt.Local().Format(time.DateTime),
		delta.Current.TakenAt.Local().Format(time.DateTime))

	tbl := output.NewTable("Metric", "Previous", "Current", "Trend")
	tbl.AddRow("Files",
		fmt.Sprintf("%d", delta.Previous.TotalFiles),
		fmt.Sprintf("%d", delta.Current.TotalFiles),
		output.TrendArrow(delta.FilesDelta, true))
	tbl.AddRow("Lines",
		fmt.Sprintf("%d", delta.Previous.TotalLines),
		fmt.Sprintf("%d", delta.Current.TotalLines),
		output.TrendArrow(delta.LinesDelta, true))
	tbl.AddRow("Test files",
		fmt.Sprintf("%d", delta.Previous.TestFiles),
		fmt.Sprintf("%d", delta.Current.TestFiles),
		output.TrendArrow(delta.TestsDelta, true))
	tbl.Print()
	return nil
}
