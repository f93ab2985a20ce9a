package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/elmotec/makemock/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded generation runs",
	Long: `List generation runs recorded in .makemock/history.db.

Runs are only recorded when a generate or batch command is invoked with
--history; without that flag makemock writes no state at all.

Example:
  makemock widget.h --history
  makemock history --limit 10`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "max runs to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.OpenHistory(".")
	if err != nil {
		fmt.Printf("Error opening history: %v\n", err)
		return
	}
	defer store.Close()

	runs, err := store.RecentRuns(historyLimit)
	if err != nil {
		fmt.Printf("Error reading history: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No generation runs recorded.")
		fmt.Println("Run 'makemock <header> --history' to start recording.")
		return
	}

	for _, run := range runs {
		target := run.TargetClass
		if target == "" {
			target = "-"
		}
		fmt.Printf("  [%s] %s  class: %s  methods: %d  %s\n",
			run.ID, run.Input, target, run.Methods,
			run.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Total: %d runs\n", len(runs))
}

// recordRun appends a run to the history store, warning on stderr instead
// of failing: history must never break generation, and stdout may be
// carrying the generated code.
func recordRun(input, targetClass string, methods int) {
	store, err := storage.OpenHistory(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.RecordRun(input, targetClass, methods); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record history: %v\n", err)
	}
}
