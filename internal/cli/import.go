package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todo-list/internal/export"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Append tasks from a file",
	Long: `Append tasks from a JSON file to the end of the list.

The file may be a 'todo export' JSON document or a bare array of
{"text", "completed"} records. Ids that already exist are replaced with
new ones; blank tasks are skipped.

Examples:
  todo import tasks.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	tasks, err := export.NewImporter().ReadTasks(f)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	n, err := a.store.Import(ctx, tasks)
	if err != nil {
		return err
	}

	word := "tasks"
	if n == 1 {
		word = "task"
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(fmt.Sprintf("✓ Imported %d %s", n, word)))

	return nil
}
