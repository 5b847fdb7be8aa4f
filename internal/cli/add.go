package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"todo-list/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Add a new task",
	Long: `Add a new task to the end of the list.

All arguments are joined with spaces. Leading and trailing whitespace is
trimmed; a blank task is ignored.

Examples:
  todo add Buy milk
  todo add "Call the plumber"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	task, err := a.store.Add(ctx, strings.Join(args, " "))
	if errors.Is(err, store.ErrEmptyText) {
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Info.Render("Nothing to add."))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(fmt.Sprintf("✓ Added task %s", task.Text)))
	fmt.Fprintln(cmd.OutOrStdout(), a.styles.Info.Render(fmt.Sprintf("  #%d  %s", a.store.Len(), task.ShortID())))

	return nil
}
