package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo-list/internal/display"
)

var doneCmd = &cobra.Command{
	Use:     "done [ref]",
	Aliases: []string{"toggle"},
	Short:   "Toggle a task between active and completed",
	Long: `Toggle a task between active and completed.

A task can be referenced by its position in 'todo list', by the start of
its id, or by a few characters of its text.

Examples:
  todo done 2
  todo done 3f9a
  todo done milk`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	task, err := resolveRef(a.store, args[0])
	if err != nil {
		return err
	}

	task, err = a.store.Toggle(ctx, task.ID)
	if err != nil {
		return err
	}

	state := "active"
	if task.Completed {
		state = "completed"
	}
	msg := fmt.Sprintf("%s Marked '%s' %s", display.GetStatusIcon(task.Completed), task.Text, state)
	fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(msg))

	return nil
}
