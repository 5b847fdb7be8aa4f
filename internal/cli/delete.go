package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:     "delete [ref]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task from the list.
You will be prompted for confirmation unless you use the --force flag.

Examples:
  todo delete 1
  todo delete milk --force`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	out := cmd.OutOrStdout()

	if !deleteForce {
		fmt.Fprintln(out, a.styles.Error.Render(fmt.Sprintf("⚠  You are about to delete '%s'", task.Text)))
		fmt.Fprint(out, a.styles.Subtitle.Render("   Are you sure? (y/N): "))

		reader := bufio.NewReader(cmd.InOrStdin())
		response, err := reader.ReadString('\n')
		if err != nil && response == "" {
			return fmt.Errorf("failed to read input: %w", err)
		}

		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out)
			fmt.Fprintln(out, a.styles.Info.Render("Deletion cancelled."))
			return nil
		}
		fmt.Fprintln(out)
	}

	if err := a.store.Delete(ctx, task.ID); err != nil {
		return err
	}

	fmt.Fprintln(out, a.styles.Success.Render(fmt.Sprintf("✓ Deleted task %s", task.Text)))

	return nil
}
