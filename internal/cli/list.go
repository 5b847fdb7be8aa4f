package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"todo-list/internal/display"
	"todo-list/internal/domain"
	"todo-list/internal/render"
	"todo-list/internal/theme"
)

var listFilter string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks in the order they were added.

The number in front of each task is its position in the full list and can
be passed to 'done' and 'delete'.

Examples:
  todo list
  todo list --filter active`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "Show all, active, or completed tasks")
}

func runList(cmd *cobra.Command, args []string) error {
	filter, err := domain.ParseFilter(listFilter)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	a.store.SetFilter(filter)
	displayView(cmd.OutOrStdout(), a.styles, a.store.View())

	return nil
}

func displayView(w io.Writer, styles *theme.Styles, v render.View) {
	if v.ShowEmptyState {
		fmt.Fprintln(w, styles.Info.Render("No tasks yet."))
		return
	}

	fmt.Fprintln(w, styles.Header.Render(display.FilterLabel(v.Filter)))
	fmt.Fprintln(w)

	shown := 0
	for i, row := range v.Rows {
		if !row.Visible {
			continue
		}
		shown++
		fmt.Fprintf(w, "%3d. %s %s  %s\n",
			i+1,
			display.GetCheckbox(row.Completed),
			styles.TaskText(row.Completed, row.Removing).Render(row.Text),
			styles.Subtitle.Render(shortID(row.ID)),
		)
	}

	if shown == 0 {
		fmt.Fprintln(w, styles.Info.Render(fmt.Sprintf("No %s tasks.", v.Filter)))
	}

	counts := v.Counts()
	fmt.Fprintln(w, styles.Separator.Render(strings.Repeat("─", 40)))
	fmt.Fprintln(w, styles.Subtitle.Render(display.Summary(counts.Total, counts.Completed)))
}

func shortID(id string) string {
	return domain.Task{ID: id}.ShortID()
}
