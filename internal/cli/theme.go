package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"todo-list/internal/domain"
	"todo-list/internal/theme"
	"todo-list/internal/tui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the light/dark theme",
	Long: `Manage the light/dark theme.

Run without arguments to launch the interactive theme picker.
Use subcommands for direct theme management.

Examples:
  todo theme              # Launch the picker
  todo theme set dark     # Set theme directly
  todo theme toggle       # Switch between light and dark
  todo theme show         # Show current theme`,
	Args: cobra.NoArgs,
	RunE: runThemePicker,
}

var themeSetCmd = &cobra.Command{
	Use:       "set [light|dark]",
	Short:     "Set the theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.ThemeLight), string(domain.ThemeDark)},
	RunE:      runThemeSet,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	Args:  cobra.NoArgs,
	RunE:  runThemeToggle,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current theme",
	Long:  `Display the current theme and its color palette.`,
	Args:  cobra.NoArgs,
	RunE:  runThemeShow,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeShowCmd)
}

// launches the theme picker
func runThemePicker(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	p := tea.NewProgram(tui.NewThemePicker(a.store), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run theme picker: %w", err)
	}

	picker, ok := final.(tui.ThemePickerModel)
	if !ok {
		return nil
	}
	if err := picker.Err(); err != nil {
		return err
	}
	if picker.Confirmed() {
		styles := theme.NewStyles(theme.ForMode(picker.Selected()))
		fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("✓ Theme set to '%s'", picker.Selected())))
	}

	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	mode, err := domain.ParseThemeMode(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.store.SetTheme(ctx, mode); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	styles := theme.NewStyles(theme.ForMode(mode))
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("✓ Theme set to '%s'", mode)))

	return nil
}

func runThemeToggle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	mode, err := a.store.ToggleTheme(ctx)
	if err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	styles := theme.NewStyles(theme.ForMode(mode))
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("✓ Theme set to '%s'", mode)))

	return nil
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	mode := a.store.Theme()
	t := theme.ForMode(mode)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, a.styles.Title.Render(fmt.Sprintf("Current theme: %s", mode)))
	fmt.Fprintln(out)

	swatch := func(name, color string) {
		block := lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("    ")
		fmt.Fprintf(out, "  %s %-14s %s\n", block, name, color)
	}
	swatch("primary", t.Primary)
	swatch("text", t.TextPrimary)
	swatch("active task", t.TaskActive)
	swatch("completed", t.TaskCompleted)
	swatch("removing", t.TaskRemoving)
	swatch("announcement", t.Announcement)

	return nil
}
