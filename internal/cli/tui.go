package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todo-list/internal/announce"
	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive list",
	Long: `Launch the interactive to-do list.

Keyboard shortcuts:
  Input:
    enter      Add the typed task
    tab/esc    Move focus to the list

  List:
    ↑/k ↓/j    Move
    space/x    Toggle complete
    d          Delete
    1 2 3      Show all, active, or completed tasks
    f          Next filter
    tab/n      Move focus to the input
    ?          Toggle help
    q          Quit

  Anywhere:
    ctrl+f     Next filter
    ctrl+t     Switch between light and dark
    ctrl+c     Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// the program owns the terminal, so logs go to a file
	logger, closer, err := logging.NewFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closer.Close()

	region := announce.NewRegion(cfg.AnnounceClear)

	ctx := cmd.Context()
	a, err := openApp(ctx, cfg, logger, region)
	if err != nil {
		return err
	}
	defer a.Close()

	model := tui.NewModel(a.store, region, tui.Options{
		DeleteDelay: cfg.DeleteDelay,
		Logger:      logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
