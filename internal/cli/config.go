package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"todo-list/internal/config"
	"todo-list/internal/theme"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after defaults, the config file, and TODO_*
environment variables have been applied.

Examples:
  todo config
  todo config init
  TODO_DELETE_DELAY=1s todo config`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default values",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config file")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	styles := theme.NewStyles(theme.GetDefaultTheme())
	out := cmd.OutOrStdout()

	file := config.GetConfigFile()
	if !config.ConfigExists() {
		file += " (not created, using defaults)"
	}

	fmt.Fprintln(out, styles.Title.Render("Configuration"))
	fmt.Fprintf(out, "  %-16s %s\n", "file", file)
	fmt.Fprintf(out, "  %-16s %s\n", "db_path", cfg.DBPath)
	fmt.Fprintf(out, "  %-16s %s\n", "log_level", cfg.LogLevel)
	fmt.Fprintf(out, "  %-16s %s\n", "log_file", cfg.LogFile)
	fmt.Fprintf(out, "  %-16s %s\n", "delete_delay", cfg.DeleteDelay)
	fmt.Fprintf(out, "  %-16s %s\n", "announce_clear", cfg.AnnounceClear)

	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	styles := theme.NewStyles(theme.GetDefaultTheme())

	if config.ConfigExists() && !configInitForce {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Info.Render(fmt.Sprintf("Config already exists at %s (use --force to overwrite)", config.GetConfigFile())))
		return nil
	}

	if err := config.SaveConfig(config.GetDefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("✓ Wrote %s", config.GetConfigFile())))
	return nil
}
