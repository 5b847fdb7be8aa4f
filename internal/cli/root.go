package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"todo-list/internal/config"
)

var configDirFlag string

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - a small terminal to-do list",
	Long: `todo keeps a short list of tasks you can add, complete, filter, and delete.

Run without a subcommand to open the interactive list. Tasks and the
light/dark theme are stored in a local database and restored on start.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configDirFlag != "" {
			config.SetConfigDir(configDirFlag)
		}
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Directory holding config.yaml and the database (default ~/.todo)")
}

// Execute runs the root command. ctx is cancelled on interrupt.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
