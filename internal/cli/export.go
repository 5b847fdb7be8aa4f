package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"todo-list/internal/domain"
	"todo-list/internal/export"
)

var (
	exportOutput string
	exportFormat string
	exportFilter string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks",
	Long: `Export tasks to a file or stdout.

Supported formats:
  - json: Structured JSON format (default), readable by 'todo import'
  - csv: Comma-separated values for spreadsheets
  - markdown: A markdown checklist

Examples:
  todo export --output tasks.json
  todo export --format csv --filter active
  todo export --format markdown --output todo.md`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "F", "json", "Export format (json, csv, markdown)")
	exportCmd.Flags().StringVarP(&exportFilter, "filter", "f", "all", "Export all, active, or completed tasks")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	filter, err := domain.ParseFilter(exportFilter)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := loadApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := writeExport(w, format, a.store.Tasks(), filter); err != nil {
		return fmt.Errorf("failed to export tasks: %w", err)
	}

	if exportOutput != "" {
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(fmt.Sprintf("✓ Exported tasks to %s", exportOutput)))
	}

	return nil
}

func writeExport(w io.Writer, format export.ExportFormat, tasks []domain.Task, filter domain.Filter) error {
	switch format {
	case export.FormatCSV:
		return export.NewCSVExporter().ExportTasksToCSV(w, tasks, filter)
	case export.FormatMarkdown:
		return export.NewMarkdownExporter().ExportTasksToMarkdown(w, tasks, filter)
	default:
		return export.NewJSONExporter().ExportTasksToWriter(w, tasks, filter)
	}
}
