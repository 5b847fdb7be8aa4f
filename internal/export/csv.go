package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"todo-list/internal/domain"
	"todo-list/internal/render"
)

type CSVExporter struct{}

func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) ExportTasksToCSV(w io.Writer, tasks []domain.Task, filter domain.Filter) error {
	writer := csv.NewWriter(w)

	header := []string{"Position", "ID", "Text", "Completed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, task := range tasks {
		if !render.Visible(task, filter) {
			continue
		}

		row := []string{
			strconv.Itoa(i + 1),
			task.ID,
			task.Text,
			strconv.FormatBool(task.Completed),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
