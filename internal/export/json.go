package export

import (
	"encoding/json"
	"io"
	"time"

	"todo-list/internal/domain"
	"todo-list/internal/render"
)

type JSONExporter struct {
	now func() time.Time
}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{now: time.Now}
}

func (e *JSONExporter) ExportTasks(tasks []domain.Task, filter domain.Filter) *TaskExport {
	data := make([]*TaskData, 0, len(tasks))
	for _, task := range tasks {
		if !render.Visible(task, filter) {
			continue
		}
		data = append(data, &TaskData{
			ID:        task.ID,
			Text:      task.Text,
			Completed: task.Completed,
		})
	}

	return &TaskExport{
		Version:    Version,
		ExportedAt: e.now().UTC(),
		Filter:     string(filter),
		Tasks:      data,
	}
}

func (e *JSONExporter) ExportTasksToWriter(w io.Writer, tasks []domain.Task, filter domain.Filter) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(e.ExportTasks(tasks, filter))
}
