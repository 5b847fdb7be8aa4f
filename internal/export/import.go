package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"todo-list/internal/domain"
	"todo-list/internal/persist"
)

type Importer struct{}

func NewImporter() *Importer {
	return &Importer{}
}

// ReadTasks accepts either a JSON export ({"version", "tasks": [...]}) or a
// bare snapshot array as stored under the tasks key. Blank records are
// skipped and missing ids are generated.
func (i *Importer) ReadTasks(r io.Reader) ([]domain.Task, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("import is empty")
	}

	var records []persist.Record
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
	case '{':
		var export struct {
			Version string           `json:"version"`
			Tasks   []persist.Record `json:"tasks"`
		}
		if err := json.Unmarshal(data, &export); err != nil {
			return nil, fmt.Errorf("failed to decode export: %w", err)
		}
		if export.Tasks == nil {
			return nil, fmt.Errorf("no tasks in export")
		}
		records = export.Tasks
	default:
		return nil, fmt.Errorf("unrecognized import format")
	}

	return persist.FromRecords(records), nil
}
