package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
)

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: "id-1", Text: "Buy milk", State: domain.StateActive},
		{ID: "id-2", Text: "Walk *the* dog", Completed: true, State: domain.StateActive},
		{ID: "id-3", Text: "Call, \"mom\"", State: domain.StateActive},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]ExportFormat{
		"json":     FormatJSON,
		"CSV":      FormatCSV,
		"markdown": FormatMarkdown,
		"md":       FormatMarkdown,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestJSONExporter(t *testing.T) {
	e := NewJSONExporter()
	e.now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }

	var buf bytes.Buffer
	require.NoError(t, e.ExportTasksToWriter(&buf, sampleTasks(), domain.FilterActive))

	var out TaskExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, Version, out.Version)
	assert.Equal(t, "active", out.Filter)
	assert.True(t, out.ExportedAt.Equal(e.now()))
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "Buy milk", out.Tasks[0].Text)
	assert.Equal(t, "Call, \"mom\"", out.Tasks[1].Text)
}

func TestCSVExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVExporter().ExportTasksToCSV(&buf, sampleTasks(), domain.FilterAll))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Position", "ID", "Text", "Completed"}, rows[0])
	assert.Equal(t, []string{"2", "id-2", "Walk *the* dog", "true"}, rows[2])
	assert.Equal(t, "Call, \"mom\"", rows[3][2])
}

func TestCSVExporter_KeepsListPositions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVExporter().ExportTasksToCSV(&buf, sampleTasks(), domain.FilterCompleted))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2", rows[1][0])
}

func TestMarkdownExporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownExporter().ExportTasksToMarkdown(&buf, sampleTasks(), domain.FilterAll))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Tasks\n\n"))
	assert.Contains(t, out, "- [ ] Buy milk\n")
	assert.Contains(t, out, `- [x] Walk \*the\* dog`)
}

func TestMarkdownExporter_EmptyUnderFilter(t *testing.T) {
	tasks := []domain.Task{{ID: "1", Text: "open"}}

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownExporter().ExportTasksToMarkdown(&buf, tasks, domain.FilterCompleted))

	assert.Equal(t, "# Tasks (Completed)\n\n_No tasks._\n", buf.String())
}

func TestImporter_ReadTasks(t *testing.T) {
	imp := NewImporter()

	t.Run("round trips the JSON export", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewJSONExporter().ExportTasksToWriter(&buf, sampleTasks(), domain.FilterAll))

		tasks, err := imp.ReadTasks(&buf)
		require.NoError(t, err)
		assert.Equal(t, sampleTasks(), tasks)
	})

	t.Run("bare snapshot without ids", func(t *testing.T) {
		tasks, err := imp.ReadTasks(strings.NewReader(`[{"text":"a","completed":true},{"text":" "}]`))
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "a", tasks[0].Text)
		assert.True(t, tasks[0].Completed)
		assert.NotEmpty(t, tasks[0].ID)
	})

	t.Run("errors", func(t *testing.T) {
		for name, input := range map[string]string{
			"empty":        "  ",
			"not json":     "hello",
			"broken array": "[{",
			"no tasks":     `{"version":"1.0"}`,
		} {
			_, err := imp.ReadTasks(strings.NewReader(input))
			assert.Error(t, err, name)
		}
	})
}
