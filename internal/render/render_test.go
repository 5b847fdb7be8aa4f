package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
)

func sampleTasks() []domain.Task {
	return []domain.Task{
		{ID: "1", Text: "A", Completed: true, State: domain.StateActive},
		{ID: "2", Text: "B", State: domain.StateActive},
		{ID: "3", Text: "C", State: domain.StatePendingRemoval},
	}
}

func TestProject_VisibilityRule(t *testing.T) {
	tests := []struct {
		filter domain.Filter
		want   []string
	}{
		{filter: domain.FilterAll, want: []string{"A", "B", "C"}},
		{filter: domain.FilterActive, want: []string{"B", "C"}},
		{filter: domain.FilterCompleted, want: []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			view := Project(sampleTasks(), tt.filter)

			assert.Equal(t, tt.want, view.VisibleTexts())
			assert.Len(t, view.Rows, 3, "filtering never drops rows")
			assert.Equal(t, tt.filter, view.Filter)
		})
	}
}

func TestProject_PreservesOrderAndFields(t *testing.T) {
	view := Project(sampleTasks(), domain.FilterAll)
	require.Len(t, view.Rows, 3)

	assert.Equal(t, Row{ID: "1", Text: "A", Completed: true, Visible: true}, view.Rows[0])
	assert.Equal(t, Row{ID: "2", Text: "B", Visible: true}, view.Rows[1])
	assert.Equal(t, Row{ID: "3", Text: "C", Visible: true, Removing: true}, view.Rows[2])
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	tasks := sampleTasks()
	before := append([]domain.Task(nil), tasks...)

	Project(tasks, domain.FilterCompleted)
	assert.Equal(t, before, tasks)
}

func TestProject_EmptyState(t *testing.T) {
	t.Run("empty list shows indicator", func(t *testing.T) {
		view := Project(nil, domain.FilterAll)
		assert.True(t, view.ShowEmptyState)
		assert.Empty(t, view.Rows)
	})

	t.Run("no match under filter still hides indicator", func(t *testing.T) {
		tasks := []domain.Task{
			{ID: "1", Text: "A"},
			{ID: "2", Text: "B"},
		}
		view := Project(tasks, domain.FilterCompleted)

		assert.Empty(t, view.Visible())
		assert.False(t, view.ShowEmptyState)
		assert.Len(t, view.Rows, 2)
	})
}

func TestProject_Idempotent(t *testing.T) {
	tasks := sampleTasks()
	for _, f := range domain.Filters() {
		assert.Equal(t, Project(tasks, f), Project(tasks, f))
	}
}

func TestView_Counts(t *testing.T) {
	c := Project(sampleTasks(), domain.FilterActive).Counts()
	assert.Equal(t, Counts{Total: 3, Active: 2, Completed: 1}, c)
}
