// Package render projects the task list onto rows. It holds no state: the
// same tasks and filter always produce the same view.
package render

import "todo-list/internal/domain"

type Row struct {
	ID        string
	Text      string
	Completed bool
	Visible   bool
	// waiting for its delayed removal; the delete control is disabled
	Removing bool
}

type View struct {
	Filter domain.Filter
	Rows   []Row
	// true iff no tasks exist at all, regardless of the filter
	ShowEmptyState bool
}

type Counts struct {
	Total     int
	Active    int
	Completed int
}

func Visible(task domain.Task, f domain.Filter) bool {
	return f.Matches(task.Completed)
}

// Project builds one row per task in list order. Filtering only toggles
// Row.Visible; rows are never dropped or reordered.
func Project(tasks []domain.Task, f domain.Filter) View {
	rows := make([]Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, Row{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Visible:   Visible(t, f),
			Removing:  t.PendingRemoval(),
		})
	}

	return View{
		Filter:         f,
		Rows:           rows,
		ShowEmptyState: len(tasks) == 0,
	}
}

// rows shown under the view's filter
func (v View) Visible() []Row {
	visible := make([]Row, 0, len(v.Rows))
	for _, r := range v.Rows {
		if r.Visible {
			visible = append(visible, r)
		}
	}
	return visible
}

// texts of the visible rows, in order
func (v View) VisibleTexts() []string {
	texts := make([]string, 0, len(v.Rows))
	for _, r := range v.Visible() {
		texts = append(texts, r.Text)
	}
	return texts
}

func (v View) Counts() Counts {
	var c Counts
	for _, r := range v.Rows {
		c.Total++
		if r.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}
