package display

import (
	"fmt"

	"todo-list/internal/domain"
)

func GetCheckbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func GetStatusIcon(completed bool) string {
	if completed {
		return "✓"
	}
	return "○"
}

// marker for the delete control; dimmed once the row is being removed
func GetDeleteMarker(removing bool) string {
	if removing {
		return "…"
	}
	return "×"
}

// "3 tasks, 1 completed"
func Summary(total, completed int) string {
	word := "tasks"
	if total == 1 {
		word = "task"
	}
	return fmt.Sprintf("%d %s, %d completed", total, word, completed)
}

func FilterLabel(f domain.Filter) string {
	return f.Label()
}

// shortens s to at most width runes, ending in "..."
func Truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
