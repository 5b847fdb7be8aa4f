package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-list/internal/domain"
)

func TestGetCheckbox(t *testing.T) {
	assert.Equal(t, "[x]", GetCheckbox(true))
	assert.Equal(t, "[ ]", GetCheckbox(false))
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "1 task, 0 completed", Summary(1, 0))
	assert.Equal(t, "3 tasks, 2 completed", Summary(3, 2))
	assert.Equal(t, "0 tasks, 0 completed", Summary(0, 0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ünï...", Truncate("ünïcödé text", 6))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "unchanged", Truncate("unchanged", 0))
}

func TestFilterLabel(t *testing.T) {
	assert.Equal(t, "All", FilterLabel(domain.FilterAll))
	assert.Equal(t, "Active", FilterLabel(domain.FilterActive))
	assert.Equal(t, "Completed", FilterLabel(domain.FilterCompleted))
}
