package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	task := NewTask("  Buy milk  ")

	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Completed)
	assert.Equal(t, StateActive, task.State)
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.PendingRemoval())
}

func TestNewTask_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := NewTask("same text")
		require.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestTaskValidate(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid task",
			task:    Task{ID: "abc", Text: "Valid"},
			wantErr: false,
		},
		{
			name:    "empty text",
			task:    Task{ID: "abc", Text: ""},
			wantErr: true,
			errMsg:  "task text cannot be empty",
		},
		{
			name:    "whitespace only text",
			task:    Task{ID: "abc", Text: " \t "},
			wantErr: true,
			errMsg:  "task text cannot be empty",
		},
		{
			name:    "missing id",
			task:    Task{Text: "Valid"},
			wantErr: true,
			errMsg:  "task id cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskShortID(t *testing.T) {
	assert.Equal(t, "abc", Task{ID: "abc"}.ShortID())
	assert.Equal(t, "12345678", Task{ID: "1234567890"}.ShortID())
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{in: "all", want: FilterAll},
		{in: "Active", want: FilterActive},
		{in: " completed ", want: FilterCompleted},
		{in: "", want: FilterAll},
		{in: "done", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFilter(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterMatches(t *testing.T) {
	assert.True(t, FilterAll.Matches(true))
	assert.True(t, FilterAll.Matches(false))
	assert.True(t, FilterActive.Matches(false))
	assert.False(t, FilterActive.Matches(true))
	assert.True(t, FilterCompleted.Matches(true))
	assert.False(t, FilterCompleted.Matches(false))
}

func TestFilterNext(t *testing.T) {
	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterCompleted, FilterActive.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
	assert.Equal(t, FilterAll, Filter("bogus").Next())
}

func TestThemeMode(t *testing.T) {
	assert.Equal(t, ThemeLight, DefaultTheme)
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.True(t, ThemeDark.IsDark())

	mode, err := ParseThemeMode("DARK")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, mode)

	_, err = ParseThemeMode("solarized")
	assert.ErrorIs(t, err, ErrInvalidTheme)
}
