package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// task lifecycle state
type TaskState string

const (
	StateActive         TaskState = "active"
	StatePendingRemoval TaskState = "pending-removal"
)

type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	State     TaskState `json:"-"`
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("task text cannot be empty")
	}

	if t.ID == "" {
		return errors.New("task id cannot be empty")
	}

	return nil
}

// create a new, not yet completed task with a fresh id
func NewTask(text string) Task {
	return Task{
		ID:    NewTaskID(),
		Text:  strings.TrimSpace(text),
		State: StateActive,
	}
}

func NewTaskID() string {
	return uuid.NewString()
}

// reports whether the task is waiting for its delayed removal
func (t Task) PendingRemoval() bool {
	return t.State == StatePendingRemoval
}

// first eight characters of the id, enough to reference a task from the CLI
func (t Task) ShortID() string {
	if len(t.ID) <= 8 {
		return t.ID
	}
	return t.ID[:8]
}
