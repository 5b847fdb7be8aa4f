// Package persist round-trips the task list and the theme preference through
// a flat key-value store. Reads fail soft: anything missing or unreadable is
// treated as absent.
package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"todo-list/internal/domain"
	"todo-list/internal/repository"
)

const (
	TasksKey = "tasks"
	ThemeKey = "theme"
)

// one stored task; id is optional so snapshots without ids still load
type Record struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type Adapter struct {
	kv     repository.KVStore
	logger *log.Logger
}

func NewAdapter(kv repository.KVStore, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.Default()
	}
	return &Adapter{kv: kv, logger: logger}
}

// overwrites the snapshot with the full ordered list
func (a *Adapter) Save(ctx context.Context, tasks []domain.Task) error {
	data, err := Encode(tasks)
	if err != nil {
		return err
	}

	if err := a.kv.Set(ctx, TasksKey, data); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}

	a.logger.Debug("saved snapshot", "tasks", len(tasks))
	return nil
}

// Load never fails: a missing, unreadable, or corrupted snapshot yields an
// empty list.
func (a *Adapter) Load(ctx context.Context) []domain.Task {
	raw, ok, err := a.kv.Get(ctx, TasksKey)
	if err != nil {
		a.logger.Warn("could not read snapshot, starting empty", "err", err)
		return []domain.Task{}
	}
	if !ok {
		return []domain.Task{}
	}

	tasks, err := Decode(raw)
	if err != nil {
		a.logger.Warn("discarding unreadable snapshot", "err", err)
		return []domain.Task{}
	}

	return tasks
}

func (a *Adapter) SaveTheme(ctx context.Context, mode domain.ThemeMode) error {
	if _, err := domain.ParseThemeMode(string(mode)); err != nil {
		return err
	}

	if err := a.kv.Set(ctx, ThemeKey, string(mode)); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	return nil
}

// stored theme, light when missing or unknown
func (a *Adapter) LoadTheme(ctx context.Context) domain.ThemeMode {
	raw, ok, err := a.kv.Get(ctx, ThemeKey)
	if err != nil {
		a.logger.Warn("could not read theme, using default", "err", err)
		return domain.DefaultTheme
	}
	if !ok {
		return domain.DefaultTheme
	}

	mode, err := domain.ParseThemeMode(raw)
	if err != nil {
		a.logger.Warn("ignoring stored theme", "value", raw)
		return domain.DefaultTheme
	}

	return mode
}

// serializes tasks as the snapshot JSON array
func Encode(tasks []domain.Task) (string, error) {
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, Record{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
		})
	}

	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tasks: %w", err)
	}

	return string(data), nil
}

// Decode parses a snapshot. Records with blank text are dropped, records
// without an id get a fresh one, and a repeated id is replaced so ids stay
// unique within the list.
func Decode(raw string) ([]domain.Task, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return []domain.Task{}, nil
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tasks: %w", err)
	}

	return FromRecords(records), nil
}

func FromRecords(records []Record) []domain.Task {
	tasks := make([]domain.Task, 0, len(records))
	seen := make(map[string]bool, len(records))

	for _, r := range records {
		text := strings.TrimSpace(r.Text)
		if text == "" {
			continue
		}

		id := r.ID
		if id == "" || seen[id] {
			id = domain.NewTaskID()
		}
		seen[id] = true

		tasks = append(tasks, domain.Task{
			ID:        id,
			Text:      text,
			Completed: r.Completed,
			State:     domain.StateActive,
		})
	}

	return tasks
}
