// Package store owns the ordered task list and the active filter. Every
// mutation is written through the persister before it returns, so the
// snapshot on disk always matches what is rendered.
//
// A Store is driven from a single event loop and is not safe for concurrent
// use.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"todo-list/internal/announce"
	"todo-list/internal/domain"
	"todo-list/internal/render"
)

var (
	ErrEmptyText      = errors.New("task text cannot be empty")
	ErrTaskNotFound   = errors.New("task not found")
	ErrPendingRemoval = errors.New("task is being removed")
)

type Persister interface {
	Save(ctx context.Context, tasks []domain.Task) error
	Load(ctx context.Context) []domain.Task
	SaveTheme(ctx context.Context, mode domain.ThemeMode) error
	LoadTheme(ctx context.Context) domain.ThemeMode
}

type Store struct {
	persister Persister
	announcer announce.Announcer
	logger    *log.Logger

	tasks  []domain.Task
	filter domain.Filter
	theme  domain.ThemeMode
}

func New(persister Persister, announcer announce.Announcer, logger *log.Logger) *Store {
	if announcer == nil {
		announcer = announce.Discard
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Store{
		persister: persister,
		announcer: announcer,
		logger:    logger,
		tasks:     []domain.Task{},
		filter:    domain.FilterAll,
		theme:     domain.DefaultTheme,
	}
}

// Restore replaces the in-memory list with the stored snapshot, in stored
// order and without announcements. The filter is reset to all.
func (s *Store) Restore(ctx context.Context) {
	s.tasks = s.persister.Load(ctx)
	s.filter = domain.FilterAll
	s.theme = s.persister.LoadTheme(ctx)

	s.logger.Debug("restored", "tasks", len(s.tasks), "theme", s.theme)
}

// Add appends a new task. Whitespace-only text is rejected with ErrEmptyText
// and leaves the list untouched.
func (s *Store) Add(ctx context.Context, text string) (domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Task{}, ErrEmptyText
	}

	task := domain.NewTask(text)
	s.tasks = append(s.tasks, task)

	if err := s.save(ctx); err != nil {
		return task, err
	}

	s.announcer.Announce("Added task " + task.Text)
	return task, nil
}

// Toggle flips the completion flag of the task with id.
func (s *Store) Toggle(ctx context.Context, id string) (domain.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if s.tasks[i].PendingRemoval() {
		return s.tasks[i], fmt.Errorf("%w: %s", ErrPendingRemoval, id)
	}

	s.tasks[i].Completed = !s.tasks[i].Completed
	task := s.tasks[i]

	if err := s.save(ctx); err != nil {
		return task, err
	}

	state := "active"
	if task.Completed {
		state = "completed"
	}
	s.announcer.Announce(fmt.Sprintf("Marked '%s' %s", task.Text, state))

	return task, nil
}

// BeginDelete marks a task as pending removal. The task stays in the list,
// and in the snapshot, until FinalizeDelete. It returns false if the task
// was already pending, which callers treat as a disabled control.
func (s *Store) BeginDelete(ctx context.Context, id string) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if s.tasks[i].PendingRemoval() {
		return false, nil
	}

	s.tasks[i].State = domain.StatePendingRemoval
	return true, nil
}

// FinalizeDelete removes a task. Unknown ids are ignored so a late timer
// for an already removed task is harmless.
func (s *Store) FinalizeDelete(ctx context.Context, id string) error {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	task := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)

	if err := s.save(ctx); err != nil {
		return err
	}

	s.announcer.Announce("Deleted task " + task.Text)
	return nil
}

// Delete runs both removal phases back to back.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.BeginDelete(ctx, id); err != nil {
		return err
	}
	return s.FinalizeDelete(ctx, id)
}

// FlushPending finalizes every task still waiting for removal.
func (s *Store) FlushPending(ctx context.Context) error {
	var pending []string
	for _, t := range s.tasks {
		if t.PendingRemoval() {
			pending = append(pending, t.ID)
		}
	}

	for _, id := range pending {
		if err := s.FinalizeDelete(ctx, id); err != nil {
			return err
		}
	}

	return nil
}

// Import appends tasks after the current list with a single write. Ids
// already present are replaced with fresh ones. Blank tasks are skipped.
func (s *Store) Import(ctx context.Context, tasks []domain.Task) (int, error) {
	added := 0
	for _, t := range tasks {
		t.Text = strings.TrimSpace(t.Text)
		if t.ID == "" || s.indexOf(t.ID) >= 0 {
			t.ID = domain.NewTaskID()
		}
		if err := t.Validate(); err != nil {
			s.logger.Debug("skipping imported task", "err", err)
			continue
		}
		t.State = domain.StateActive
		s.tasks = append(s.tasks, t)
		added++
	}

	if added == 0 {
		return 0, nil
	}

	if err := s.save(ctx); err != nil {
		return added, err
	}

	s.announcer.Announce(fmt.Sprintf("Imported %d tasks", added))
	return added, nil
}

// SetFilter changes which tasks are visible. It is not persisted.
func (s *Store) SetFilter(f domain.Filter) {
	s.filter = f
}

func (s *Store) Filter() domain.Filter {
	return s.filter
}

// Tasks returns a copy of the ordered list.
func (s *Store) Tasks() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Len() int {
	return len(s.tasks)
}

func (s *Store) Get(id string) (domain.Task, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

func (s *Store) View() render.View {
	return render.Project(s.tasks, s.filter)
}

func (s *Store) Theme() domain.ThemeMode {
	return s.theme
}

func (s *Store) SetTheme(ctx context.Context, mode domain.ThemeMode) error {
	if err := s.persister.SaveTheme(ctx, mode); err != nil {
		return err
	}
	s.theme = mode
	return nil
}

func (s *Store) ToggleTheme(ctx context.Context) (domain.ThemeMode, error) {
	next := s.theme.Toggle()
	if err := s.SetTheme(ctx, next); err != nil {
		return s.theme, err
	}
	return next, nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) save(ctx context.Context) error {
	if err := s.persister.Save(ctx, s.tasks); err != nil {
		s.logger.Error("failed to persist tasks", "err", err)
		return fmt.Errorf("failed to persist tasks: %w", err)
	}
	return nil
}
