package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todo-list/internal/domain"
	"todo-list/internal/fuzzy"
	"todo-list/internal/store"
)

var errAmbiguousRef = errors.New("ambiguous task reference")

// minimum length for an id prefix, shorter refs only match by text
const minIDPrefix = 4

// resolveRef finds a task by its 1-based list position, an id prefix, or a
// fuzzy match on its text, in that order.
func resolveRef(s *store.Store, ref string) (domain.Task, error) {
	ref = strings.TrimSpace(ref)
	tasks := s.Tasks()

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(tasks) {
			return domain.Task{}, fmt.Errorf("%w: no task at position %d", store.ErrTaskNotFound, n)
		}
		return tasks[n-1], nil
	}

	if len(ref) >= minIDPrefix {
		var matches []domain.Task
		for _, t := range tasks {
			if strings.HasPrefix(t.ID, strings.ToLower(ref)) {
				matches = append(matches, t)
			}
		}
		switch len(matches) {
		case 1:
			return matches[0], nil
		case 0:
		default:
			return domain.Task{}, fmt.Errorf("%w: %q matches %d ids", errAmbiguousRef, ref, len(matches))
		}
	}

	texts := make([]string, len(tasks))
	for i, t := range tasks {
		texts[i] = t.Text
	}

	best, ok := fuzzy.Best(ref, texts, fuzzy.DefaultThreshold)
	if !ok {
		if best.Score > 0 {
			return domain.Task{}, fmt.Errorf("%w: %q matches more than one task", errAmbiguousRef, ref)
		}
		return domain.Task{}, fmt.Errorf("%w: %q", store.ErrTaskNotFound, ref)
	}

	return tasks[best.Index], nil
}
