package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/homekeep/internal/domain"
)

// ErrInvalidInput marks errors caused by bad caller input rather than storage.
var ErrInvalidInput = errors.New("invalid input")

func cleanName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%s name is required: %w", kind, ErrInvalidInput)
	}
	return name, nil
}

func validateTask(t *domain.Task) error {
	name, err := cleanName("task", t.Name)
	if err != nil {
		return err
	}
	t.Name = name
	if t.AreaID == "" {
		return fmt.Errorf("task %q has no area: %w", t.Name, ErrInvalidInput)
	}
	if t.FrequencyDays < 0 {
		return fmt.Errorf("task %q frequency must be positive, got %d: %w", t.Name, t.FrequencyDays, ErrInvalidInput)
	}
	if t.ForcedIncomplete && t.ForcedStatus != nil && !t.ForcedStatus.IsForceable() {
		return fmt.Errorf("task %q cannot be forced into %q: %w", t.Name, *t.ForcedStatus, ErrInvalidInput)
	}
	return nil
}

// filterRoomsByScope returns only rooms whose ID is in scope, plus the scope
// IDs that matched nothing. If scope is empty, all rooms are returned.
func filterRoomsByScope(rooms []*domain.Room, scope []string) ([]*domain.Room, []string) {
	if len(scope) == 0 {
		return rooms, nil
	}
	scopeSet := make(map[string]bool, len(scope))
	for _, id := range scope {
		scopeSet[id] = true
	}
	var filtered []*domain.Room
	for _, r := range rooms {
		if scopeSet[r.ID] {
			filtered = append(filtered, r)
			delete(scopeSet, r.ID)
		}
	}
	var missing []string
	for _, id := range scope {
		if scopeSet[id] {
			missing = append(missing, id)
			delete(scopeSet, id)
		}
	}
	return filtered, missing
}
