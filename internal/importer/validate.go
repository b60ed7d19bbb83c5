package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/homekeep/internal/domain"
)

// Validate checks a household file before conversion and returns every
// problem found, not just the first.
func Validate(file *HouseholdFile) []error {
	var errs []error

	if file.Defaults != nil && file.Defaults.FrequencyDays != nil && *file.Defaults.FrequencyDays <= 0 {
		errs = append(errs, fmt.Errorf("defaults.frequency_days must be positive, got %d", *file.Defaults.FrequencyDays))
	}

	if len(file.Rooms) == 0 {
		errs = append(errs, fmt.Errorf("rooms: at least one room is required"))
	}

	roomNames := make(map[string]bool, len(file.Rooms))
	for i, room := range file.Rooms {
		prefix := fmt.Sprintf("rooms[%d]", i)
		errs = append(errs, validateName(prefix, room.Name, roomNames)...)

		areaNames := make(map[string]bool, len(room.Areas))
		for j, area := range room.Areas {
			areaPrefix := fmt.Sprintf("%s.areas[%d]", prefix, j)
			errs = append(errs, validateName(areaPrefix, area.Name, areaNames)...)

			for k, task := range area.Tasks {
				errs = append(errs, validateTask(fmt.Sprintf("%s.tasks[%d]", areaPrefix, k), &task)...)
			}
		}
	}

	return errs
}

func validateName(prefix, name string, seen map[string]bool) []error {
	name = strings.TrimSpace(name)
	if name == "" {
		return []error{fmt.Errorf("%s.name is required", prefix)}
	}
	key := strings.ToLower(name)
	if seen[key] {
		return []error{fmt.Errorf("%s.name: duplicate name %q", prefix, name)}
	}
	seen[key] = true
	return nil
}

func validateTask(prefix string, t *TaskImport) []error {
	var errs []error

	if strings.TrimSpace(t.Name) == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", prefix))
	}
	if t.FrequencyDays != nil && *t.FrequencyDays <= 0 {
		errs = append(errs, fmt.Errorf("%s.frequency_days must be positive, got %d", prefix, *t.FrequencyDays))
	}
	if t.LastCompleted != nil {
		if _, err := parseCompletion(*t.LastCompleted); err != nil {
			errs = append(errs, fmt.Errorf("%s.last_completed: %w", prefix, err))
		}
	}
	if t.ForcedStatus != nil {
		if _, err := domain.ParseForcedStatus(*t.ForcedStatus); err != nil {
			errs = append(errs, fmt.Errorf("%s.forced_status: %w", prefix, err))
		}
	}

	return errs
}

// parseCompletion accepts a bare date (local midnight) or an RFC3339 instant.
func parseCompletion(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(time.DateOnly, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q (expected YYYY-MM-DD or RFC3339)", s)
}
