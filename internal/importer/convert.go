package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/homekeep/internal/domain"
	"github.com/google/uuid"
)

// Household holds the domain records produced from one household file, in
// insertion order (parents before children).
type Household struct {
	Rooms []*domain.Room
	Areas []*domain.Area
	Tasks []*domain.Task
}

// Convert turns a validated HouseholdFile into domain records with fresh IDs.
// Call Validate first; Convert only reports errors it cannot avoid.
func Convert(file *HouseholdFile, now time.Time) (*Household, error) {
	now = now.UTC()
	defaultFreq := domain.DefaultFrequencyDays
	if file.Defaults != nil {
		defaultFreq = domain.IntFromPtrWithDefault(defaultFreq, file.Defaults.FrequencyDays)
	}

	h := &Household{}
	for _, ri := range file.Rooms {
		room := &domain.Room{
			ID:        uuid.New().String(),
			Name:      strings.TrimSpace(ri.Name),
			CreatedAt: now,
			UpdatedAt: now,
		}
		h.Rooms = append(h.Rooms, room)

		for _, ai := range ri.Areas {
			area := &domain.Area{
				ID:        uuid.New().String(),
				RoomID:    room.ID,
				Name:      strings.TrimSpace(ai.Name),
				CreatedAt: now,
				UpdatedAt: now,
			}
			h.Areas = append(h.Areas, area)

			for _, ti := range ai.Tasks {
				task, err := convertTask(ti, area.ID, defaultFreq, now)
				if err != nil {
					return nil, fmt.Errorf("room %q area %q: %w", room.Name, area.Name, err)
				}
				h.Tasks = append(h.Tasks, task)
			}
		}
	}
	return h, nil
}

func convertTask(ti TaskImport, areaID string, defaultFreq int, now time.Time) (*domain.Task, error) {
	task := &domain.Task{
		ID:            uuid.New().String(),
		AreaID:        areaID,
		Name:          strings.TrimSpace(ti.Name),
		FrequencyDays: domain.IntFromPtrWithDefault(defaultFreq, ti.FrequencyDays),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if ti.LastCompleted != nil {
		completed, err := parseCompletion(*ti.LastCompleted)
		if err != nil {
			return nil, fmt.Errorf("task %q: %w", task.Name, err)
		}
		completed = completed.UTC()
		task.LastCompleted = &completed
	}

	if ti.ForcedStatus != nil {
		if err := task.Force(domain.Status(*ti.ForcedStatus), now); err != nil {
			return nil, fmt.Errorf("task %q: %w", task.Name, err)
		}
	}
	return task, nil
}
