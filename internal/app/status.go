package app

import (
	"time"

	"github.com/alexanderramin/homekeep/internal/domain"
)

type StatusRequest struct {
	// Now overrides the engine clock for the whole request.
	Now *time.Time
	// RoomScope limits the report to these room IDs. Empty means every room.
	RoomScope    []string
	IncludeTasks bool
}

func NewStatusRequest() StatusRequest {
	return StatusRequest{IncludeTasks: true}
}

type TaskStatusView struct {
	TaskID         string
	TaskName       string
	Status         domain.Status
	Forced         bool
	FrequencyDays  int
	LastCompleted  *time.Time
	DaysSince      *int
	PercentElapsed *float64
	NextDue        *time.Time
}

type AreaStatusView struct {
	AreaID    string
	AreaName  string
	Status    domain.Status
	Score     float64
	HasSignal bool
	TaskCount int
	Counts    map[domain.Status]int
	Tasks     []TaskStatusView
}

type RoomStatusView struct {
	RoomID    string
	RoomName  string
	Status    domain.Status
	Score     float64
	HasSignal bool
	Areas     []AreaStatusView
}

type StatusSummary struct {
	GeneratedAt   time.Time
	RoomCount     int
	AreaCount     int
	TaskCount     int
	RoomsByStatus map[domain.Status]int
	TasksByStatus map[domain.Status]int
}

type StatusResponse struct {
	Summary StatusSummary
	Rooms   []RoomStatusView
}

type StatusErrorCode string

const (
	StatusErrInvalidScope StatusErrorCode = "INVALID_SCOPE"
)

type StatusError struct {
	Code    StatusErrorCode
	Message string
}

func (e *StatusError) Error() string {
	return string(e.Code) + ": " + e.Message
}
