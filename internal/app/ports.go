package app

import (
	"context"
)

type StatusUseCase interface {
	GetStatus(ctx context.Context, req StatusRequest) (*StatusResponse, error)
}

// ImportResult summarises a household import.
type ImportResult struct {
	Files     []string
	RoomCount int
	AreaCount int
	TaskCount int
}

type ImportHouseholdUseCase interface {
	Import(ctx context.Context, patterns ...string) (*ImportResult, error)
}
