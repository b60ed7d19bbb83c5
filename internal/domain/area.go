package domain

import "time"

// Area groups tasks inside a room. RoomID is a non-owning back-reference.
type Area struct {
	ID        string
	RoomID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
