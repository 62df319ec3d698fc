package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEntry is a persisted activity-log row.
type ActivityEntry struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
