package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type Punch struct {
	bun.BaseModel `bun:"table:punches"`

	BasicEntity
	UserID    *int       `json:"user_id"    bun:"user_id"`
	Type      *string    `json:"type"       bun:"type"`
	PunchedAt *time.Time `json:"punched_at" bun:"punched_at"`
}
