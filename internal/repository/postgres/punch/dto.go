package punch

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	UserID *int
	From   *string // 2006-01-02 in the display timezone
	To     *string
}

type CreateRequest struct {
	Type *string `json:"type" form:"type"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:punches"`

	ID           int       `json:"id" bun:"-"`
	UserID       int       `json:"user_id" bun:"user_id"`
	Type         string    `json:"type" bun:"type"`
	PunchedAt    time.Time `json:"punched_at" bun:"punched_at"`
	NextExpected string    `json:"next_expected" bun:"-"`
	CreatedAt    time.Time `json:"-" bun:"created_at"`
	CreatedBy    int       `json:"-" bun:"created_by"`
}

// StatusResponse drives the punch screen: which button is enabled next.
type StatusResponse struct {
	LastType     string     `json:"last_type,omitempty"`
	LastTime     *time.Time `json:"last_time,omitempty"`
	NextExpected string     `json:"next_expected"`
	EnteredToday bool       `json:"entered_today"`
}

type UpdateRequest struct {
	ID   int    `json:"id" form:"id"`
	Date string `json:"date" form:"date"` // 2006-01-02, display timezone
	Time string `json:"time" form:"time"` // 15:04 or 15:04:05
	Type string `json:"type" form:"type"`
}

type HistoryRecord struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Time      string    `json:"time"` // HH:MM in the display timezone
	Timestamp time.Time `json:"timestamp"`
}

type HistoryDay struct {
	Date       *date.Date      `json:"date"`
	Records    []HistoryRecord `json:"records"`
	DailyTotal string          `json:"daily_total"`
}

type HistoryResponse struct {
	Days       []HistoryDay `json:"days"`
	GrandTotal string       `json:"grand_total"`
}
