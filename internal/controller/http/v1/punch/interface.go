package punch

import (
	"context"

	"ponto/backend/internal/repository/postgres/punch"
	"ponto/backend/internal/repository/postgres/user"
	"ponto/backend/internal/service/timeclock"
)

type Punch interface {
	Create(ctx context.Context, request punch.CreateRequest) (punch.CreateResponse, error)
	GetStatus(ctx context.Context) (punch.StatusResponse, error)
	GetHistory(ctx context.Context, filter punch.Filter) ([]timeclock.Punch, error)
	UpdateColumns(ctx context.Context, request punch.UpdateRequest) error
}

type User interface {
	GetDetailById(ctx context.Context, id int) (user.GetDetailByIdResponse, error)
}

type StatusCache interface {
	Get(ctx context.Context, userID int) (punch.StatusResponse, bool)
	Set(ctx context.Context, userID int, status punch.StatusResponse)
	Invalidate(ctx context.Context, userID int)
}
