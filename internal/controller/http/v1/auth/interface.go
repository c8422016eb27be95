package auth

import (
	"context"

	"ponto/backend/internal/entity"
	"ponto/backend/internal/repository/postgres/user"
)

type User interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (entity.User, error)
	Register(ctx context.Context, request user.RegisterRequest) (user.CreateResponse, error)
}
