package user

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type SignInRequest struct {
	EmployeeID string `json:"employee_id" form:"employee_id"`
	Password   string `json:"password" form:"password"`
}

type AuthClaims struct {
	ID   int
	Role string
	Type string
}

type RefreshTokenRequest struct {
	AccessToken  string `json:"access_token" form:"access_token"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type GetListResponse struct {
	ID         int     `json:"id"`
	EmployeeID *string `json:"employee_id"`
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
}

type GetDetailByIdResponse struct {
	ID         int     `json:"id"`
	EmployeeID *string `json:"employee_id"`
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
}

type CreateRequest struct {
	EmployeeID *string `json:"employee_id" form:"employee_id"`
	Password   *string `json:"password"    form:"password"`
	Role       *string `json:"role"        form:"role"`
	Name       *string `json:"name"        form:"name"`
	Email      *string `json:"email"       form:"email"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID         int       `json:"id" bun:"-"`
	EmployeeID *string   `json:"employee_id" bun:"employee_id"`
	Password   *string   `json:"-"           bun:"password"`
	Role       *string   `json:"role"        bun:"role"`
	Name       *string   `json:"name"        bun:"name"`
	Email      *string   `json:"email"       bun:"email"`
	CreatedAt  time.Time `json:"-"           bun:"created_at"`
	CreatedBy  *int      `json:"-"           bun:"created_by"`
}

// RegisterRequest is the self-service sign-up payload. Role is not part of
// it: registrations are always plain employees.
type RegisterRequest struct {
	EmployeeID *string `json:"employee_id" form:"employee_id"`
	Password   *string `json:"password"    form:"password"`
	Name       *string `json:"name"        form:"name"`
	Email      *string `json:"email"       form:"email"`
}

type UpdateRequest struct {
	ID         int     `json:"id" form:"id"`
	EmployeeID *string `json:"employee_id" form:"employee_id"`
	Password   *string `json:"password"    form:"password"`
	Role       *string `json:"role"        form:"role"`
	Name       *string `json:"name"        form:"name"`
	Email      *string `json:"email"       form:"email"`
}
