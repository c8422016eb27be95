package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	EmployeeID *string `json:"employee_id" bun:"employee_id"`
	Name       *string `json:"name"        bun:"name"`
	Email      *string `json:"email"       bun:"email"`
	Password   *string `json:"password"    bun:"password"`
	Role       *string `json:"role"        bun:"role"`
}
