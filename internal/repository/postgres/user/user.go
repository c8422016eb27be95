package user

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"ponto/backend/foundation/web"
	"ponto/backend/internal/auth"
	"ponto/backend/internal/entity"
	"ponto/backend/internal/pkg/repository/postgresql"
	"ponto/backend/internal/repository/postgres"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetByEmployeeID(ctx context.Context, employeeID string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).Where("employee_id = ? AND deleted_at IS NULL", employeeID).Scan(ctx)
	if err != nil {
		return entity.User{}, &web.Error{
			Err:    errors.New("employee not found"),
			Status: http.StatusUnauthorized,
		}
	}

	return detail, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				u.deleted_at IS NULL
			`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)

		whereQuery += fmt.Sprintf(` AND
		(u.employee_id ilike '%s' OR u.name ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}

	orderQuery := "ORDER BY u.name asc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}

	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.employee_id,
			u.name,
			u.email,
			u.role
		FROM users u
		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.EmployeeID,
			&detail.Name,
			&detail.Email,
			&detail.Role); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user list"), http.StatusBadRequest)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(u.id)
		FROM users u
			%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	// Employees may only look themselves up; admins anyone.
	if claims.Role != auth.RoleAdmin && claims.UserId != id {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
	}

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.employee_id,
			u.name,
			u.email,
			u.role
		FROM users u
		WHERE u.deleted_at IS NULL AND u.id = %d
	`, id)

	var detail GetDetailByIdResponse

	err = r.QueryRowContext(ctx, query).Scan(
		&detail.ID,
		&detail.EmployeeID,
		&detail.Name,
		&detail.Email,
		&detail.Role,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user detail"), http.StatusBadRequest)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "EmployeeID", "Password", "Name"); err != nil {
		return CreateResponse{}, err
	}

	if err := r.checkEmployeeIDFree(ctx, *request.EmployeeID, 0); err != nil {
		return CreateResponse{}, err
	}

	role := auth.RoleEmployee
	if request.Role != nil {
		role = strings.ToLower(*request.Role)
		if role != auth.RoleEmployee && role != auth.RoleAdmin {
			return CreateResponse{}, web.NewRequestError(errors.New("incorrect role. role should be employee or admin"), http.StatusBadRequest)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashedPassword := string(hash)

	var response CreateResponse
	response.Role = &role
	response.Name = request.Name
	response.EmployeeID = request.EmployeeID
	response.Password = &hashedPassword
	response.Email = request.Email
	response.CreatedAt = time.Now()
	response.CreatedBy = &claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
	}

	response.Password = nil

	return response, nil
}

// Register is the self-service sign-up path. There are no claims yet and the
// role is always employee.
func (r Repository) Register(ctx context.Context, request RegisterRequest) (CreateResponse, error) {
	if err := r.ValidateStruct(&request, "EmployeeID", "Password", "Name"); err != nil {
		return CreateResponse{}, err
	}

	if err := r.checkEmployeeIDFree(ctx, *request.EmployeeID, 0); err != nil {
		return CreateResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashedPassword := string(hash)
	role := auth.RoleEmployee

	var response CreateResponse
	response.Role = &role
	response.Name = request.Name
	response.EmployeeID = request.EmployeeID
	response.Password = &hashedPassword
	response.Email = request.Email
	response.CreatedAt = time.Now()

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "registering user"), http.StatusBadRequest)
	}

	response.Password = nil

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.EmployeeID != nil {
		if err := r.checkEmployeeIDFree(ctx, *request.EmployeeID, request.ID); err != nil {
			return err
		}
		q.Set("employee_id = ?", request.EmployeeID)
	}

	if request.Role != nil {
		role := strings.ToLower(*request.Role)
		if role != auth.RoleEmployee && role != auth.RoleAdmin {
			return web.NewRequestError(errors.New("incorrect role. role should be employee or admin"), http.StatusBadRequest)
		}
		q.Set("role = ?", role)
	}

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Email != nil {
		q.Set("email = ?", request.Email)
	}
	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusBadRequest)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}
	return r.DeleteRow(ctx, "users", id)
}

func (r Repository) checkEmployeeIDFree(ctx context.Context, employeeID string, excludeID int) error {
	taken := true
	err := r.QueryRowContext(ctx,
		"SELECT CASE WHEN (SELECT id FROM users WHERE employee_id = $1 AND deleted_at IS NULL AND id != $2) IS NOT NULL THEN true ELSE false END",
		employeeID, excludeID).Scan(&taken)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "employee_id check"), http.StatusInternalServerError)
	}
	if taken {
		return web.NewRequestError(errors.New("employee_id is used"), http.StatusBadRequest)
	}
	return nil
}
