package punch

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/pkg/errors"

	"ponto/backend/foundation/web"
	"ponto/backend/internal/auth"
	"ponto/backend/internal/entity"
	"ponto/backend/internal/pkg/repository/postgresql"
	"ponto/backend/internal/service/timeclock"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetLast returns the most recent punch for a user. No punches yet comes
// back as timeclock.None with a nil time.
func (r Repository) GetLast(ctx context.Context, userID int) (timeclock.PunchType, *time.Time, error) {
	var detail entity.Punch

	err := r.NewSelect().
		Model(&detail).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("punched_at DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return timeclock.None, nil, nil
	}
	if err != nil {
		return timeclock.None, nil, web.NewRequestError(errors.Wrap(err, "selecting last punch"), http.StatusInternalServerError)
	}

	return timeclock.PunchType(*detail.Type), detail.PunchedAt, nil
}

// HasEntryToday reports whether the user already punched an entry within the
// current calendar day in the display timezone.
func (r Repository) HasEntryToday(ctx context.Context, userID int, now time.Time) (bool, error) {
	start, end := timeclock.DayBounds(now)

	count, err := r.NewSelect().
		Model((*entity.Punch)(nil)).
		Where("user_id = ? AND type = ? AND deleted_at IS NULL", userID, string(timeclock.Entry)).
		Where("punched_at BETWEEN ? AND ?", start, end).
		Count(ctx)
	if err != nil {
		return false, web.NewRequestError(errors.Wrap(err, "checking today's entry"), http.StatusInternalServerError)
	}

	return count > 0, nil
}

// Create validates a proposed punch against the sequencer and persists it
// with the server timestamp. Nothing is written when validation fails.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Type"); err != nil {
		return CreateResponse{}, err
	}

	proposed := timeclock.PunchType(*request.Type)
	now := time.Now()

	last, _, err := r.GetLast(ctx, claims.UserId)
	if err != nil {
		return CreateResponse{}, err
	}

	enteredToday, err := r.HasEntryToday(ctx, claims.UserId, now)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := timeclock.Validate(proposed, last, enteredToday); err != nil {
		return CreateResponse{}, web.NewRequestError(err, http.StatusBadRequest)
	}

	var response CreateResponse
	response.UserID = claims.UserId
	response.Type = string(proposed)
	response.PunchedAt = now
	response.CreatedAt = now
	response.CreatedBy = claims.UserId

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating punch"), http.StatusBadRequest)
	}

	response.NextExpected = string(timeclock.NextExpected(proposed))

	return response, nil
}

// GetStatus composes the last punch, next expected type and entered-today
// flag for the authenticated user.
func (r Repository) GetStatus(ctx context.Context) (StatusResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return StatusResponse{}, err
	}

	last, lastTime, err := r.GetLast(ctx, claims.UserId)
	if err != nil {
		return StatusResponse{}, err
	}

	enteredToday, err := r.HasEntryToday(ctx, claims.UserId, time.Now())
	if err != nil {
		return StatusResponse{}, err
	}

	return StatusResponse{
		LastType:     string(last),
		LastTime:     lastTime,
		NextExpected: string(timeclock.NextExpected(last)),
		EnteredToday: enteredToday,
	}, nil
}

// GetHistory returns a user's punches within an inclusive local-day range,
// sorted by timestamp ascending. Employees only read their own history;
// admins may pass any user id in the filter.
func (r Repository) GetHistory(ctx context.Context, filter Filter) ([]timeclock.Punch, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, err
	}

	userID := claims.UserId
	if filter.UserID != nil && *filter.UserID != claims.UserId {
		if claims.Role != auth.RoleAdmin {
			return nil, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusForbidden)
		}
		userID = *filter.UserID
	}

	q := r.NewSelect().
		Model((*entity.Punch)(nil)).
		Column("id", "user_id", "type", "punched_at").
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("punched_at ASC")

	if filter.From != nil {
		from, err := time.ParseInLocation("2006-01-02", *filter.From, timeclock.Location)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "parsing from date"), http.StatusBadRequest)
		}
		start, _ := timeclock.DayBounds(from)
		q = q.Where("punched_at >= ?", start)
	}

	if filter.To != nil {
		to, err := time.ParseInLocation("2006-01-02", *filter.To, timeclock.Location)
		if err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "parsing to date"), http.StatusBadRequest)
		}
		_, end := timeclock.DayBounds(to)
		q = q.Where("punched_at <= ?", end)
	}

	var rows []entity.Punch
	if err := q.Scan(ctx, &rows); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting punch history"), http.StatusInternalServerError)
	}

	list := make([]timeclock.Punch, 0, len(rows))
	for _, row := range rows {
		list = append(list, timeclock.Punch{
			ID:     row.ID,
			UserID: *row.UserID,
			Type:   timeclock.PunchType(*row.Type),
			Time:   *row.PunchedAt,
		})
	}

	return list, nil
}

// UpdateColumns is the admin correction path: new local date/time and type
// for an existing record. Input is validated before any write.
func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID", "Date", "Time", "Type"); err != nil {
		return err
	}

	if !timeclock.Valid(timeclock.PunchType(request.Type)) {
		return web.NewRequestError(errors.Errorf("unknown punch type %q", request.Type), http.StatusBadRequest)
	}

	layout := "2006-01-02T15:04"
	if len(request.Time) == len("15:04:05") {
		layout = "2006-01-02T15:04:05"
	}
	punchedAt, err := time.ParseInLocation(layout, request.Date+"T"+request.Time, timeclock.Location)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "parsing date or time"), http.StatusBadRequest)
	}

	q := r.NewUpdate().Table("punches").Where("deleted_at IS NULL AND id = ?", request.ID)
	q.Set("type = ?", request.Type)
	q.Set("punched_at = ?", punchedAt)
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating punch"), http.StatusBadRequest)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "checking updated rows"), http.StatusInternalServerError)
	}
	if affected == 0 {
		return web.NewRequestError(errors.New("punch not found"), http.StatusNotFound)
	}

	return nil
}

// BuildHistory renders grouped punches into the wire shape shared by the
// JSON history endpoint and the report exporters.
func BuildHistory(groups []timeclock.DayGroup) HistoryResponse {
	days := make([]HistoryDay, 0, len(groups))
	for _, g := range groups {
		records := make([]HistoryRecord, 0, len(g.Records))
		for _, rec := range g.Records {
			records = append(records, HistoryRecord{
				ID:        rec.ID,
				Type:      string(rec.Type),
				Time:      rec.Time.In(timeclock.Location).Format("15:04"),
				Timestamp: rec.Time,
			})
		}
		days = append(days, HistoryDay{
			Date:       &date.Date{Time: g.Date},
			Records:    records,
			DailyTotal: timeclock.FormatDuration(g.Total),
		})
	}

	return HistoryResponse{
		Days:       days,
		GrandTotal: timeclock.FormatDuration(timeclock.PeriodTotal(groups)),
	}
}
