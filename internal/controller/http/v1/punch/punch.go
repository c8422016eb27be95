package punch

import (
	"fmt"
	"net/http"
	"reflect"

	"ponto/backend/foundation/web"
	"ponto/backend/internal/auth"
	"ponto/backend/internal/repository/postgres/punch"
	"ponto/backend/internal/service/report"
	"ponto/backend/internal/service/timeclock"
)

type Controller struct {
	punch Punch
	user  User
	cache StatusCache
}

func NewController(punch Punch, user User, cache StatusCache) *Controller {
	return &Controller{punch: punch, user: user, cache: cache}
}

// Create registers a punch for the authenticated user. The record is only
// persisted after the sequencer accepts it.
func (uc Controller) Create(c *web.Context) error {
	var request punch.CreateRequest
	if err := c.BindFunc(&request, "Type"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.punch.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	uc.cache.Invalidate(c.Ctx, response.UserID)

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetStatus(c *web.Context) error {
	claims, err := auth.GetClaims(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	if status, ok := uc.cache.Get(c.Ctx, claims.UserId); ok {
		return c.Respond(map[string]interface{}{
			"data":   status,
			"status": true,
		}, http.StatusOK)
	}

	status, err := uc.punch.GetStatus(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	uc.cache.Set(c.Ctx, claims.UserId, status)

	return c.Respond(map[string]interface{}{
		"data":   status,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetHistory(c *web.Context) error {
	filter, err := historyFilter(c)
	if err != nil {
		return c.RespondError(err)
	}

	records, err := uc.punch.GetHistory(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	history := punch.BuildHistory(timeclock.GroupByDay(records))

	return c.Respond(map[string]interface{}{
		"data":   history,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request punch.UpdateRequest
	if err := c.BindFunc(&request, "Date", "Time", "Type"); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	if err := uc.punch.UpdateColumns(c.Ctx, request); err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// ExportPDF streams the punch report for one employee over a date range.
func (uc Controller) ExportPDF(c *web.Context) error {
	employee, history, err := uc.reportData(c)
	if err != nil {
		return c.RespondError(err)
	}

	data, err := report.PDF(employee, history)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.PDFFilename(employee.Name)))
	c.Data(http.StatusOK, "application/pdf", data)
	return nil
}

// ExportExcel streams the same range as an xlsx workbook.
func (uc Controller) ExportExcel(c *web.Context) error {
	employee, history, err := uc.reportData(c)
	if err != nil {
		return c.RespondError(err)
	}

	data, err := report.Excel(employee, history)
	if err != nil {
		return c.RespondError(err)
	}

	c.Header("Content-Disposition", `attachment; filename="relatorio_ponto.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	return nil
}

func (uc Controller) reportData(c *web.Context) (report.EmployeeInfo, punch.HistoryResponse, error) {
	filter, err := historyFilter(c)
	if err != nil {
		return report.EmployeeInfo{}, punch.HistoryResponse{}, err
	}

	claims, err := auth.GetClaims(c.Ctx)
	if err != nil {
		return report.EmployeeInfo{}, punch.HistoryResponse{}, err
	}

	userID := claims.UserId
	if filter.UserID != nil {
		userID = *filter.UserID
	}

	detail, err := uc.user.GetDetailById(c.Ctx, userID)
	if err != nil {
		return report.EmployeeInfo{}, punch.HistoryResponse{}, err
	}

	records, err := uc.punch.GetHistory(c.Ctx, filter)
	if err != nil {
		return report.EmployeeInfo{}, punch.HistoryResponse{}, err
	}

	employee := report.EmployeeInfo{}
	if detail.EmployeeID != nil {
		employee.EmployeeID = *detail.EmployeeID
	}
	if detail.Name != nil {
		employee.Name = *detail.Name
	}
	if detail.Email != nil {
		employee.Email = *detail.Email
	}

	return employee, punch.BuildHistory(timeclock.GroupByDay(records)), nil
}

func historyFilter(c *web.Context) (punch.Filter, error) {
	var filter punch.Filter

	if userID, ok := c.GetQueryFunc(reflect.Int, "user_id").(*int); ok {
		filter.UserID = userID
	}
	if from, ok := c.GetQueryFunc(reflect.String, "from").(*string); ok {
		filter.From = from
	}
	if to, ok := c.GetQueryFunc(reflect.String, "to").(*string); ok {
		filter.To = to
	}

	if err := c.ValidQuery(); err != nil {
		return punch.Filter{}, err
	}

	return filter, nil
}
