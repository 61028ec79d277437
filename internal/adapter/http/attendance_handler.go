package http

import (
	"net/http"
	"strconv"

	domAtt "hr-attendance-service/internal/domain/attendance"
	ucAttendance "hr-attendance-service/internal/usecase/attendance"
	"hr-attendance-service/pkg/dateutil"

	"github.com/labstack/echo/v4"
)

const defaultHistoryDays = 7

type AttendanceHandler struct {
	uc *ucAttendance.Usecase
}

func NewAttendanceHandler(uc *ucAttendance.Usecase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

type upsertAttendanceRequest struct {
	EmpID       uint64 `json:"emp_id" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Status      string `json:"status" validate:"required,oneof=PRESENT ABSENT WFH"`
	ClearSource bool   `json:"clear_source"`
}

func (h *AttendanceHandler) Upsert(c echo.Context) error {
	var req upsertAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	date, err := dateutil.Parse(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
	}
	res, err := h.uc.Upsert(c.Request().Context(), ucAttendance.UpsertInput{
		EmployeeID:  req.EmpID,
		Date:        date,
		Status:      domAtt.Status(req.Status),
		ClearSource: req.ClearSource,
	})
	if err != nil {
		return writeError(c, err)
	}
	body := map[string]any{"created": res.Created, "changed": res.Changed}
	if res.Previous != nil {
		body["previous_status"] = string(*res.Previous)
	}
	code := http.StatusOK
	if res.Created {
		code = http.StatusCreated
	}
	return c.JSON(code, body)
}

// History serves the grouped view. The window is either an explicit
// from/to pair or the last N days ending today (default 7).
func (h *AttendanceHandler) History(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee id"})
	}

	to := dateutil.Today()
	from := to.AddDate(0, 0, -(defaultHistoryDays - 1))
	if rawFrom, rawTo := c.QueryParam("from"), c.QueryParam("to"); rawFrom != "" || rawTo != "" {
		var err error
		if from, err = dateutil.Parse(rawFrom); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from date"})
		}
		if to, err = dateutil.Parse(rawTo); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to date"})
		}
	} else if raw := c.QueryParam("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 1 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid days"})
		}
		from = to.AddDate(0, 0, -(days - 1))
	}
	if from.After(to) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from is after to"})
	}

	dto, err := h.uc.History(c.Request().Context(), id, from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *AttendanceHandler) ByDate(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee id"})
	}
	date, err := dateutil.Parse(c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
	}
	status, err := h.uc.ByDate(c.Request().Context(), id, date)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"date":   dateutil.Format(dateutil.Normalize(date)),
		"status": string(status),
	})
}

func (h *AttendanceHandler) Delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee id"})
	}
	date, err := dateutil.Parse(c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
	}
	if err := h.uc.Delete(c.Request().Context(), id, date); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "attendance deleted"})
}

type bulkAttendanceItem struct {
	EmpID  uint64 `json:"emp_id" validate:"required"`
	Date   string `json:"date" validate:"required,datetime=2006-01-02"`
	Status string `json:"status" validate:"required,oneof=PRESENT ABSENT WFH"`
}

type bulkAttendanceRequest struct {
	Records []bulkAttendanceItem `json:"records" validate:"required,min=1,dive"`
}

func (h *AttendanceHandler) BulkAdd(c echo.Context) error {
	var req bulkAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	items := make([]ucAttendance.BulkItem, len(req.Records))
	for i, r := range req.Records {
		date, err := dateutil.Parse(r.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid date"})
		}
		items[i] = ucAttendance.BulkItem{
			EmployeeID: r.EmpID,
			Date:       date,
			Status:     domAtt.Status(r.Status),
		}
	}
	if err := h.uc.BulkAdd(c.Request().Context(), items); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]int{"created": len(items)})
}

type searchAttendanceRequest struct {
	EmpIDs        []uint64 `json:"emp_ids"`
	ClientCompany string   `json:"client_company"`
	Location      string   `json:"location"`
	ReportsTo     *uint64  `json:"reports_to"`
	FromDate      string   `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate        string   `json:"to_date" validate:"required,datetime=2006-01-02"`
}

func (h *AttendanceHandler) Search(c echo.Context) error {
	var req searchAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	from, err := dateutil.Parse(req.FromDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from_date"})
	}
	to, err := dateutil.Parse(req.ToDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to_date"})
	}
	if from.After(to) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "from_date is after to_date"})
	}
	rows, err := h.uc.Search(c.Request().Context(), ucAttendance.SearchInput{
		EmpIDs:        req.EmpIDs,
		ClientCompany: req.ClientCompany,
		Location:      req.Location,
		ReportsTo:     req.ReportsTo,
		FromDate:      from,
		ToDate:        to,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"results": rows})
}
