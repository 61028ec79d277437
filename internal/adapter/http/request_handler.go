package http

import (
	"net/http"
	"strconv"

	domReq "hr-attendance-service/internal/domain/request"
	ucRequest "hr-attendance-service/internal/usecase/request"
	"hr-attendance-service/pkg/dateutil"

	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	uc *ucRequest.Usecase
}

func NewRequestHandler(uc *ucRequest.Usecase) *RequestHandler {
	return &RequestHandler{uc: uc}
}

type createRequestRequest struct {
	// EmpID is only honored for API-key callers; token callers always
	// file for themselves.
	EmpID       *uint64 `json:"emp_id"`
	RequestType string  `json:"request_type" validate:"required,oneof=WFH LEAVE"`
	FromDate    string  `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate      string  `json:"to_date" validate:"required,datetime=2006-01-02"`
}

func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	requester, ok := actorFromContext(c, req.EmpID)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "emp_id is required"})
	}
	from, err := dateutil.Parse(req.FromDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from_date"})
	}
	to, err := dateutil.Parse(req.ToDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to_date"})
	}
	dto, err := h.uc.Create(c.Request().Context(), ucRequest.CreateInput{
		RequesterEmpID: requester,
		RequestType:    domReq.Type(req.RequestType),
		FromDate:       from,
		ToDate:         to,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type setStatusRequest struct {
	RequestStatus string `json:"request_status" validate:"required,oneof=APPROVED REJECTED"`
	// ActingEmpID identifies the approver for API-key callers.
	ActingEmpID *uint64 `json:"acting_emp_id"`
}

func (h *RequestHandler) SetStatus(c echo.Context) error {
	requestID := c.Param("request_id")
	if !reHex32.MatchString(requestID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	actor, ok := actorFromContext(c, req.ActingEmpID)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "acting_emp_id is required"})
	}
	err := h.uc.SetStatus(c.Request().Context(), requestID, domReq.Status(req.RequestStatus), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"request_id":     requestID,
		"request_status": req.RequestStatus,
	})
}

func (h *RequestHandler) Delete(c echo.Context) error {
	requestID := c.Param("request_id")
	if !reHex32.MatchString(requestID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
	}
	var fallback *uint64
	if raw := c.QueryParam("acting_emp_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid acting_emp_id"})
		}
		fallback = &id
	}
	actor, ok := actorFromContext(c, fallback)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "acting_emp_id is required"})
	}
	if err := h.uc.Delete(c.Request().Context(), requestID, actor); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "request deleted"})
}

// Query filters the request book by any combination of query params.
func (h *RequestHandler) Query(c echo.Context) error {
	var f domReq.Filter

	if raw := c.QueryParam("request_id"); raw != "" {
		if !reHex32.MatchString(raw) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_id"})
		}
		f.RequestID = &raw
	}
	if raw := c.QueryParam("requester_emp_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid requester_emp_id"})
		}
		f.RequesterEmpID = &id
	}
	if raw := c.QueryParam("approver_emp_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid approver_emp_id"})
		}
		f.ApproverEmpID = &id
	}
	if raw := c.QueryParam("request_type"); raw != "" {
		t := domReq.Type(raw)
		if !domReq.ValidType(t) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_type"})
		}
		f.RequestType = &t
	}
	if raw := c.QueryParam("request_status"); raw != "" {
		s := domReq.Status(raw)
		if !domReq.ValidStatus(s) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request_status"})
		}
		f.RequestStatus = &s
	}
	if raw := c.QueryParam("from_date"); raw != "" {
		d, err := dateutil.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid from_date"})
		}
		f.FromDateGTE = &d
	}
	if raw := c.QueryParam("to_date"); raw != "" {
		d, err := dateutil.Parse(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid to_date"})
		}
		f.ToDateLTE = &d
	}

	dtos, err := h.uc.Query(c.Request().Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"requests": dtos})
}

// ListForEmployee serves the employee-scoped view; mode is "created",
// "approval" or empty for both sides.
func (h *RequestHandler) ListForEmployee(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee id"})
	}
	rows, err := h.uc.ListForEmployee(c.Request().Context(), id, c.QueryParam("mode"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"requests": rows})
}

func (h *RequestHandler) LeaveUsage(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid employee id"})
	}
	year := dateutil.Today().Year()
	if raw := c.QueryParam("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1970 || y > 9999 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year"})
		}
		year = y
	}
	usage, err := h.uc.LeaveUsage(c.Request().Context(), id, year)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"emp_id":           id,
		"year":             year,
		"consumed":         usage.Consumed,
		"pending_reserved": usage.PendingReserved,
	})
}
