package http

import (
	"errors"
	"net/http"
	"strconv"

	domAtt "hr-attendance-service/internal/domain/attendance"
	domEmp "hr-attendance-service/internal/domain/employee"
	domReq "hr-attendance-service/internal/domain/request"
	"hr-attendance-service/internal/adapter/middleware"
	"hr-attendance-service/internal/usecase/auth"
	"hr-attendance-service/pkg/dateutil"

	"github.com/labstack/echo/v4"
)

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}

func parseIDParam(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	return id, err == nil && id > 0
}

// actorFromContext resolves who is acting: the token identity when
// present, otherwise the body/query fallback supplied by API-key
// callers acting on an employee's behalf.
func actorFromContext(c echo.Context, fallback *uint64) (uint64, bool) {
	if id, ok := middleware.ActorEmployeeID(c); ok {
		return id, true
	}
	if fallback != nil && *fallback > 0 {
		return *fallback, true
	}
	return 0, false
}

// writeError maps domain errors onto HTTP statuses. Anything unmapped
// is a 500 and gets logged with its real cause.
func writeError(c echo.Context, err error) error {
	var limitErr *domReq.LimitError
	var conflictErr *domReq.ConflictError

	switch {
	case errors.As(err, &limitErr):
		taken, pending := limitErr.Taken, limitErr.Pending
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:         "leave limit exceeded",
			Message:       limitErr.Error(),
			LeavesTaken:   &taken,
			PendingLeaves: &pending,
		})
	case errors.As(err, &conflictErr):
		dates := make([]string, len(conflictErr.Dates))
		for i, d := range conflictErr.Dates {
			dates[i] = dateutil.Format(d)
		}
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:         "attendance conflict",
			ConflictDates: dates,
		})
	case errors.Is(err, domReq.ErrInvalidRange),
		errors.Is(err, domReq.ErrInvalidTransition),
		errors.Is(err, domReq.ErrNotPending),
		errors.Is(err, domEmp.ErrInvalidLevel):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domReq.ErrUnauthorized),
		errors.Is(err, domReq.ErrDeleteForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domReq.ErrNotFound),
		errors.Is(err, domReq.ErrEmployeeNotFound),
		errors.Is(err, domEmp.ErrNotFound),
		errors.Is(err, domAtt.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domReq.ErrPendingConflict),
		errors.Is(err, domReq.ErrTerminalState),
		errors.Is(err, domEmp.ErrEmailTaken),
		errors.Is(err, domAtt.ErrDateTaken),
		errors.Is(err, domAtt.ErrManaged):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}
