package request

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrNotFound          = errors.New("request not found")
	ErrInvalidRange      = errors.New("invalid date range")
	ErrPendingConflict   = errors.New("conflicts found with already applied leaves")
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrUnauthorized      = errors.New("only the approver can update request status")
	ErrTerminalState     = errors.New("no operations allowed on rejected request")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotPending        = errors.New("only requests in PENDING state can be deleted")
	ErrDeleteForbidden   = errors.New("only requester, approver or admin can delete requests")
)

// LimitError reports a failed leave-balance admission check with enough
// detail for the caller to adjust the request.
type LimitError struct {
	Remaining int
	Taken     int
	Pending   int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("leave limit exceeded: %d remaining (%d taken, %d pending)",
		e.Remaining, e.Taken, e.Pending)
}

// ConflictError carries the exact dates that collide with existing
// attendance records.
type ConflictError struct {
	Dates []time.Time
}

func (e *ConflictError) Error() string {
	ds := make([]string, len(e.Dates))
	for i, d := range e.Dates {
		ds[i] = d.UTC().Format("2006-01-02")
	}
	return "attendance conflicts found: " + strings.Join(ds, ", ")
}
