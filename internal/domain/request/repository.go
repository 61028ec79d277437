package request

import (
	"context"
	"time"
)

// Filter narrows Query results; nil fields are ignored.
type Filter struct {
	RequestID      *string
	RequesterEmpID *uint64
	ApproverEmpID  *uint64
	RequestType    *Type
	RequestStatus  *Status
	FromDateGTE    *time.Time
	ToDateLTE      *time.Time
}

type Repository interface {
	Create(ctx context.Context, a *Approval) error
	GetByRequestID(ctx context.Context, requestID string) (*Approval, error)
	// GetByRequestIDForUpdate locks the row for the current transaction.
	GetByRequestIDForUpdate(ctx context.Context, requestID string) (*Approval, error)
	Save(ctx context.Context, a *Approval) error
	Delete(ctx context.Context, a *Approval) error
	// ListPendingLeaveInYear returns PENDING LEAVE requests whose
	// from_date falls inside the calendar year.
	ListPendingLeaveInYear(ctx context.Context, employeeID uint64, year int) ([]Approval, error)
	// HasPendingLeaveStartingIn reports whether any PENDING LEAVE request
	// of the employee starts inside [from, to]. Only the other request's
	// start date is tested, not full interval intersection.
	HasPendingLeaveStartingIn(ctx context.Context, employeeID uint64, from, to time.Time) (bool, error)
	Query(ctx context.Context, f Filter) ([]Approval, error)
	// ListInvolving returns requests where the employee is requester or approver.
	ListInvolving(ctx context.Context, employeeID uint64) ([]Approval, error)
}
