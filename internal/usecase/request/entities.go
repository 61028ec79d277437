package request

import (
	"time"

	"hr-attendance-service/internal/domain/request"

	"hr-attendance-service/pkg/dateutil"
)

// Config carries the tunables of the workflow; see config.Load for the
// documented defaults (admission cap 15, admin level 7).
type Config struct {
	// LeaveAdmissionCap is the yearly budget checked when a LEAVE
	// request is created: consumed + pending + requested must not
	// exceed it.
	LeaveAdmissionCap int
	// AdminLevel is the minimum authorization level that may delete
	// pending requests on behalf of others.
	AdminLevel int
}

type CreateInput struct {
	RequesterEmpID uint64
	RequestType    request.Type
	FromDate       time.Time
	ToDate         time.Time
}

type ApprovalDTO struct {
	RequestID      string  `json:"request_id"`
	RequesterEmpID uint64  `json:"requester_emp_id"`
	ApproverEmpID  *uint64 `json:"approver_emp_id"`
	RequestType    string  `json:"request_type"`
	RequestStatus  string  `json:"request_status"`
	CreatedDate    string  `json:"request_created_date"`
	FromDate       string  `json:"from_date"`
	ToDate         string  `json:"to_date"`
}

// EmployeeViewDTO is the employee-scoped projection: the same row plus
// which side of it the viewing employee is on.
type EmployeeViewDTO struct {
	ApprovalDTO
	IsRequester bool `json:"is_requester"`
	IsApprover  bool `json:"is_approver"`
}

// LeaveUsage is the balance calculator's result for one employee-year.
type LeaveUsage struct {
	Consumed        int `json:"consumed"`
	PendingReserved int `json:"pending_reserved"`
}

func toDTO(a *request.Approval) ApprovalDTO {
	return ApprovalDTO{
		RequestID:      a.RequestID,
		RequesterEmpID: a.RequesterEmpID,
		ApproverEmpID:  a.ApproverEmpID,
		RequestType:    string(a.RequestType),
		RequestStatus:  string(a.RequestStatus),
		CreatedDate:    dateutil.Format(a.CreatedDate),
		FromDate:       dateutil.Format(a.FromDate),
		ToDate:         dateutil.Format(a.ToDate),
	}
}
