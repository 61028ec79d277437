package request

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Type string

const (
	TypeWFH   Type = "WFH"
	TypeLeave Type = "LEAVE"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func ValidType(t Type) bool { return t == TypeWFH || t == TypeLeave }

// transitions is the explicit state machine: PENDING may move to
// APPROVED or REJECTED, APPROVED may still be REJECTED (with
// retraction), REJECTED is terminal.
var transitions = map[Status]map[Status]bool{
	StatusPending:  {StatusApproved: true, StatusRejected: true},
	StatusApproved: {StatusRejected: true},
}

func CanTransition(from, to Status) bool { return transitions[from][to] }

// Approval is a leave/WFH request moving through the state machine.
// ApproverEmpID is snapshotted from the requester's manager at creation
// and never re-resolved; nil means the requester has no approver.
type Approval struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	RequestID      string    `gorm:"column:request_id;type:char(32);not null;uniqueIndex:ux_requests_request_id"`
	RequesterEmpID uint64    `gorm:"column:requester_emp_id;not null;index"`
	ApproverEmpID  *uint64   `gorm:"column:approver_emp_id;index"`
	RequestType    Type      `gorm:"column:request_type;type:enum('WFH','LEAVE');not null"`
	RequestStatus  Status    `gorm:"column:request_status;type:enum('PENDING','APPROVED','REJECTED');not null;default:'PENDING'"`
	CreatedDate    time.Time `gorm:"column:request_created_date;type:date;not null"`
	FromDate       time.Time `gorm:"column:from_date;type:date;not null"`
	ToDate         time.Time `gorm:"column:to_date;type:date;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Approval) TableName() string { return "requests" }
