package attendance

import (
	"time"

	"hr-attendance-service/internal/domain/attendance"
)

// Config carries the advisory reporting cap (default 24). It is a
// different figure from the admission cap the workflow enforces; the
// two are intentionally distinct views.
type Config struct {
	LeaveReportingCap int
}

type UpsertInput struct {
	EmployeeID uint64
	Date       time.Time
	Status     attendance.Status
	// ClearSource lets a direct entry take over a workflow-tagged row;
	// without it such rows are refused.
	ClearSource bool
}

type UpsertResult struct {
	Previous *attendance.Status
	Created  bool
	Changed  bool
}

type LeaveStatsDTO struct {
	TotalLeavesTaken int         `json:"total_leaves_taken"`
	MonthlyLeaves    map[int]int `json:"monthly_leaves"`
	RemainingLeaves  int         `json:"remaining_leaves"`
	MaxAllowedLeaves int         `json:"max_allowed_leaves"`
}

type HistoryDTO struct {
	Attendance map[attendance.Status][]string `json:"attendance"`
	LeaveStats LeaveStatsDTO                  `json:"leave_stats"`
}

type BulkItem struct {
	EmployeeID uint64
	Date       time.Time
	Status     attendance.Status
}

type SearchInput struct {
	EmpIDs        []uint64
	ClientCompany string
	Location      string
	ReportsTo     *uint64
	FromDate      time.Time
	ToDate        time.Time
}

type StatusCounts struct {
	Present   int `json:"PRESENT"`
	Absent    int `json:"ABSENT"`
	WFH       int `json:"WFH"`
	TotalDays int `json:"total_days"`
}

type SearchLeaveStats struct {
	LeavesTaken      int `json:"leaves_taken"`
	RemainingLeaves  int `json:"remaining_leaves"`
	MaxAllowedLeaves int `json:"max_allowed_leaves"`
}

type SearchRowDTO struct {
	EmpID         uint64           `json:"emp_id"`
	Name          string           `json:"name"`
	ClientCompany string           `json:"client_company"`
	Location      string           `json:"location"`
	ReportsTo     *uint64          `json:"reports_to"`
	Attendance    StatusCounts     `json:"attendance"`
	LeaveStats    SearchLeaveStats `json:"leave_stats"`
}
