package attendance

import (
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("attendance record not found")
	// ErrDateTaken surfaces the unique (emp_id, date) key losing a race.
	ErrDateTaken = errors.New("attendance record already exists for this date")
	// ErrManaged guards rows materialized by an approval request: direct
	// entry must clear the source tag explicitly before overwriting.
	ErrManaged = errors.New("attendance record is managed by an approval request")
)

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusWFH     Status = "WFH"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusWFH:
		return true
	}
	return false
}

// Record is one (employee, date) attendance fact. At most one row per
// employee per day; the unique index is the final arbiter under
// concurrent writes. SourceRequestID tags rows materialized by an
// approved request so rejection can retract exactly those rows.
type Record struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID uint64    `gorm:"column:emp_id;not null;uniqueIndex:ux_attendance_emp_date"`
	Date       time.Time `gorm:"column:date;type:date;not null;uniqueIndex:ux_attendance_emp_date"`
	Status     Status    `gorm:"column:status;type:enum('PRESENT','ABSENT','WFH');not null"`
	// SourceRequestID references requests.id; nil for direct entries.
	SourceRequestID *uint64   `gorm:"column:request_id;index"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Record) TableName() string { return "attendance" }
