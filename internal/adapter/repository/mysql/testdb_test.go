package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no enums/engine specifics) ---

type employeeSQLite struct {
	ID            uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	Name          string    `gorm:"column:name"`
	Email         string    `gorm:"column:email;uniqueIndex:ux_employees_email"`
	Phone         string    `gorm:"column:phone"`
	Role          string    `gorm:"column:role"`
	Level         int       `gorm:"column:level"`
	EmployeeType  string    `gorm:"column:employee_type"`
	ClientCompany string    `gorm:"column:client_company"`
	Location      string    `gorm:"column:location"`
	ReportsTo     *uint64   `gorm:"column:reports_to"`
	Skills        string    `gorm:"column:skills"`
	PasswordHash  string    `gorm:"column:password_hash"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (employeeSQLite) TableName() string { return "employees" }

type attendanceSQLite struct {
	ID         uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	EmployeeID uint64    `gorm:"column:emp_id;uniqueIndex:ux_attendance_emp_date"`
	Date       time.Time `gorm:"column:date;uniqueIndex:ux_attendance_emp_date"`
	Status     string    `gorm:"column:status"`
	RequestID  *uint64   `gorm:"column:request_id;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (attendanceSQLite) TableName() string { return "attendance" }

type requestSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id;autoIncrement"`
	RequestID      string    `gorm:"column:request_id;size:32;uniqueIndex:ux_requests_request_id"`
	RequesterEmpID uint64    `gorm:"column:requester_emp_id;index"`
	ApproverEmpID  *uint64   `gorm:"column:approver_emp_id;index"`
	RequestType    string    `gorm:"column:request_type"`
	RequestStatus  string    `gorm:"column:request_status"`
	CreatedDate    time.Time `gorm:"column:request_created_date"`
	FromDate       time.Time `gorm:"column:from_date"`
	ToDate         time.Time `gorm:"column:to_date"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (requestSQLite) TableName() string { return "requests" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas. TranslateError stays on so duplicate-key
// behavior matches production.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&employeeSQLite{}, &attendanceSQLite{}, &requestSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatal(err)
	}
	return d.UTC()
}
