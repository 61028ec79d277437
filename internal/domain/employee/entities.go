package employee

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("employee not found")
	ErrInvalidLevel = errors.New("level must be between 0 and 9")
	ErrEmailTaken   = errors.New("email already registered")
)

// Type buckets derived from level: A (0-3), B (4-6), C (7-9).
type Type string

const (
	TypeA Type = "A"
	TypeB Type = "B"
	TypeC Type = "C"
)

// TypeForLevel maps an authorization level to its employee type bucket.
func TypeForLevel(level int) Type {
	switch {
	case level <= 3:
		return TypeA
	case level <= 6:
		return TypeB
	default:
		return TypeC
	}
}

type Employee struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string    `gorm:"column:name;size:100;not null"`
	Email         string    `gorm:"column:email;size:100;not null;uniqueIndex:ux_employees_email"`
	Phone         string    `gorm:"column:phone;size:15;not null"`
	Role          string    `gorm:"column:role;size:50;not null"`
	Level         int       `gorm:"column:level;not null"`
	EmployeeType  Type      `gorm:"column:employee_type;type:enum('A','B','C');not null"`
	ClientCompany string    `gorm:"column:client_company;size:100;not null"`
	Location      string    `gorm:"column:location;size:100;not null"`
	// ReportsTo is the approver for this employee's requests; nil means top of hierarchy.
	ReportsTo    *uint64   `gorm:"column:reports_to;index"`
	Skills       string    `gorm:"column:skills;size:200;not null"`
	PasswordHash string    `gorm:"column:password_hash;size:256;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Employee) TableName() string { return "employees" }
