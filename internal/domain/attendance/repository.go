package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, rec *Record) error
	BulkCreate(ctx context.Context, recs []Record) error
	Save(ctx context.Context, rec *Record) error
	GetByDate(ctx context.Context, employeeID uint64, date time.Time) (*Record, error)
	// FindInRange returns records with date in [from, to], ordered by date.
	FindInRange(ctx context.Context, employeeID uint64, from, to time.Time) ([]Record, error)
	// ListByStatusInYear returns the employee's records with the given
	// status dated inside the calendar year, ordered by date.
	ListByStatusInYear(ctx context.Context, employeeID uint64, status Status, year int) ([]Record, error)
	CountByStatusInYear(ctx context.Context, employeeID uint64, status Status, year int) (int64, error)
	// DeleteBySource removes every record tagged with the request's
	// numeric ID. Used only when rejecting a previously approved request.
	DeleteBySource(ctx context.Context, requestID uint64) error
	DeleteByEmployeeDate(ctx context.Context, employeeID uint64, date time.Time) error
}
