package attendancemock

import (
	"context"
	"time"

	domain "hr-attendance-service/internal/domain/attendance"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only set the function fields a test needs; unset getters return
// context.Canceled, unset writers are no-ops.
type Repo struct {
	CreateFn               func(ctx context.Context, rec *domain.Record) error
	BulkCreateFn           func(ctx context.Context, recs []domain.Record) error
	SaveFn                 func(ctx context.Context, rec *domain.Record) error
	GetByDateFn            func(ctx context.Context, employeeID uint64, date time.Time) (*domain.Record, error)
	FindInRangeFn          func(ctx context.Context, employeeID uint64, from, to time.Time) ([]domain.Record, error)
	ListByStatusInYearFn   func(ctx context.Context, employeeID uint64, status domain.Status, year int) ([]domain.Record, error)
	CountByStatusInYearFn  func(ctx context.Context, employeeID uint64, status domain.Status, year int) (int64, error)
	DeleteBySourceFn       func(ctx context.Context, requestID uint64) error
	DeleteByEmployeeDateFn func(ctx context.Context, employeeID uint64, date time.Time) error
}

func (m *Repo) Create(ctx context.Context, rec *domain.Record) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, rec)
	}
	return nil
}

func (m *Repo) BulkCreate(ctx context.Context, recs []domain.Record) error {
	if m.BulkCreateFn != nil {
		return m.BulkCreateFn(ctx, recs)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, rec *domain.Record) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, rec)
	}
	return nil
}

func (m *Repo) GetByDate(ctx context.Context, employeeID uint64, date time.Time) (*domain.Record, error) {
	if m.GetByDateFn != nil {
		return m.GetByDateFn(ctx, employeeID, date)
	}
	return nil, context.Canceled
}

func (m *Repo) FindInRange(ctx context.Context, employeeID uint64, from, to time.Time) ([]domain.Record, error) {
	if m.FindInRangeFn != nil {
		return m.FindInRangeFn(ctx, employeeID, from, to)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByStatusInYear(ctx context.Context, employeeID uint64, status domain.Status, year int) ([]domain.Record, error) {
	if m.ListByStatusInYearFn != nil {
		return m.ListByStatusInYearFn(ctx, employeeID, status, year)
	}
	return nil, context.Canceled
}

func (m *Repo) CountByStatusInYear(ctx context.Context, employeeID uint64, status domain.Status, year int) (int64, error) {
	if m.CountByStatusInYearFn != nil {
		return m.CountByStatusInYearFn(ctx, employeeID, status, year)
	}
	return 0, context.Canceled
}

func (m *Repo) DeleteBySource(ctx context.Context, requestID uint64) error {
	if m.DeleteBySourceFn != nil {
		return m.DeleteBySourceFn(ctx, requestID)
	}
	return nil
}

func (m *Repo) DeleteByEmployeeDate(ctx context.Context, employeeID uint64, date time.Time) error {
	if m.DeleteByEmployeeDateFn != nil {
		return m.DeleteByEmployeeDateFn(ctx, employeeID, date)
	}
	return nil
}
