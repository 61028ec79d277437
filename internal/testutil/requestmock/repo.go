package requestmock

import (
	"context"
	"time"

	domain "hr-attendance-service/internal/domain/request"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only set the function fields a test needs; unset getters return
// context.Canceled, unset writers are no-ops.
type Repo struct {
	CreateFn                    func(ctx context.Context, a *domain.Approval) error
	GetByRequestIDFn            func(ctx context.Context, requestID string) (*domain.Approval, error)
	GetByRequestIDForUpdateFn   func(ctx context.Context, requestID string) (*domain.Approval, error)
	SaveFn                      func(ctx context.Context, a *domain.Approval) error
	DeleteFn                    func(ctx context.Context, a *domain.Approval) error
	ListPendingLeaveInYearFn    func(ctx context.Context, employeeID uint64, year int) ([]domain.Approval, error)
	HasPendingLeaveStartingInFn func(ctx context.Context, employeeID uint64, from, to time.Time) (bool, error)
	QueryFn                     func(ctx context.Context, f domain.Filter) ([]domain.Approval, error)
	ListInvolvingFn             func(ctx context.Context, employeeID uint64) ([]domain.Approval, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Approval) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByRequestID(ctx context.Context, requestID string) (*domain.Approval, error) {
	if m.GetByRequestIDFn != nil {
		return m.GetByRequestIDFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*domain.Approval, error) {
	if m.GetByRequestIDForUpdateFn != nil {
		return m.GetByRequestIDForUpdateFn(ctx, requestID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, a *domain.Approval) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, a *domain.Approval) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListPendingLeaveInYear(ctx context.Context, employeeID uint64, year int) ([]domain.Approval, error) {
	if m.ListPendingLeaveInYearFn != nil {
		return m.ListPendingLeaveInYearFn(ctx, employeeID, year)
	}
	return nil, context.Canceled
}

func (m *Repo) HasPendingLeaveStartingIn(ctx context.Context, employeeID uint64, from, to time.Time) (bool, error) {
	if m.HasPendingLeaveStartingInFn != nil {
		return m.HasPendingLeaveStartingInFn(ctx, employeeID, from, to)
	}
	return false, context.Canceled
}

func (m *Repo) Query(ctx context.Context, f domain.Filter) ([]domain.Approval, error) {
	if m.QueryFn != nil {
		return m.QueryFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) ListInvolving(ctx context.Context, employeeID uint64) ([]domain.Approval, error) {
	if m.ListInvolvingFn != nil {
		return m.ListInvolvingFn(ctx, employeeID)
	}
	return nil, context.Canceled
}
