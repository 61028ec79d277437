package employeemock

import (
	"context"

	domain "hr-attendance-service/internal/domain/employee"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only set the function fields a test needs; unset getters return
// context.Canceled, unset writers are no-ops.
type Repo struct {
	CreateFn     func(ctx context.Context, e *domain.Employee) error
	BulkCreateFn func(ctx context.Context, es []domain.Employee) error
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.Employee, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.Employee, error)
	ListFn       func(ctx context.Context, phone string) ([]domain.Employee, error)
	SearchFn     func(ctx context.Context, f domain.SearchFilter) ([]domain.Employee, error)
	SaveFn       func(ctx context.Context, e *domain.Employee) error
	DeleteFn     func(ctx context.Context, id uint64) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Employee) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) BulkCreate(ctx context.Context, es []domain.Employee) error {
	if m.BulkCreateFn != nil {
		return m.BulkCreateFn(ctx, es)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Employee, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context, phone string) ([]domain.Employee, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, phone)
	}
	return nil, context.Canceled
}

func (m *Repo) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Employee, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, f)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, e *domain.Employee) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
