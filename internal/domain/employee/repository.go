package employee

import "context"

// SearchFilter narrows employees for attendance search; zero values are ignored.
type SearchFilter struct {
	IDs           []uint64
	ClientCompany string
	Location      string
	ReportsTo     *uint64
}

type Repository interface {
	Create(ctx context.Context, e *Employee) error
	BulkCreate(ctx context.Context, es []Employee) error
	GetByID(ctx context.Context, id uint64) (*Employee, error)
	GetByEmail(ctx context.Context, email string) (*Employee, error)
	// List returns all employees, optionally filtered by exact phone number.
	List(ctx context.Context, phone string) ([]Employee, error)
	Search(ctx context.Context, f SearchFilter) ([]Employee, error)
	Save(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id uint64) error
}
