package mysql

import (
	"context"

	employeeDomain "hr-attendance-service/internal/domain/employee"

	"gorm.io/gorm"
)

type EmployeeRepository struct{ db *gorm.DB }

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository { return &EmployeeRepository{db: db} }

func (r *EmployeeRepository) Create(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EmployeeRepository) BulkCreate(ctx context.Context, es []employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Create(&es).Error
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id uint64) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) GetByEmail(ctx context.Context, email string) (*employeeDomain.Employee, error) {
	var out employeeDomain.Employee
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *EmployeeRepository) List(ctx context.Context, phone string) ([]employeeDomain.Employee, error) {
	var out []employeeDomain.Employee
	q := r.db.WithContext(ctx)
	if phone != "" {
		q = q.Where("phone = ?", phone)
	}
	res := q.Order("id").Find(&out)
	return out, res.Error
}

func (r *EmployeeRepository) Search(ctx context.Context, f employeeDomain.SearchFilter) ([]employeeDomain.Employee, error) {
	q := r.db.WithContext(ctx)
	if len(f.IDs) > 0 {
		q = q.Where("id IN ?", f.IDs)
	}
	if f.ClientCompany != "" {
		q = q.Where("client_company = ?", f.ClientCompany)
	}
	if f.Location != "" {
		q = q.Where("location = ?", f.Location)
	}
	if f.ReportsTo != nil {
		q = q.Where("reports_to = ?", *f.ReportsTo)
	}
	var out []employeeDomain.Employee
	res := q.Order("id").Find(&out)
	return out, res.Error
}

func (r *EmployeeRepository) Save(ctx context.Context, e *employeeDomain.Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EmployeeRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&employeeDomain.Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
