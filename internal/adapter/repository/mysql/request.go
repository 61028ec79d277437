package mysql

import (
	"context"
	"time"

	requestDomain "hr-attendance-service/internal/domain/request"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RequestRepository struct{ db *gorm.DB }

func NewRequestRepository(db *gorm.DB) *RequestRepository { return &RequestRepository{db: db} }

func (r *RequestRepository) Create(ctx context.Context, a *requestDomain.Approval) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *RequestRepository) GetByRequestID(ctx context.Context, requestID string) (*requestDomain.Approval, error) {
	var out requestDomain.Approval
	res := r.db.WithContext(ctx).Where("request_id = ?", requestID).First(&out)
	return &out, res.Error
}

func (r *RequestRepository) GetByRequestIDForUpdate(ctx context.Context, requestID string) (*requestDomain.Approval, error) {
	var out requestDomain.Approval
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("request_id = ?", requestID).
		First(&out)
	return &out, res.Error
}

func (r *RequestRepository) Save(ctx context.Context, a *requestDomain.Approval) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *RequestRepository) Delete(ctx context.Context, a *requestDomain.Approval) error {
	return r.db.WithContext(ctx).Delete(a).Error
}

func (r *RequestRepository) ListPendingLeaveInYear(ctx context.Context, employeeID uint64, year int) ([]requestDomain.Approval, error) {
	start, end := yearBounds(year)
	var out []requestDomain.Approval
	res := r.db.WithContext(ctx).
		Where("requester_emp_id = ? AND request_type = ? AND request_status = ? AND from_date >= ? AND from_date < ?",
			employeeID, requestDomain.TypeLeave, requestDomain.StatusPending, start, end).
		Find(&out)
	return out, res.Error
}

func (r *RequestRepository) HasPendingLeaveStartingIn(ctx context.Context, employeeID uint64, from, to time.Time) (bool, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&requestDomain.Approval{}).
		Where("requester_emp_id = ? AND request_type = ? AND request_status = ? AND from_date >= ? AND from_date <= ?",
			employeeID, requestDomain.TypeLeave, requestDomain.StatusPending, from, to).
		Count(&n)
	return n > 0, res.Error
}

func (r *RequestRepository) Query(ctx context.Context, f requestDomain.Filter) ([]requestDomain.Approval, error) {
	q := r.db.WithContext(ctx)
	if f.RequestID != nil {
		q = q.Where("request_id = ?", *f.RequestID)
	}
	if f.RequesterEmpID != nil {
		q = q.Where("requester_emp_id = ?", *f.RequesterEmpID)
	}
	if f.ApproverEmpID != nil {
		q = q.Where("approver_emp_id = ?", *f.ApproverEmpID)
	}
	if f.RequestType != nil {
		q = q.Where("request_type = ?", *f.RequestType)
	}
	if f.RequestStatus != nil {
		q = q.Where("request_status = ?", *f.RequestStatus)
	}
	if f.FromDateGTE != nil {
		q = q.Where("from_date >= ?", *f.FromDateGTE)
	}
	if f.ToDateLTE != nil {
		q = q.Where("to_date <= ?", *f.ToDateLTE)
	}
	var out []requestDomain.Approval
	res := q.Order("id").Find(&out)
	return out, res.Error
}

func (r *RequestRepository) ListInvolving(ctx context.Context, employeeID uint64) ([]requestDomain.Approval, error) {
	var out []requestDomain.Approval
	res := r.db.WithContext(ctx).
		Where("requester_emp_id = ? OR approver_emp_id = ?", employeeID, employeeID).
		Order("id").
		Find(&out)
	return out, res.Error
}
