package uow

import (
	"context"

	"hr-attendance-service/internal/domain/attendance"
	"hr-attendance-service/internal/domain/employee"
	"hr-attendance-service/internal/domain/request"
)

type Repos struct {
	Employees  employee.Repository
	Attendance attendance.Repository
	Requests   request.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the request row first, then pass it in
	WithinRequestTx(ctx context.Context, requestID string, fn func(r Repos, a *request.Approval) error) error
}
