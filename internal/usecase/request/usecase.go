package request

import (
	"context"
	"errors"
	"log"
	"time"

	"hr-attendance-service/internal/domain/attendance"
	domainRequest "hr-attendance-service/internal/domain/request"
	"hr-attendance-service/internal/domain/uow"
	"hr-attendance-service/pkg/dateutil"
	"hr-attendance-service/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	uow        uow.UnitOfWork
	requests   domainRequest.Repository
	attendance attendance.Repository
	cfg        Config
}

// NewUsecase: the uow drives every state transition; the plain repos
// serve the read-only paths.
func NewUsecase(u uow.UnitOfWork, requests domainRequest.Repository, att attendance.Repository, cfg Config) *Usecase {
	return &Usecase{uow: u, requests: requests, attendance: att, cfg: cfg}
}

// Create admits a new request into PENDING. All checks and the insert
// run in one transaction so a concurrent creation cannot slip past the
// balance or conflict checks.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ApprovalDTO, error) {
	from, to := dateutil.Normalize(in.FromDate), dateutil.Normalize(in.ToDate)
	if from.After(to) {
		return nil, domainRequest.ErrInvalidRange
	}
	if !domainRequest.ValidType(in.RequestType) {
		return nil, domainRequest.ErrInvalidTransition
	}

	var dto *ApprovalDTO
	today := dateutil.Today()

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if in.RequestType == domainRequest.TypeLeave {
			usage, err := leaveUsage(ctx, r.Attendance, r.Requests, in.RequesterEmpID, today.Year())
			if err != nil {
				return err
			}
			requested := dateutil.DaysInclusive(from, to)
			if err := admitLeave(usage, requested, u.cfg.LeaveAdmissionCap); err != nil {
				return err
			}
		}

		conflicts, err := ledgerConflicts(ctx, r.Attendance, in.RequesterEmpID, from, to)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &domainRequest.ConflictError{Dates: conflicts}
		}

		overlap, err := pendingOverlap(ctx, r.Requests, in.RequesterEmpID, from, to)
		if err != nil {
			return err
		}
		if overlap {
			return domainRequest.ErrPendingConflict
		}

		emp, err := r.Employees.GetByID(ctx, in.RequesterEmpID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainRequest.ErrEmployeeNotFound
			}
			return err
		}

		a := &domainRequest.Approval{
			RequestID:      id.NewID32(),
			RequesterEmpID: in.RequesterEmpID,
			// approver snapshot; never re-resolved on later transitions
			ApproverEmpID: emp.ReportsTo,
			RequestType:   in.RequestType,
			RequestStatus: domainRequest.StatusPending,
			CreatedDate:   today,
			FromDate:      from,
			ToDate:        to,
		}
		if err := r.Requests.Create(ctx, a); err != nil {
			return err
		}
		d := toDTO(a)
		dto = &d
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// SetStatus drives PENDING→APPROVED, PENDING→REJECTED and
// APPROVED→REJECTED. The request row is locked for the whole
// transaction; approval materializes one tagged ledger row per day and
// rejection after approval retracts exactly the tagged rows.
func (u *Usecase) SetStatus(ctx context.Context, requestID string, newStatus domainRequest.Status, actorEmpID uint64) error {
	if !domainRequest.ValidStatus(newStatus) {
		return domainRequest.ErrInvalidTransition
	}
	err := u.uow.WithinRequestTx(ctx, requestID, func(r uow.Repos, a *domainRequest.Approval) error {
		if a.RequestStatus == domainRequest.StatusRejected {
			return domainRequest.ErrTerminalState
		}
		if a.ApproverEmpID == nil || *a.ApproverEmpID != actorEmpID {
			return domainRequest.ErrUnauthorized
		}
		if !domainRequest.CanTransition(a.RequestStatus, newStatus) {
			return domainRequest.ErrInvalidTransition
		}

		switch newStatus {
		case domainRequest.StatusApproved:
			// only attendance entered after filing blocks approval
			checkFrom := clampFrom(a.FromDate, a.CreatedDate)
			conflicts, err := ledgerConflicts(ctx, r.Attendance, a.RequesterEmpID, checkFrom, a.ToDate)
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				return &domainRequest.ConflictError{Dates: conflicts}
			}
			if err := materialize(ctx, r.Attendance, a); err != nil {
				return err
			}
		case domainRequest.StatusRejected:
			if a.RequestStatus == domainRequest.StatusApproved {
				if err := r.Attendance.DeleteBySource(ctx, a.ID); err != nil {
					return err
				}
			}
		}

		a.RequestStatus = newStatus
		return r.Requests.Save(ctx, a)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainRequest.ErrNotFound
	}
	return err
}

// materialize writes one tagged row per day of the request range. The
// unique (emp_id, date) key is the final arbiter: a row raced in after
// the conflict check fails the whole transaction instead of being
// overwritten.
func materialize(ctx context.Context, repo attendance.Repository, a *domainRequest.Approval) error {
	status := attendance.StatusAbsent
	if a.RequestType == domainRequest.TypeWFH {
		status = attendance.StatusWFH
	}
	for d := a.FromDate; !d.After(a.ToDate); d = d.AddDate(0, 0, 1) {
		rec := &attendance.Record{
			EmployeeID:      a.RequesterEmpID,
			Date:            d,
			Status:          status,
			SourceRequestID: &a.ID,
		}
		if err := repo.Create(ctx, rec); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &domainRequest.ConflictError{Dates: []time.Time{d}}
			}
			return err
		}
	}
	return nil
}

// Delete removes a PENDING request. Requester and approver may delete
// their own; anyone at or above the admin level may delete any.
func (u *Usecase) Delete(ctx context.Context, requestID string, actorEmpID uint64) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Requests.GetByRequestID(ctx, requestID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainRequest.ErrNotFound
			}
			return err
		}
		if a.RequestStatus != domainRequest.StatusPending {
			return domainRequest.ErrNotPending
		}
		if actorEmpID != a.RequesterEmpID &&
			(a.ApproverEmpID == nil || *a.ApproverEmpID != actorEmpID) {
			actor, err := r.Employees.GetByID(ctx, actorEmpID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domainRequest.ErrDeleteForbidden
				}
				return err
			}
			if actor.Level < u.cfg.AdminLevel {
				return domainRequest.ErrDeleteForbidden
			}
		}
		log.Printf("request %s deleted by employee %d", a.RequestID, actorEmpID)
		return r.Requests.Delete(ctx, a)
	})
}

func (u *Usecase) Query(ctx context.Context, f domainRequest.Filter) ([]ApprovalDTO, error) {
	rows, err := u.requests.Query(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ApprovalDTO, len(rows))
	for i := range rows {
		out[i] = toDTO(&rows[i])
	}
	return out, nil
}

// ListForEmployee returns the requests an employee is involved in.
// mode: "created" (as requester), "approval" (as approver), anything
// else means both sides.
func (u *Usecase) ListForEmployee(ctx context.Context, employeeID uint64, mode string) ([]EmployeeViewDTO, error) {
	var rows []domainRequest.Approval
	var err error
	switch mode {
	case "created":
		rows, err = u.requests.Query(ctx, domainRequest.Filter{RequesterEmpID: &employeeID})
	case "approval":
		rows, err = u.requests.Query(ctx, domainRequest.Filter{ApproverEmpID: &employeeID})
	default:
		rows, err = u.requests.ListInvolving(ctx, employeeID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]EmployeeViewDTO, len(rows))
	for i := range rows {
		a := &rows[i]
		out[i] = EmployeeViewDTO{
			ApprovalDTO: toDTO(a),
			IsRequester: a.RequesterEmpID == employeeID,
			IsApprover:  a.ApproverEmpID != nil && *a.ApproverEmpID == employeeID,
		}
	}
	return out, nil
}

// LeaveUsage exposes the balance calculator for a given year.
func (u *Usecase) LeaveUsage(ctx context.Context, employeeID uint64, year int) (LeaveUsage, error) {
	return leaveUsage(ctx, u.attendance, u.requests, employeeID, year)
}
