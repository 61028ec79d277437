package request

import (
	"context"

	"hr-attendance-service/internal/domain/attendance"
	domainRequest "hr-attendance-service/internal/domain/request"
	"hr-attendance-service/pkg/dateutil"
)

// leaveUsage derives consumed and reserved leave days for one
// employee-year. Consumed counts ABSENT ledger rows (the ledger
// encoding of an approved leave day); reserved sums the inclusive day
// counts of PENDING LEAVE requests starting in the year. A request
// spanning a year boundary is counted under the year of its from_date
// only.
func leaveUsage(ctx context.Context, attRepo attendance.Repository, reqRepo domainRequest.Repository, employeeID uint64, year int) (LeaveUsage, error) {
	consumed, err := attRepo.CountByStatusInYear(ctx, employeeID, attendance.StatusAbsent, year)
	if err != nil {
		return LeaveUsage{}, err
	}
	pending, err := reqRepo.ListPendingLeaveInYear(ctx, employeeID, year)
	if err != nil {
		return LeaveUsage{}, err
	}
	reserved := 0
	for _, p := range pending {
		reserved += dateutil.DaysInclusive(p.FromDate, p.ToDate)
	}
	return LeaveUsage{Consumed: int(consumed), PendingReserved: reserved}, nil
}

// admitLeave applies the creation-time cap: the request is admitted
// only if consumed + reserved + requested days stay within the cap.
func admitLeave(usage LeaveUsage, requestedDays, cap int) error {
	if usage.Consumed+usage.PendingReserved+requestedDays > cap {
		return &domainRequest.LimitError{
			Remaining: cap - usage.Consumed - usage.PendingReserved,
			Taken:     usage.Consumed,
			Pending:   usage.PendingReserved,
		}
	}
	return nil
}
