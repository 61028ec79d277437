package request

import (
	"context"
	"time"

	"hr-attendance-service/internal/domain/attendance"
	domainRequest "hr-attendance-service/internal/domain/request"
)

// ledgerConflicts returns the dates of attendance records inside
// [from, to]. Approval-time checks pass a from clamped to the request's
// creation date: records that predate the filing were already known to
// the requester and do not block approval.
func ledgerConflicts(ctx context.Context, repo attendance.Repository, employeeID uint64, from, to time.Time) ([]time.Time, error) {
	recs, err := repo.FindInRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	dates := make([]time.Time, len(recs))
	for i, rec := range recs {
		dates[i] = rec.Date
	}
	return dates, nil
}

// pendingOverlap reports whether another PENDING LEAVE request of the
// employee starts inside [from, to]. Deliberately asymmetric: only the
// other request's start date is tested against the new range.
func pendingOverlap(ctx context.Context, repo domainRequest.Repository, employeeID uint64, from, to time.Time) (bool, error) {
	return repo.HasPendingLeaveStartingIn(ctx, employeeID, from, to)
}

// clampFrom raises from to cutoff when the cutoff is later.
func clampFrom(from, cutoff time.Time) time.Time {
	if cutoff.After(from) {
		return cutoff
	}
	return from
}
