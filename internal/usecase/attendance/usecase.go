package attendance

import (
	"context"
	"errors"
	"log"
	"time"

	"hr-attendance-service/internal/domain/attendance"
	"hr-attendance-service/internal/domain/employee"
	"hr-attendance-service/pkg/dateutil"

	"gorm.io/gorm"
)

type Usecase struct {
	records   attendance.Repository
	employees employee.Repository
	cfg       Config
}

func NewUsecase(records attendance.Repository, employees employee.Repository, cfg Config) *Usecase {
	return &Usecase{records: records, employees: employees, cfg: cfg}
}

// Upsert is the direct-entry path. It never touches rows materialized
// by the approval workflow unless the caller clears the source tag
// explicitly, in which case the takeover is logged. The unique
// (emp_id, date) key decides insert races.
func (u *Usecase) Upsert(ctx context.Context, in UpsertInput) (*UpsertResult, error) {
	date := dateutil.Normalize(in.Date)
	rec, err := u.records.GetByDate(ctx, in.EmployeeID, date)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		created := &attendance.Record{EmployeeID: in.EmployeeID, Date: date, Status: in.Status}
		if err := u.records.Create(ctx, created); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, attendance.ErrDateTaken
			}
			return nil, err
		}
		return &UpsertResult{Created: true}, nil
	}

	prev := rec.Status
	if rec.Status == in.Status {
		return &UpsertResult{Previous: &prev}, nil
	}
	if rec.SourceRequestID != nil {
		if !in.ClearSource {
			return nil, attendance.ErrManaged
		}
		log.Printf("attendance: employee %d date %s: direct entry took over row of request %d",
			in.EmployeeID, dateutil.Format(date), *rec.SourceRequestID)
		rec.SourceRequestID = nil
	}
	rec.Status = in.Status
	if err := u.records.Save(ctx, rec); err != nil {
		return nil, err
	}
	return &UpsertResult{Previous: &prev, Changed: true}, nil
}

// History groups the employee's records in [from, to] by status and
// attaches the current year's leave stats using the advisory cap.
func (u *Usecase) History(ctx context.Context, employeeID uint64, from, to time.Time) (*HistoryDTO, error) {
	recs, err := u.records.FindInRange(ctx, employeeID, dateutil.Normalize(from), dateutil.Normalize(to))
	if err != nil {
		return nil, err
	}
	grouped := map[attendance.Status][]string{
		attendance.StatusPresent: {},
		attendance.StatusAbsent:  {},
		attendance.StatusWFH:     {},
	}
	for _, rec := range recs {
		grouped[rec.Status] = append(grouped[rec.Status], dateutil.Format(rec.Date))
	}

	year := dateutil.Today().Year()
	absents, err := u.records.ListByStatusInYear(ctx, employeeID, attendance.StatusAbsent, year)
	if err != nil {
		return nil, err
	}
	monthly := map[int]int{}
	for _, rec := range absents {
		monthly[int(rec.Date.UTC().Month())]++
	}
	taken := len(absents)
	remaining := u.cfg.LeaveReportingCap - taken
	if remaining < 0 {
		remaining = 0
	}
	return &HistoryDTO{
		Attendance: grouped,
		LeaveStats: LeaveStatsDTO{
			TotalLeavesTaken: taken,
			MonthlyLeaves:    monthly,
			RemainingLeaves:  remaining,
			MaxAllowedLeaves: u.cfg.LeaveReportingCap,
		},
	}, nil
}

func (u *Usecase) ByDate(ctx context.Context, employeeID uint64, date time.Time) (attendance.Status, error) {
	rec, err := u.records.GetByDate(ctx, employeeID, dateutil.Normalize(date))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", attendance.ErrNotFound
		}
		return "", err
	}
	return rec.Status, nil
}

func (u *Usecase) Delete(ctx context.Context, employeeID uint64, date time.Time) error {
	err := u.records.DeleteByEmployeeDate(ctx, employeeID, dateutil.Normalize(date))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return attendance.ErrNotFound
	}
	return err
}

// BulkAdd inserts direct-entry records in one batch; any duplicate day
// fails the whole batch.
func (u *Usecase) BulkAdd(ctx context.Context, items []BulkItem) error {
	recs := make([]attendance.Record, len(items))
	for i, it := range items {
		recs[i] = attendance.Record{
			EmployeeID: it.EmployeeID,
			Date:       dateutil.Normalize(it.Date),
			Status:     it.Status,
		}
	}
	if err := u.records.BulkCreate(ctx, recs); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return attendance.ErrDateTaken
		}
		return err
	}
	return nil
}

// Search reports per-status day counts in [from, to] plus current-year
// leave stats for every employee matching the directory filter.
func (u *Usecase) Search(ctx context.Context, in SearchInput) ([]SearchRowDTO, error) {
	emps, err := u.employees.Search(ctx, employee.SearchFilter{
		IDs:           in.EmpIDs,
		ClientCompany: in.ClientCompany,
		Location:      in.Location,
		ReportsTo:     in.ReportsTo,
	})
	if err != nil {
		return nil, err
	}
	from, to := dateutil.Normalize(in.FromDate), dateutil.Normalize(in.ToDate)
	year := dateutil.Today().Year()

	out := make([]SearchRowDTO, 0, len(emps))
	for i := range emps {
		emp := &emps[i]
		recs, err := u.records.FindInRange(ctx, emp.ID, from, to)
		if err != nil {
			return nil, err
		}
		counts := StatusCounts{TotalDays: dateutil.DaysInclusive(from, to)}
		for _, rec := range recs {
			switch rec.Status {
			case attendance.StatusPresent:
				counts.Present++
			case attendance.StatusAbsent:
				counts.Absent++
			case attendance.StatusWFH:
				counts.WFH++
			}
		}
		taken64, err := u.records.CountByStatusInYear(ctx, emp.ID, attendance.StatusAbsent, year)
		if err != nil {
			return nil, err
		}
		taken := int(taken64)
		remaining := u.cfg.LeaveReportingCap - taken
		if remaining < 0 {
			remaining = 0
		}
		out = append(out, SearchRowDTO{
			EmpID:         emp.ID,
			Name:          emp.Name,
			ClientCompany: emp.ClientCompany,
			Location:      emp.Location,
			ReportsTo:     emp.ReportsTo,
			Attendance:    counts,
			LeaveStats: SearchLeaveStats{
				LeavesTaken:      taken,
				RemainingLeaves:  remaining,
				MaxAllowedLeaves: u.cfg.LeaveReportingCap,
			},
		})
	}
	return out, nil
}
