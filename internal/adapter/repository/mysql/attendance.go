package mysql

import (
	"context"
	"time"

	attendanceDomain "hr-attendance-service/internal/domain/attendance"

	"gorm.io/gorm"
)

type AttendanceRepository struct{ db *gorm.DB }

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Create(ctx context.Context, rec *attendanceDomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *AttendanceRepository) BulkCreate(ctx context.Context, recs []attendanceDomain.Record) error {
	return r.db.WithContext(ctx).Create(&recs).Error
}

func (r *AttendanceRepository) Save(ctx context.Context, rec *attendanceDomain.Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *AttendanceRepository) GetByDate(ctx context.Context, employeeID uint64, date time.Time) (*attendanceDomain.Record, error) {
	var out attendanceDomain.Record
	res := r.db.WithContext(ctx).
		Where("emp_id = ? AND date = ?", employeeID, date).
		First(&out)
	return &out, res.Error
}

func (r *AttendanceRepository) FindInRange(ctx context.Context, employeeID uint64, from, to time.Time) ([]attendanceDomain.Record, error) {
	var out []attendanceDomain.Record
	res := r.db.WithContext(ctx).
		Where("emp_id = ? AND date BETWEEN ? AND ?", employeeID, from, to).
		Order("date").
		Find(&out)
	return out, res.Error
}

func (r *AttendanceRepository) ListByStatusInYear(ctx context.Context, employeeID uint64, status attendanceDomain.Status, year int) ([]attendanceDomain.Record, error) {
	start, end := yearBounds(year)
	var out []attendanceDomain.Record
	res := r.db.WithContext(ctx).
		Where("emp_id = ? AND status = ? AND date >= ? AND date < ?", employeeID, status, start, end).
		Order("date").
		Find(&out)
	return out, res.Error
}

func (r *AttendanceRepository) CountByStatusInYear(ctx context.Context, employeeID uint64, status attendanceDomain.Status, year int) (int64, error) {
	start, end := yearBounds(year)
	var n int64
	res := r.db.WithContext(ctx).
		Model(&attendanceDomain.Record{}).
		Where("emp_id = ? AND status = ? AND date >= ? AND date < ?", employeeID, status, start, end).
		Count(&n)
	return n, res.Error
}

func (r *AttendanceRepository) DeleteBySource(ctx context.Context, requestID uint64) error {
	return r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Delete(&attendanceDomain.Record{}).Error
}

func (r *AttendanceRepository) DeleteByEmployeeDate(ctx context.Context, employeeID uint64, date time.Time) error {
	res := r.db.WithContext(ctx).
		Where("emp_id = ? AND date = ?", employeeID, date).
		Delete(&attendanceDomain.Record{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// yearBounds gives [Jan 1, Jan 1 of next year) so the date column can be
// range-scanned instead of extracting YEAR() per row.
func yearBounds(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}
