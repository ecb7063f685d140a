package core

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// DateLayout is the calendar-date format used on the wire and in the date
// column. Dates are stored as ISO-8601 text, so lexical order equals
// chronological order.
const DateLayout = "2006-01-02"

type AttendanceRecord struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID string    `gorm:"column:employee_id;size:32;not null;uniqueIndex:idx_attendance_employee_date,priority:1" json:"employee_id"`
	Date       string    `gorm:"size:10;not null;uniqueIndex:idx_attendance_employee_date,priority:2" json:"date"`
	Status     string    `gorm:"size:10;not null" json:"status"`
	CreatedAt  time.Time `gorm:"<-:create" json:"created_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance"
}

type MarkAttendanceInput struct {
	EmployeeID string
	Date       string
	Status     string
}

// MarkAttendance records a status for one employee on one calendar date.
// Marking the same (employee_id, date) again overwrites the status; the
// composite unique index plus the ON CONFLICT clause make the store the
// serialization point, so concurrent marks can never produce two rows.
func (s *Store) MarkAttendance(ctx context.Context, in MarkAttendanceInput) (*AttendanceRecord, error) {
	rec := AttendanceRecord{
		EmployeeID: strings.TrimSpace(in.EmployeeID),
		Date:       strings.TrimSpace(in.Date),
		Status:     strings.TrimSpace(in.Status),
	}

	if rec.EmployeeID == "" || rec.Date == "" || rec.Status == "" {
		return nil, &ValidationError{Message: "employee_id, date and status are required"}
	}
	if _, err := time.Parse(DateLayout, rec.Date); err != nil {
		return nil, &ValidationError{Message: "date must be formatted as YYYY-MM-DD"}
	}
	if rec.Status != StatusPresent && rec.Status != StatusAbsent {
		return nil, &ValidationError{Message: `status must be either "Present" or "Absent"`}
	}

	if err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status"}),
	}).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, &NotFoundError{Message: "employee not found"}
		}
		return nil, &StoreError{Err: err}
	}

	// Reload by the composite key so the caller sees the surviving row, not
	// the transient insert values.
	var saved AttendanceRecord
	if err := s.DB.WithContext(ctx).
		Where("employee_id = ? AND date = ?", rec.EmployeeID, rec.Date).
		Take(&saved).Error; err != nil {
		return nil, &StoreError{Err: err}
	}
	return &saved, nil
}

// ListAttendance returns attendance records newest date first, optionally
// restricted to one employee. No aggregation happens here; counts are the
// consumer's job (see the report package).
func (s *Store) ListAttendance(ctx context.Context, employeeID string) ([]AttendanceRecord, error) {
	q := s.DB.WithContext(ctx).Order("date DESC, id DESC")
	if employeeID = strings.TrimSpace(employeeID); employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}

	var records []AttendanceRecord
	if err := q.Find(&records).Error; err != nil {
		return nil, &StoreError{Err: err}
	}
	return records, nil
}
