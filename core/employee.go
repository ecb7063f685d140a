package core

import (
	"context"
	"errors"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Employee struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID string    `gorm:"column:employee_id;size:32;not null;uniqueIndex" json:"employee_id"`
	FullName   string    `gorm:"size:255;not null" json:"full_name"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	Department string    `gorm:"size:255;not null" json:"department"`
	CreatedAt  time.Time `gorm:"<-:create" json:"created_at"`

	// Attendance rows reference the business key, not the surrogate id, and
	// keep the employee alive while any of them exist.
	Attendance []AttendanceRecord `gorm:"foreignKey:EmployeeID;references:EmployeeID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}

// emailPattern requires a local part, a domain and a dotted suffix, nothing
// more. It is deliberately permissive; existing records were accepted under
// the same shape.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const employeeIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewEmployeeID builds an EMP-XXXXXXXX business key from the last four
// base36 chars of the current unix millis plus four random base36 chars.
// Statistically unique per request, not guaranteed: a collision surfaces as
// a ConflictError on create.
func NewEmployeeID() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	if len(ts) > 4 {
		ts = ts[len(ts)-4:]
	}
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = employeeIDAlphabet[rand.IntN(len(employeeIDAlphabet))]
	}
	return "EMP-" + strings.ToUpper(ts+string(suffix))
}

type CreateEmployeeInput struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// ListEmployees returns every employee, most recently created first.
func (s *Store) ListEmployees(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	if err := s.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&employees).Error; err != nil {
		return nil, &StoreError{Err: err}
	}
	return employees, nil
}

// CreateEmployee validates the input, assigns a business key when the
// caller did not supply one and persists the record. The employee_id unique
// index is the only authority on uniqueness.
func (s *Store) CreateEmployee(ctx context.Context, in CreateEmployeeInput) (*Employee, error) {
	emp := Employee{
		EmployeeID: strings.TrimSpace(in.EmployeeID),
		FullName:   strings.TrimSpace(in.FullName),
		Email:      strings.TrimSpace(in.Email),
		Department: strings.TrimSpace(in.Department),
	}

	if emp.FullName == "" || emp.Email == "" || emp.Department == "" {
		return nil, &ValidationError{Message: "full_name, email and department are required"}
	}
	if !emailPattern.MatchString(emp.Email) {
		return nil, &ValidationError{Message: "invalid email format"}
	}
	if emp.EmployeeID == "" {
		emp.EmployeeID = NewEmployeeID()
	}

	if err := s.DB.WithContext(ctx).Create(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Message: "employee ID already exists"}
		}
		return nil, &StoreError{Err: err}
	}

	return &emp, nil
}

// DeleteEmployee deletes by business key. Zero rows matched is still
// success, so resubmitting a delete is harmless. An employee with
// attendance rows is protected by the foreign key and comes back as a
// ConflictError.
func (s *Store) DeleteEmployee(ctx context.Context, employeeID string) error {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return &ValidationError{Message: "employee_id is required"}
	}

	if err := s.DB.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&Employee{}).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return &ConflictError{Message: "employee has attendance records"}
		}
		return &StoreError{Err: err}
	}
	return nil
}
