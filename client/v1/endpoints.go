package v1

import (
	"encoding/json"

	"rollcall.com/rollcall/core"
)

type EmployeeEndpoint struct {
	transport *Transport
}

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id,omitempty"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func (e *EmployeeEndpoint) List() ([]core.Employee, error) {
	body, err := e.transport.Get("/employees", nil)
	if err != nil {
		return nil, err
	}

	var employees []core.Employee
	if err := json.Unmarshal(body, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (e *EmployeeEndpoint) Create(req CreateEmployeeRequest) (*core.Employee, error) {
	body, err := e.transport.Post("/employees", req, nil)
	if err != nil {
		return nil, err
	}

	var emp core.Employee
	if err := json.Unmarshal(body, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (e *EmployeeEndpoint) Delete(employeeID string) error {
	_, err := e.transport.Delete("/employees", map[string]string{"employee_id": employeeID})
	return err
}

type AttendanceEndpoint struct {
	transport *Transport
}

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// List fetches attendance records, newest date first. employeeID may be
// empty to fetch everything.
func (e *AttendanceEndpoint) List(employeeID string) ([]core.AttendanceRecord, error) {
	query := map[string]string{}
	if employeeID != "" {
		query["employee_id"] = employeeID
	}

	body, err := e.transport.Get("/attendance", query)
	if err != nil {
		return nil, err
	}

	var records []core.AttendanceRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (e *AttendanceEndpoint) Mark(req MarkAttendanceRequest) (*core.AttendanceRecord, error) {
	body, err := e.transport.Post("/attendance", req, nil)
	if err != nil {
		return nil, err
	}

	var rec core.AttendanceRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
