package handlers

import (
	"rollcall.com/rollcall/web/common"
)

type CreateEmployeeDTO struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department" binding:"required"`
}

type MarkAttendanceDTO struct {
	EmployeeID string           `json:"employee_id" binding:"required"`
	Date       *common.DateOnly `json:"date" binding:"required"`
	Status     string           `json:"status" binding:"required"`
}
