package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rollcall.com/rollcall/core"
	"rollcall.com/rollcall/web/common"
)

func (ep *Endpoint) ListEmployees(c *gin.Context) {
	employees, err := ep.store.ListEmployees(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (ep *Endpoint) CreateEmployee(c *gin.Context) {
	var dto CreateEmployeeDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	emp, err := ep.store.CreateEmployee(c.Request.Context(), core.CreateEmployeeInput{
		EmployeeID: dto.EmployeeID,
		FullName:   dto.FullName,
		Email:      dto.Email,
		Department: dto.Department,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, emp)
}

func (ep *Endpoint) DeleteEmployee(c *gin.Context) {
	if err := ep.store.DeleteEmployee(c.Request.Context(), c.Query("employee_id")); err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted successfully"})
}
