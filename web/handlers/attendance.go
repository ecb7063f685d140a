package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rollcall.com/rollcall/core"
	"rollcall.com/rollcall/web/common"
)

func (ep *Endpoint) ListAttendance(c *gin.Context) {
	records, err := ep.store.ListAttendance(c.Request.Context(), c.Query("employee_id"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (ep *Endpoint) MarkAttendance(c *gin.Context) {
	var dto MarkAttendanceDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	date := ""
	if dto.Date != nil {
		date = dto.Date.String()
	}

	rec, err := ep.store.MarkAttendance(c.Request.Context(), core.MarkAttendanceInput{
		EmployeeID: dto.EmployeeID,
		Date:       date,
		Status:     dto.Status,
	})
	if err != nil {
		renderError(c, err)
		return
	}

	// 201 whether the row was inserted or its status overwritten
	c.JSON(http.StatusCreated, rec)
}
