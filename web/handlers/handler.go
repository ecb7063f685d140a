package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"rollcall.com/rollcall/core"
	"rollcall.com/rollcall/web/common"
	"rollcall.com/rollcall/web/middlewares"
)

type Endpoint struct {
	store *core.Store
}

// Register wires the record service routes onto r.
func Register(r *gin.RouterGroup, store *core.Store) {
	ep := &Endpoint{store: store}

	r.GET("/employees", ep.ListEmployees)
	r.POST("/employees", ep.CreateEmployee)
	r.DELETE("/employees", ep.DeleteEmployee)

	r.GET("/attendance", ep.ListAttendance)
	r.POST("/attendance", ep.MarkAttendance)
}

// renderError writes the mapped error response. Store failures are also
// logged with the request id so the 500 can be traced back from the client.
func renderError(c *gin.Context, err error) {
	status := common.StatusForError(err)
	if status >= http.StatusInternalServerError {
		log.Printf("request %s: %v", c.GetString(middlewares.RequestIDKey), err)
	}
	c.JSON(status, common.NewErrorResponse(err.Error()))
}
