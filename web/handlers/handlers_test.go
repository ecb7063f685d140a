package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall.com/rollcall/core"
	"rollcall.com/rollcall/web/middlewares"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := core.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), core.LogLevelSilent)
	require.NoError(t, err)

	sqlDB, err := store.DB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, store.Migrate())
	t.Cleanup(func() { store.Close() })

	r := gin.New()
	r.Use(middlewares.RequestID())
	Register(&r.RouterGroup, store)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestCreateEmployeeEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/employees", gin.H{
		"full_name":  "Ada Lovelace",
		"email":      "ada@x.io",
		"department": "Engineering",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var emp core.Employee
	decodeBody(t, w, &emp)
	assert.Regexp(t, `^EMP-[A-Z0-9]{8}$`, emp.EmployeeID)
	assert.Equal(t, "Ada Lovelace", emp.FullName)
	assert.NotZero(t, emp.ID)
	assert.False(t, emp.CreatedAt.IsZero())
}

func TestCreateEmployeeEndpointRejectsBadInput(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{
			name: "missing department",
			body: gin.H{"full_name": "Ada Lovelace", "email": "ada@x.io"},
		},
		{
			name: "bad email",
			body: gin.H{"full_name": "Ada Lovelace", "email": "not-an-email", "department": "Engineering"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/employees", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestCreateEmployeeEndpointDuplicate(t *testing.T) {
	r := newTestRouter(t)

	body := gin.H{
		"employee_id": "EMP-TAKEN001",
		"full_name":   "Ada Lovelace",
		"email":       "ada@x.io",
		"department":  "Engineering",
	}

	w := doJSON(t, r, http.MethodPost, "/employees", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/employees", body)
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestListEmployeesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	for _, id := range []string{"EMP-OLDER001", "EMP-NEWER002"} {
		w := doJSON(t, r, http.MethodPost, "/employees", gin.H{
			"employee_id": id,
			"full_name":   "Employee " + id,
			"email":       "employee@x.io",
			"department":  "Ops",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var employees []core.Employee
	decodeBody(t, w, &employees)
	require.Len(t, employees, 2)
	assert.Equal(t, "EMP-NEWER002", employees[0].EmployeeID)
	assert.Equal(t, "EMP-OLDER001", employees[1].EmployeeID)
}

func TestDeleteEmployeeEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/employees", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing employee_id param")

	// idempotent even when nothing matches
	w = doJSON(t, r, http.MethodDelete, "/employees?employee_id=EMP-NOSUCH01", nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestMarkAttendanceEndpointFailures(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/employees", gin.H{
		"employee_id": "EMP-MARKS001",
		"full_name":   "Ada Lovelace",
		"email":       "ada@x.io",
		"department":  "Engineering",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	tests := []struct {
		name string
		body gin.H
		code int
	}{
		{
			name: "missing status",
			body: gin.H{"employee_id": "EMP-MARKS001", "date": "2024-01-01"},
			code: http.StatusBadRequest,
		},
		{
			name: "invalid status",
			body: gin.H{"employee_id": "EMP-MARKS001", "date": "2024-01-01", "status": "Late"},
			code: http.StatusBadRequest,
		},
		{
			name: "malformed date",
			body: gin.H{"employee_id": "EMP-MARKS001", "date": "01/01/2024", "status": "Present"},
			code: http.StatusBadRequest,
		},
		{
			name: "unknown employee",
			body: gin.H{"employee_id": "EMP-NOSUCH01", "date": "2024-01-01", "status": "Present"},
			code: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/attendance", tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}
}

// Mirrors the full flow: create an employee with a generated business key,
// mark the same day twice and read back exactly one record with the latest
// status.
func TestAttendanceEndToEnd(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/employees", gin.H{
		"full_name":  "Ada Lovelace",
		"email":      "ada@x.io",
		"department": "Engineering",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var emp core.Employee
	decodeBody(t, w, &emp)
	require.Regexp(t, `^EMP-[A-Z0-9]{8}$`, emp.EmployeeID)

	w = doJSON(t, r, http.MethodPost, "/attendance", gin.H{
		"employee_id": emp.EmployeeID,
		"date":        "2024-01-01",
		"status":      "Present",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/attendance", gin.H{
		"employee_id": emp.EmployeeID,
		"date":        "2024-01-01",
		"status":      "Absent",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/attendance?employee_id="+emp.EmployeeID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var records []core.AttendanceRecord
	decodeBody(t, w, &records)
	require.Len(t, records, 1)
	assert.Equal(t, "Absent", records[0].Status)
	assert.Equal(t, "2024-01-01", records[0].Date)
}

func TestRequestIDRoundTrip(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/employees", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middlewares.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/employees", nil)
	req.Header.Set(middlewares.RequestIDHeader, "trace-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-42", w.Header().Get(middlewares.RequestIDHeader))
}
