package report

import (
	"math"

	"rollcall.com/rollcall/core"
	"rollcall.com/rollcall/utils"
)

// Aggregation stays on the consumer side of the record service: these are
// plain functions over fetched slices, so dashboards get their counts
// without bespoke aggregation endpoints.

// DailySnapshot is the dashboard KPI row for one calendar date.
type DailySnapshot struct {
	Date           string `json:"date"`
	TotalEmployees int    `json:"total_employees"`
	Present        int    `json:"present"`
	Absent         int    `json:"absent"`
	// AttendanceRate is Present over TotalEmployees as a rounded
	// percentage, zero when there are no employees.
	AttendanceRate int `json:"attendance_rate"`
}

// Snapshot counts the given date's records against the employee roster.
func Snapshot(employees []core.Employee, records []core.AttendanceRecord, date string) DailySnapshot {
	marked := utils.Filter(records, func(r core.AttendanceRecord) bool {
		return r.Date == date
	})

	s := DailySnapshot{Date: date, TotalEmployees: len(employees)}
	for _, r := range marked {
		switch r.Status {
		case core.StatusPresent:
			s.Present++
		case core.StatusAbsent:
			s.Absent++
		}
	}

	if s.TotalEmployees > 0 {
		s.AttendanceRate = int(math.Round(float64(s.Present) / float64(s.TotalEmployees) * 100))
	}
	return s
}

// History totals one employee's full attendance record.
type History struct {
	DaysMarked int `json:"days_marked"`
	Present    int `json:"present"`
	Absent     int `json:"absent"`
}

func EmployeeHistory(records []core.AttendanceRecord) History {
	h := History{DaysMarked: len(records)}
	for _, r := range records {
		switch r.Status {
		case core.StatusPresent:
			h.Present++
		case core.StatusAbsent:
			h.Absent++
		}
	}
	return h
}

// HistoryByEmployee buckets a mixed listing into per-employee totals.
func HistoryByEmployee(records []core.AttendanceRecord) map[string]History {
	grouped := utils.GroupBy(records, func(r core.AttendanceRecord) string {
		return r.EmployeeID
	})

	out := make(map[string]History, len(grouped))
	for id, recs := range grouped {
		out[id] = EmployeeHistory(recs)
	}
	return out
}
