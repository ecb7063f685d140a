package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rollcall.com/rollcall/core"
)

func employee(id string) core.Employee {
	return core.Employee{EmployeeID: id, FullName: "Employee " + id, Email: "e@x.io", Department: "Ops"}
}

func record(id, date, status string) core.AttendanceRecord {
	return core.AttendanceRecord{EmployeeID: id, Date: date, Status: status}
}

func TestSnapshot(t *testing.T) {
	employees := []core.Employee{employee("EMP-A"), employee("EMP-B"), employee("EMP-C")}

	tests := []struct {
		name    string
		records []core.AttendanceRecord
		date    string
		want    DailySnapshot
	}{
		{
			name: "counts only the requested date",
			records: []core.AttendanceRecord{
				record("EMP-A", "2024-01-01", core.StatusPresent),
				record("EMP-B", "2024-01-01", core.StatusAbsent),
				record("EMP-C", "2023-12-31", core.StatusPresent),
			},
			date: "2024-01-01",
			want: DailySnapshot{Date: "2024-01-01", TotalEmployees: 3, Present: 1, Absent: 1, AttendanceRate: 33},
		},
		{
			name: "rate rounds up",
			records: []core.AttendanceRecord{
				record("EMP-A", "2024-01-01", core.StatusPresent),
				record("EMP-B", "2024-01-01", core.StatusPresent),
			},
			date: "2024-01-01",
			want: DailySnapshot{Date: "2024-01-01", TotalEmployees: 3, Present: 2, Absent: 0, AttendanceRate: 67},
		},
		{
			name:    "no marks",
			records: nil,
			date:    "2024-01-01",
			want:    DailySnapshot{Date: "2024-01-01", TotalEmployees: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Snapshot(employees, tt.records, tt.date))
		})
	}
}

func TestSnapshotEmptyRoster(t *testing.T) {
	got := Snapshot(nil, []core.AttendanceRecord{record("EMP-A", "2024-01-01", core.StatusPresent)}, "2024-01-01")

	// no division by zero: rate stays at zero without employees
	assert.Equal(t, 0, got.AttendanceRate)
	assert.Equal(t, 1, got.Present)
}

func TestEmployeeHistory(t *testing.T) {
	records := []core.AttendanceRecord{
		record("EMP-A", "2024-01-01", core.StatusPresent),
		record("EMP-A", "2024-01-02", core.StatusAbsent),
		record("EMP-A", "2024-01-03", core.StatusPresent),
	}

	assert.Equal(t, History{DaysMarked: 3, Present: 2, Absent: 1}, EmployeeHistory(records))
	assert.Equal(t, History{}, EmployeeHistory(nil))
}

func TestHistoryByEmployee(t *testing.T) {
	records := []core.AttendanceRecord{
		record("EMP-A", "2024-01-01", core.StatusPresent),
		record("EMP-B", "2024-01-01", core.StatusAbsent),
		record("EMP-A", "2024-01-02", core.StatusAbsent),
	}

	got := HistoryByEmployee(records)
	assert.Len(t, got, 2)
	assert.Equal(t, History{DaysMarked: 2, Present: 1, Absent: 1}, got["EMP-A"])
	assert.Equal(t, History{DaysMarked: 1, Present: 0, Absent: 1}, got["EMP-B"])
}
