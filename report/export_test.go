package report

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rollcall.com/rollcall/core"
)

func TestWriteWorkbook(t *testing.T) {
	employees := []core.Employee{employee("EMP-A"), employee("EMP-B")}
	records := []core.AttendanceRecord{
		record("EMP-A", "2024-01-02", core.StatusPresent),
		record("EMP-A", "2024-01-01", core.StatusAbsent),
		record("EMP-B", "2024-01-02", core.StatusPresent),
	}

	path := filepath.Join(t.TempDir(), "attendance.xlsx")
	require.NoError(t, WriteWorkbook(path, employees, records))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{employeesSheet, attendanceSheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(attendanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus three records")
	assert.Equal(t, []string{"EMP-A", "2024-01-02", "Present"}, rows[1])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"EMP-A", "2", "1", "1"}, summary[1])
	assert.Equal(t, []string{"EMP-B", "1", "1", "0"}, summary[2])
}
