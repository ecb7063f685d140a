package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"rollcall.com/rollcall/core"
	"rollcall.com/rollcall/utils"
)

const (
	employeesSheet  = "Employees"
	attendanceSheet = "Attendance"
	summarySheet    = "Summary"
)

// WriteWorkbook saves an xlsx workbook with the roster, the raw attendance
// listing and per-employee totals.
func WriteWorkbook(path string, employees []core.Employee, records []core.AttendanceRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", employeesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	employeeRows := utils.Map(employees, func(e core.Employee) []any {
		return []any{e.EmployeeID, e.FullName, e.Email, e.Department, e.CreatedAt.Format(core.DateLayout)}
	})
	if err := writeSheet(f, employeesSheet,
		[]any{"Employee ID", "Full Name", "Email", "Department", "Created"},
		employeeRows); err != nil {
		return err
	}

	if _, err := f.NewSheet(attendanceSheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	attendanceRows := utils.Map(records, func(r core.AttendanceRecord) []any {
		return []any{r.EmployeeID, r.Date, r.Status}
	})
	if err := writeSheet(f, attendanceSheet,
		[]any{"Employee ID", "Date", "Status"},
		attendanceRows); err != nil {
		return err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}
	totals := HistoryByEmployee(records)
	// row order follows the roster so the sheet is stable between runs
	summaryRows := utils.Map(employees, func(e core.Employee) []any {
		h := totals[e.EmployeeID]
		return []any{e.EmployeeID, h.DaysMarked, h.Present, h.Absent}
	})
	if err := writeSheet(f, summarySheet,
		[]any{"Employee ID", "Days Marked", "Present", "Absent"},
		summaryRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header on %s: %w", sheet, err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write row on %s: %w", sheet, err)
		}
	}
	return nil
}
