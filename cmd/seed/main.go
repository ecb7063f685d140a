package main

import (
	"context"
	"flag"
	"log"
	"os"

	"rollcall.com/rollcall/core"
	"rollcall.com/rollcall/utils"
)

// Seeds employees and attendance from csv files, e.g.
//
//	seed -config config.yaml -employees employees.csv -attendance attendance.csv
//
// employees.csv: employee_id,full_name,email,department (employee_id may be
// empty to have one generated). attendance.csv: employee_id,date,status.
func main() {
	configPath := flag.String("config", "config.yaml", "path to the yaml config file")
	employeesCSV := flag.String("employees", "", "csv file of employees to create")
	attendanceCSV := flag.String("attendance", "", "csv file of attendance to mark")
	flag.Parse()

	cfg, err := core.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	store, err := core.NewStore(cfg.Database)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	if *employeesCSV != "" {
		for _, row := range dataRows(*employeesCSV, 4) {
			emp, err := store.CreateEmployee(ctx, core.CreateEmployeeInput{
				EmployeeID: row[0],
				FullName:   row[1],
				Email:      row[2],
				Department: row[3],
			})
			if err != nil {
				log.Fatalf("create employee %q: %v", row[1], err)
			}
			log.Printf("created %s (%s)", emp.FullName, emp.EmployeeID)
		}
	}

	if *attendanceCSV != "" {
		for _, row := range dataRows(*attendanceCSV, 3) {
			rec, err := store.MarkAttendance(ctx, core.MarkAttendanceInput{
				EmployeeID: row[0],
				Date:       row[1],
				Status:     row[2],
			})
			if err != nil {
				log.Fatalf("mark attendance for %q on %q: %v", row[0], row[1], err)
			}
			log.Printf("marked %s %s on %s", rec.EmployeeID, rec.Status, rec.Date)
		}
	}
}

// dataRows reads a csv file and returns its rows minus the header.
func dataRows(path string, wantCols int) [][]string {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	rows, err := utils.ParseCSV(f)
	if err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}
	if len(rows) < 2 {
		log.Fatalf("%s has no data rows", path)
	}

	for i, row := range rows {
		if len(row) < wantCols {
			log.Fatalf("%s row %d: want %d columns, got %d", path, i+1, wantCols, len(row))
		}
	}
	return rows[1:]
}
