package main

import (
	"flag"
	"log"
	"os"
	"time"

	v1 "rollcall.com/rollcall/client/v1"
	"rollcall.com/rollcall/core"
	"rollcall.com/rollcall/report"
)

// Pulls the roster and the full attendance listing from a running record
// service and writes the xlsx report.
func main() {
	baseURL := flag.String("url", "http://localhost:8090", "record service base url")
	out := flag.String("out", "attendance.xlsx", "output workbook path")
	date := flag.String("date", time.Now().Format(core.DateLayout), "date for the daily snapshot")
	flag.Parse()

	client := v1.NewRollcallClient(*baseURL, os.Getenv("ROLLCALL_TOKEN"))

	employees, err := client.Employees.List()
	if err != nil {
		log.Fatal(err)
	}

	records, err := client.Attendance.List("")
	if err != nil {
		log.Fatal(err)
	}

	snap := report.Snapshot(employees, records, *date)
	log.Printf("%s: %d present, %d absent of %d employees (%d%% attendance)",
		snap.Date, snap.Present, snap.Absent, snap.TotalEmployees, snap.AttendanceRate)

	if err := report.WriteWorkbook(*out, employees, records); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}
