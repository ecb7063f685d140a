package v1

type RollcallClient struct {
	Transport  *Transport
	Employees  *EmployeeEndpoint
	Attendance *AttendanceEndpoint
}

// NewRollcallClient initializes the API client. token may be empty; when
// set it is passed through as a bearer token.
func NewRollcallClient(baseURL string, token string) *RollcallClient {
	t := NewTransport(baseURL, token)
	return &RollcallClient{
		Transport:  t,
		Employees:  &EmployeeEndpoint{transport: t},
		Attendance: &AttendanceEndpoint{transport: t},
	}
}
