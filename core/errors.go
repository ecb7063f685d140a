package core

// The service boundary classifies every failure into one of four kinds so
// handlers can map them to stable status codes without inspecting driver
// errors.

// ValidationError reports input rejected before any store call was made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation, e.g. a duplicate
// employee_id.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError reports a referential failure, e.g. marking attendance for
// an employee that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// StoreError wraps any persistence failure that is not a constraint
// violation.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return "store error: " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }
