package attendance

import "errors"

// Attendance domain errors
var (
	ErrEmptyAttendance  = errors.New("attendance must contain at least one entry")
	ErrInvalidStatus    = errors.New("status must be Present or Absent")
	ErrUnknownEmployee  = errors.New("attendance references an unknown employee")
	ErrEmployeeNotShown = errors.New("employee is not in the attendance table")
)
