package attendance

import (
	"sort"

	"github.com/cmlabs-hris/employee-portal/internal/pkg/validator"
)

// SubmitAttendanceRequest is the body of POST /submitAttendance.
type SubmitAttendanceRequest struct {
	Attendance AttendanceMap `json:"attendance"`
}

func (r *SubmitAttendanceRequest) Validate() error {
	if len(r.Attendance) == 0 {
		return ErrEmptyAttendance
	}

	var errs validator.ValidationErrors

	ids := make([]string, 0, len(r.Attendance))
	for id := range r.Attendance {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance",
				Message: "employee ID must not be empty",
			})
			continue
		}
		if !r.Attendance[id].IsValid() {
			errs = append(errs, validator.ValidationError{
				Field:   "attendance." + id,
				Message: ErrInvalidStatus.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SubmitAttendanceResponse summarises a stored submission.
type SubmitAttendanceResponse struct {
	Date     string `json:"date"`
	Recorded int    `json:"recorded"`
}

// DailyAttendanceResponse is the body of GET /attendance.
type DailyAttendanceResponse struct {
	Date       string        `json:"date"`
	Attendance AttendanceMap `json:"attendance"`
}
