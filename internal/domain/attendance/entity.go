package attendance

import "time"

type Attendance struct {
	EmpID     string
	Date      time.Time
	Status    Status
	UpdatedAt time.Time
}

type Status string

const (
	StatusUnset   Status = ""
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Choices lists the selectable statuses, unset first.
var Choices = []Status{StatusUnset, StatusPresent, StatusAbsent}

func (s Status) IsValid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// ParseStatus accepts the selector values, including the empty "unset" choice.
func ParseStatus(value string) (Status, error) {
	switch s := Status(value); s {
	case StatusUnset, StatusPresent, StatusAbsent:
		return s, nil
	}
	return StatusUnset, ErrInvalidStatus
}

// AttendanceMap maps employee IDs to their status for one submission.
type AttendanceMap map[string]Status

// Clone returns an independent copy.
func (m AttendanceMap) Clone() AttendanceMap {
	out := make(AttendanceMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Retain drops every key not present in ids and returns the removed keys.
func (m AttendanceMap) Retain(ids map[string]struct{}) []string {
	var removed []string
	for k := range m {
		if _, ok := ids[k]; !ok {
			removed = append(removed, k)
			delete(m, k)
		}
	}
	return removed
}
