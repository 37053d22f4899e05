package statistics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Count is an employee count. It is written as a decimal string and read from
// either a JSON string (its leading integer) or a JSON number (truncated).
type Count int64

func (c Count) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(c), 10))
}

func (c *Count) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		n, ok := leadingInt(raw)
		if !ok || n < 0 {
			return fmt.Errorf("%w: %s", ErrInvalidCount, data)
		}
		*c = Count(n)
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || f < 0 || f >= math.MaxInt64 {
		return fmt.Errorf("%w: %s", ErrInvalidCount, data)
	}
	*c = Count(math.Trunc(f))
	return nil
}

// leadingInt parses the base-10 integer at the start of s, after optional
// whitespace and sign, ignoring anything that follows it ("3.0" is 3).
func leadingInt(s string) (int64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

type RoleCount struct {
	Role  string `json:"role"`
	Count Count  `json:"count"`
}

type DeptCount struct {
	Dept  string `json:"dept"`
	Count Count  `json:"count"`
}

// StatisticsResponse is the body of GET /employees/statistics.
type StatisticsResponse struct {
	Roles       []RoleCount `json:"roles"`
	Departments []DeptCount `json:"departments"`
}

// RoleCounts flattens the role grouping.
func (r StatisticsResponse) RoleCounts() []StatisticCount {
	out := make([]StatisticCount, 0, len(r.Roles))
	for _, role := range r.Roles {
		out = append(out, StatisticCount{Name: role.Role, Count: int64(role.Count)})
	}
	return out
}

// DepartmentCounts flattens the department grouping.
func (r StatisticsResponse) DepartmentCounts() []StatisticCount {
	out := make([]StatisticCount, 0, len(r.Departments))
	for _, dept := range r.Departments {
		out = append(out, StatisticCount{Name: dept.Dept, Count: int64(dept.Count)})
	}
	return out
}
