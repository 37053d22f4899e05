package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cmlabs-hris/employee-portal/internal/domain/attendance"
	"github.com/cmlabs-hris/employee-portal/internal/domain/employee"
	"github.com/cmlabs-hris/employee-portal/internal/domain/statistics"
)

const (
	defaultTimeout = 30 * time.Second

	// maxErrorBody bounds how much of a rejected reply is read for its message.
	maxErrorBody = 64 << 10
)

// ErrNetwork wraps transport failures and undecodable responses.
var ErrNetwork = errors.New("network error")

// StatusError is returned when the server answers with an unexpected status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the employee REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for baseURL. A non-positive timeout selects the default.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type messageBody struct {
	Message string `json:"message"`
}

// GetEmployees fetches the full employee list.
func (c *Client) GetEmployees(ctx context.Context) ([]employee.EmployeeRecord, error) {
	var body employee.ListEmployeesResponse
	if err := c.do(ctx, http.MethodGet, "/getEmployees", nil, http.StatusOK, &body); err != nil {
		return nil, err
	}
	if body.Employees == nil {
		body.Employees = []employee.EmployeeRecord{}
	}
	return body.Employees, nil
}

// AddEmployee registers rec and returns the server's message. Only 201 counts as success.
func (c *Client) AddEmployee(ctx context.Context, rec employee.EmployeeRecord) (string, error) {
	var body messageBody
	if err := c.do(ctx, http.MethodPost, "/addEmployee", rec, http.StatusCreated, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}

// SubmitAttendance posts the whole attendance map and returns the server's message.
func (c *Client) SubmitAttendance(ctx context.Context, marks attendance.AttendanceMap) (string, error) {
	var body messageBody
	req := attendance.SubmitAttendanceRequest{Attendance: marks}
	if err := c.do(ctx, http.MethodPost, "/submitAttendance", req, http.StatusOK, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}

// GetStatistics fetches role and department counts.
func (c *Client) GetStatistics(ctx context.Context) (*statistics.StatisticsResponse, error) {
	var body statistics.StatisticsResponse
	if err := c.do(ctx, http.MethodGet, "/employees/statistics", nil, http.StatusOK, &body); err != nil {
		return nil, err
	}
	return &body, nil
}

func (c *Client) do(ctx context.Context, method, path string, in any, want int, out any) error {
	var reqBody io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		var body messageBody
		_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBody)).Decode(&body)
		return &StatusError{StatusCode: resp.StatusCode, Message: body.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: decode %s response: %v", ErrNetwork, path, err)
		}
	}
	return nil
}
