// Package api implements the typed HTTP client for the PASTI backend. Every
// call attaches the bearer token, tags the request with an X-Request-ID, and
// converts transport and envelope failures into the client error kinds before
// they reach callers.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pasti-app/siswa-client/internal/dto"
	"github.com/pasti-app/siswa-client/internal/session"
	appErrors "github.com/pasti-app/siswa-client/pkg/errors"
	"github.com/pasti-app/siswa-client/pkg/metrics"
)

const defaultTimeout = 15 * time.Second

// Client talks to the PASTI backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     session.TokenSource
	logger     *zap.Logger
	metrics    *metrics.Recorder
	userAgent  string
}

// ClientParams groups constructor dependencies.
type ClientParams struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     session.TokenSource
	Logger     *zap.Logger
	Metrics    *metrics.Recorder
	UserAgent  string
}

// NewClient constructs a Client with sane defaults.
func NewClient(params ClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tokens := params.Tokens
	if tokens == nil {
		tokens = session.StaticToken("")
	}
	return &Client{
		baseURL:    params.BaseURL,
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
		metrics:    params.Metrics,
		userAgent:  params.UserAgent,
	}
}

type call struct {
	method   string
	endpoint string
	path     string
	query    url.Values
	body     any
	noAuth   bool
	out      any
}

// do executes one API call and decodes the response envelope into call.out.
func (c *Client) do(ctx context.Context, call call) error {
	var body io.Reader
	if call.body != nil {
		encoded, err := json.Marshal(call.body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "encode request body")
		}
		body = bytes.NewReader(encoded)
	}

	target := c.baseURL + call.path
	if len(call.query) > 0 {
		target += "?" + call.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, call.method, target, body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "build request")
	}
	if call.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setCommonHeaders(req, !call.noAuth)

	envelope, err := c.send(req, call.endpoint)
	if err != nil {
		return err
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = "server reported failure"
		}
		return appErrors.Clone(appErrors.ErrRemoteData, message)
	}

	if call.out != nil {
		if len(envelope.Data) == 0 {
			return appErrors.Clone(appErrors.ErrRemoteData, "empty response payload")
		}
		if err := json.Unmarshal(envelope.Data, call.out); err != nil {
			return appErrors.Wrap(err, appErrors.ErrRemoteData.Code, appErrors.ErrRemoteData.Status, "decode response payload")
		}
	}

	return nil
}

func (c *Client) setCommonHeaders(req *http.Request, auth bool) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if auth {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// send performs the request and maps HTTP-level failures onto error kinds.
// A 401 is surfaced as a distinct session-expired error, never as a generic
// fetch failure.
func (c *Client) send(req *http.Request, endpoint string) (*dto.Envelope, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.metrics.ObserveRequest(req.Method, endpoint, 0, duration)
		c.logger.Warn("api request failed",
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteData.Code, appErrors.ErrRemoteData.Status, "request failed")
	}
	defer resp.Body.Close()

	c.metrics.ObserveRequest(req.Method, endpoint, resp.StatusCode, duration)
	c.logger.Debug("api request",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", duration))

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, appErrors.ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, appErrors.Clone(appErrors.ErrRemoteData, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteData.Code, appErrors.ErrRemoteData.Status, "read response body")
	}

	envelope := &dto.Envelope{}
	if err := json.Unmarshal(raw, envelope); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemoteData.Code, appErrors.ErrRemoteData.Status, "decode response envelope")
	}
	return envelope, nil
}

// ListCourses fetches the course list for a student or a whole class.
func (c *Client) ListCourses(ctx context.Context, scope string, id int) ([]dto.RawCourse, error) {
	var out []dto.RawCourse
	err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "course_list",
		path:     fmt.Sprintf("/matapelajaran/%s/%d", scope, id),
		out:      &out,
	})
	return out, err
}

// AttendanceDetail fetches the per-meeting attendance rows of one schedule.
func (c *Client) AttendanceDetail(ctx context.Context, scheduleID int64, studentID int) ([]dto.RawAttendance, error) {
	query := url.Values{}
	query.Set("siswa_id", fmt.Sprintf("%d", studentID))
	var out []dto.RawAttendance
	err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "attendance_detail",
		path:     fmt.Sprintf("/detail-absensi/jadwal/%d", scheduleID),
		query:    query,
		out:      &out,
	})
	return out, err
}

// CourseInfo fetches the attendance page header for one schedule.
func (c *Client) CourseInfo(ctx context.Context, scheduleID int64) (dto.RawCourseInfo, error) {
	var out dto.RawCourseInfo
	err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "course_info",
		path:     fmt.Sprintf("/detail-absensi/course-info/%d", scheduleID),
		out:      &out,
	})
	return out, err
}

// ListAssignments fetches all assignments for the student's class.
func (c *Client) ListAssignments(ctx context.Context) ([]dto.RawAssignment, error) {
	var out []dto.RawAssignment
	err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "assignment_list",
		path:     "/users/tugas",
		out:      &out,
	})
	return out, err
}

// SubmissionDetail fetches the student's submission for one assignment.
func (c *Client) SubmissionDetail(ctx context.Context, taskID int64) (dto.RawSubmissionDetail, error) {
	var out dto.RawSubmissionDetail
	err := c.do(ctx, call{
		method:   http.MethodGet,
		endpoint: "submission_detail",
		path:     fmt.Sprintf("/users/tugas/%d/detail", taskID),
		out:      &out,
	})
	return out, err
}

// SubmitAssignment creates or updates the student's submission.
func (c *Client) SubmitAssignment(ctx context.Context, taskID int64, req dto.SubmitAssignmentRequest) error {
	return c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "assignment_submit",
		path:     fmt.Sprintf("/users/tugas/%d/submit", taskID),
		body:     req,
	})
}

// DeleteSubmission removes the student's submission for one assignment.
func (c *Client) DeleteSubmission(ctx context.Context, taskID int64) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		endpoint: "assignment_delete",
		path:     fmt.Sprintf("/users/tugas/%d/submit", taskID),
	})
}

// RegisterTeacher submits a teacher registration. The endpoint is public.
func (c *Client) RegisterTeacher(ctx context.Context, req dto.RegisterTeacherRequest) error {
	return c.do(ctx, call{
		method:   http.MethodPost,
		endpoint: "register_teacher",
		path:     "/register-guru",
		body:     req,
		noAuth:   true,
	})
}
