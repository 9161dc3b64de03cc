package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/geocoder89/employeehub/internal/domain/employee"
	"github.com/geocoder89/employeehub/internal/form"
)

const employeesPath = "/api/employees"

const (
	MsgAdded       = "Employee added successfully!"
	MsgAddFailed   = "Failed to add employee."
	MsgUnreachable = "An error occurred. Please try again."
)

type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackError   FeedbackType = "error"
)

// Feedback is the banner shown after a submission attempt.
type Feedback struct {
	Type    FeedbackType
	Message string
}

func (f Feedback) OK() bool { return f.Type == FeedbackSuccess }

// ErrInvalidForm is returned by Submit when local validation fails; nothing was sent.
var ErrInvalidForm = errors.New("form has invalid fields")

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
	now     func() time.Time
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithClock overrides the clock used for the joining date check.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     slog.Default(),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Submit validates f and, only if every field passes, sends it in a single POST. The returned
// Errors are non-empty exactly when ErrInvalidForm is returned. Server and transport failures are
// reported through Feedback, not as an error; there are no retries.
func (c *Client) Submit(ctx context.Context, f form.Form) (Feedback, form.Errors, error) {
	if errs := f.Validate(c.now()); len(errs) > 0 {
		return Feedback{}, errs, ErrInvalidForm
	}

	body, err := json.Marshal(f)
	if err != nil {
		return Feedback{}, nil, fmt.Errorf("encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+employeesPath, bytes.NewReader(body))
	if err != nil {
		return Feedback{}, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "submit employee failed", "err", err)
		return Feedback{Type: FeedbackError, Message: MsgUnreachable}, nil, nil
	}
	defer resp.Body.Close()

	var payload struct {
		Message string `json:"message"`
	}
	decodeErr := json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Feedback{Type: FeedbackSuccess, Message: MsgAdded}, nil, nil
	}

	if decodeErr != nil || payload.Message == "" {
		return Feedback{Type: FeedbackError, Message: MsgAddFailed}, nil, nil
	}

	return Feedback{Type: FeedbackError, Message: payload.Message}, nil, nil
}

// List fetches every stored employee.
func (c *Client) List(ctx context.Context) ([]employee.Employee, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+employeesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
			return nil, fmt.Errorf("list employees: %s (status %d)", payload.Message, resp.StatusCode)
		}
		return nil, fmt.Errorf("list employees: status %d", resp.StatusCode)
	}

	var out []employee.Employee
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}

	return out, nil
}
