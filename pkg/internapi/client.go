package internapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ArowuTest/intern-dashboard/internal/models"
)

// Client is a typed client for the intern dashboard API
type Client struct {
	BaseURL string
	client  *http.Client
}

// APIError is returned when the server answers with a non-2xx status
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("intern api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("intern api: status %d: %s", e.StatusCode, e.Message)
}

// NewClient creates a client for baseURL, e.g. http://localhost:3000/api.
// Requests carry no timeout; callers bound them through the context.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// ListInterns fetches GET /interns
func (c *Client) ListInterns(ctx context.Context) ([]*models.Intern, error) {
	var interns []*models.Intern
	if err := c.do(ctx, http.MethodGet, "/interns", nil, &interns); err != nil {
		return nil, err
	}
	return interns, nil
}

// GetIntern fetches GET /intern/:id
func (c *Client) GetIntern(ctx context.Context, id string) (*models.Intern, error) {
	var intern models.Intern
	if err := c.do(ctx, http.MethodGet, "/intern/"+id, nil, &intern); err != nil {
		return nil, err
	}
	return &intern, nil
}

// CreateIntern posts a signup to POST /interns
func (c *Client) CreateIntern(ctx context.Context, req *models.CreateInternRequest) (*models.CreateInternResponse, error) {
	var resp models.CreateInternResponse
	if err := c.do(ctx, http.MethodPost, "/interns", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DemoData fetches GET /demo-data
func (c *Client) DemoData(ctx context.Context) (*models.DemoData, error) {
	var demo models.DemoData
	if err := c.do(ctx, http.MethodGet, "/demo-data", nil, &demo); err != nil {
		return nil, err
	}
	return &demo, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody models.ErrorResponse
		if json.NewDecoder(resp.Body).Decode(&errBody) == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
