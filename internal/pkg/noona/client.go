// Package noona is the client for the booking platform HQ API, the
// source of reservation events and the employee catalog.
package noona

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

type Client struct {
	baseURL   string
	token     string
	companyID string
	http      *http.Client
}

func New(baseURL, token, companyID string) *Client {
	return &Client{
		baseURL:   baseURL,
		token:     token,
		companyID: companyID,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// StatusError is a non-2xx answer from the booking platform.
type StatusError struct {
	StatusCode int
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("booking platform: GET %s returned %d", e.Path, e.StatusCode)
}

// EventType carries the color tag used as a service-category proxy.
type EventType struct {
	Color string `json:"color"`
}

// Event is a reservation as the booking platform reports it.
type Event struct {
	ID           string      `json:"id"`
	Status       string      `json:"status"`
	CustomerName string      `json:"customer_name"`
	EndsAt       time.Time   `json:"ends_at"`
	EventTypes   []EventType `json:"event_types"`
}

// Employee is a bookable staff entry from the marketplace catalog.
type Employee struct {
	ID      string `json:"id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

// EventFilter narrows an events query. Zero fields are omitted from
// the JSON filter the API expects.
type EventFilter struct {
	From        time.Time `json:"from,omitempty"`
	To          time.Time `json:"to,omitempty"`
	CreatedFrom time.Time `json:"created_from,omitempty"`
	CreatedTo   time.Time `json:"created_to,omitempty"`
	EmployeeID  string    `json:"employee_id,omitempty"`
}

func (f EventFilter) encode() (string, error) {
	m := map[string]string{}
	if !f.From.IsZero() {
		m["from"] = f.From.UTC().Format(time.RFC3339)
	}
	if !f.To.IsZero() {
		m["to"] = f.To.UTC().Format(time.RFC3339)
	}
	if !f.CreatedFrom.IsZero() {
		m["created_from"] = f.CreatedFrom.UTC().Format(time.RFC3339)
	}
	if !f.CreatedTo.IsZero() {
		m["created_to"] = f.CreatedTo.UTC().Format(time.RFC3339)
	}
	if f.EmployeeID != "" {
		m["employee_id"] = f.EmployeeID
	}
	encoded, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Events lists reservation events matching the filter.
func (c *Client) Events(ctx context.Context, filter EventFilter) ([]Event, error) {
	query := url.Values{}
	for _, field := range []string{"id", "event_types.color", "customer_name", "status", "ends_at"} {
		query.Add("select", field)
	}
	encoded, err := filter.encode()
	if err != nil {
		return nil, fmt.Errorf("booking platform: encode filter: %w", err)
	}
	query.Set("filter", encoded)

	var events []Event
	path := "/hq/companies/" + c.companyID + "/events"
	if _, err := c.get(ctx, path, query, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// EventCount returns only the total number of events matching the
// filter, read from the X-Total-Count header.
func (c *Client) EventCount(ctx context.Context, filter EventFilter) (int, error) {
	query := url.Values{}
	query.Add("select", "")
	query.Set("include_count_header", "true")
	encoded, err := filter.encode()
	if err != nil {
		return 0, fmt.Errorf("booking platform: encode filter: %w", err)
	}
	query.Set("filter", encoded)

	var events []Event
	path := "/hq/companies/" + c.companyID + "/events"
	header, err := c.get(ctx, path, query, &events)
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(header.Get("X-Total-Count"))
	if err != nil {
		return len(events), nil
	}
	return count, nil
}

// Employees lists available bookable staff.
func (c *Client) Employees(ctx context.Context) ([]Employee, error) {
	query := url.Values{}
	query.Set("type", "available")
	query.Add("select[]", "profile")
	query.Add("select[]", "id")

	var employees []Employee
	path := "/marketplace/companies/" + c.companyID + "/employees"
	if _, err := c.get(ctx, path, query, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) (http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("booking platform: build request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("booking platform: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, fmt.Errorf("booking platform: decode %s: %w", path, err)
	}
	return resp.Header, nil
}
