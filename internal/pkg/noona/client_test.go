package noona

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/hq/companies/comp-1/events", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		filter := r.URL.Query().Get("filter")
		assert.Contains(t, filter, `"from":"2025-04-01T00:00:00Z"`)
		assert.Contains(t, filter, `"employee_id":"emp-9"`)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"e1","status":"cancelled","customer_name":"Jana","ends_at":"2025-04-02T10:00:00Z","event_types":[{"color":"#FF787D"}]},
			{"id":"e2","status":"confirmed","customer_name":"Petra","ends_at":"2025-04-03T12:00:00Z","event_types":[]}
		]`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", "comp-1")

	events, err := client.Events(context.Background(), EventFilter{
		From:       time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		To:         time.Date(2025, 4, 30, 23, 59, 59, 0, time.UTC),
		EmployeeID: "emp-9",
	})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "cancelled", events[0].Status)
	assert.Equal(t, "#FF787D", events[0].EventTypes[0].Color)
	assert.Empty(t, events[1].EventTypes)
}

func TestEventCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("include_count_header"))
		w.Header().Set("X-Total-Count", "137")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", "comp-1")

	count, err := client.EventCount(context.Background(), EventFilter{
		CreatedFrom: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		CreatedTo:   time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, 137, count)
}

func TestEventCountMissingHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"e1"},{"id":"e2"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", "comp-1")

	count, err := client.EventCount(context.Background(), EventFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestEmployees(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/marketplace/companies/comp-1/employees", r.URL.Path)
		assert.Equal(t, "available", r.URL.Query().Get("type"))
		w.Write([]byte(`[{"id":"emp-1","profile":{"name":"Alena K"}}]`))
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", "comp-1")

	employees, err := client.Employees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Alena K", employees[0].Profile.Name)
}

func TestStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := New(srv.URL, "tok", "comp-1")

	_, err := client.Events(context.Background(), EventFilter{})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}
