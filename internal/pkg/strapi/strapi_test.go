package strapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryEncode(t *testing.T) {
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 999000000, time.UTC)

	q := NewQuery().
		WhereBetween("date", from, to).
		Fields("sum")
	q.Populate("personal").Fields("name")

	encoded := q.Encode()
	assert.Contains(t, encoded, "filters[date][$gte]=2025-03-01T00%3A00%3A00.000Z")
	assert.Contains(t, encoded, "filters[date][$lte]=2025-03-31T23%3A59%3A59.999Z")
	assert.Contains(t, encoded, "fields[0]=sum")
	assert.Contains(t, encoded, "populate[personal][fields][0]=name")
}

func TestQueryNestedPopulate(t *testing.T) {
	q := NewQuery()
	q.Populate("personal").Fields("name", "excessThreshold").
		Populate("rates").Fields("rate", "hourlyRate", "from", "to", "typeWork")

	encoded := q.Encode()
	assert.Contains(t, encoded, "populate[personal][fields][1]=excessThreshold")
	assert.Contains(t, encoded, "populate[personal][populate][rates][fields][0]=rate")
	assert.Contains(t, encoded, "populate[personal][populate][rates][fields][4]=typeWork")
}

func TestQueryPagination(t *testing.T) {
	q := NewQuery().Paginate(1, 70).Sort("date:desc")

	encoded := q.Encode()
	assert.Contains(t, encoded, "pagination[page]=1")
	assert.Contains(t, encoded, "pagination[pageSize]=70")
	assert.Contains(t, encoded, "sort[0]=date%3Adesc")
}

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantValue float64
		wantValid bool
	}{
		{"plain number", `123.5`, 123.5, true},
		{"number in string", `"115"`, 115, true},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"garbage string", `"abc"`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tt.json), &n)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValue, n.Value)
			assert.Equal(t, tt.wantValid, n.Valid)
		})
	}
}

func TestNumberOr(t *testing.T) {
	assert.Equal(t, float64(115), Number{}.Or(115))
	assert.Equal(t, float64(80), Number{Value: 80, Valid: true}.Or(115))
	assert.Equal(t, float64(0), Number{}.Float())
}

func TestClientGetUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/penalties", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[{"sum":"250"},{"sum":100}]}`))
	}))
	defer srv.Close()

	client := New(srv.URL, "secret")

	var records []struct {
		Sum Number `json:"sum"`
	}
	err := client.Get(context.Background(), "/api/penalties", NewQuery().Fields("sum"), &records)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, float64(250), records[0].Sum.Float())
	assert.Equal(t, float64(100), records[1].Sum.Float())
}

func TestClientGetStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := New(srv.URL, "")

	var out []struct{}
	err := client.Get(context.Background(), "/api/costs", nil, &out)
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}
