package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"workoutlog/internal/app/client/config"
	"workoutlog/internal/domain/workout"
)

func newTestClient(t *testing.T, primary, fallback string) *httpClient {
	t.Helper()
	cfg := &config.Config{
		ServerAddress:   strings.TrimPrefix(primary, "http://"),
		FallbackAddress: strings.TrimPrefix(fallback, "http://"),
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHTTPClient(cfg, log)
}

func TestHTTPClient_ErrorExtraction(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{
			name:     "errors list joined with spaces",
			status:   400,
			body:     `{"errors":["Date is required.","Type is required."]}`,
			expected: "Date is required. Type is required.",
		},
		{
			name:     "single error field",
			status:   404,
			body:     `{"error":"Not found"}`,
			expected: "Not found",
		},
		{
			name:     "errors list wins over error field",
			status:   400,
			body:     `{"errors":["first"],"error":"second"}`,
			expected: "first",
		},
		{
			name:     "unparseable body falls back to status",
			status:   500,
			body:     `<html>boom</html>`,
			expected: "Request failed (500)",
		},
		{
			name:     "empty errors list falls through to error field",
			status:   400,
			body:     `{"errors":[],"error":"actual"}`,
			expected: "actual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			cl := newTestClient(t, srv.URL, "")
			_, err := cl.ListWorkouts(context.Background(), 1)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.expected, apiErr.Message)
		})
	}
}

func TestHTTPClient_TransportFallback(t *testing.T) {
	page := `{"items":[],"page":1,"pageSize":10,"total":0,"totalPages":1}`

	t.Run("dead primary retries once against fallback", func(t *testing.T) {
		hits := 0
		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(page))
		}))
		defer fallback.Close()

		// Nothing listens on the primary address.
		cl := newTestClient(t, "http://127.0.0.1:1", fallback.URL)

		p, err := cl.ListWorkouts(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 1, hits)
	})

	t.Run("HTTP error on primary never triggers fallback", func(t *testing.T) {
		primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
		}))
		defer primary.Close()

		fallbackHits := 0
		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fallbackHits++
			_, _ = w.Write([]byte(page))
		}))
		defer fallback.Close()

		cl := newTestClient(t, primary.URL, fallback.URL)

		_, err := cl.ListWorkouts(context.Background(), 1)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.Status)
		assert.Zero(t, fallbackHits)
	})

	t.Run("HTTP error on fallback is not retried further", func(t *testing.T) {
		fallbackHits := 0
		fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fallbackHits++
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"error":"still broken"}`))
		}))
		defer fallback.Close()

		cl := newTestClient(t, "http://127.0.0.1:1", fallback.URL)

		_, err := cl.ListWorkouts(context.Background(), 1)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 502, apiErr.Status)
		assert.Equal(t, 1, fallbackHits)
	})

	t.Run("both addresses dead", func(t *testing.T) {
		cl := newTestClient(t, "http://127.0.0.1:1", "http://127.0.0.1:1")

		_, err := cl.ListWorkouts(context.Background(), 1)
		require.Error(t, err)

		var apiErr *APIError
		assert.False(t, errors.As(err, &apiErr), "a transport failure must not look like an API error")
	})

	t.Run("no fallback configured", func(t *testing.T) {
		cl := newTestClient(t, "http://127.0.0.1:1", "")

		_, err := cl.ListWorkouts(context.Background(), 1)
		require.Error(t, err)
	})
}

func TestHTTPClient_CRUD(t *testing.T) {
	var (
		lastMethod string
		lastPath   string
		lastBody   []byte
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastMethod = r.Method
		lastPath = r.URL.RequestURI()
		lastBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodDelete:
			_, _ = w.Write([]byte(`{"ok":true}`))
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":"new-id","date":"2024-01-01","exercise":"Run","type":"Cardio","duration":30,"sets":0,"reps":0,"weight":0}`))
		default:
			_, _ = w.Write([]byte(`{"id":"abc","date":"2024-01-01","exercise":"Run","type":"Cardio","duration":30,"sets":0,"reps":0,"weight":0}`))
		}
	}))
	defer srv.Close()

	cl := newTestClient(t, srv.URL, "")
	ctx := context.Background()

	t.Run("list includes the page query", func(t *testing.T) {
		_, err := cl.ListWorkouts(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "GET", lastMethod)
		assert.Equal(t, "/api/workouts?page=3", lastPath)
	})

	t.Run("get escapes the id", func(t *testing.T) {
		_, err := cl.GetWorkout(ctx, "a/b c")
		require.NoError(t, err)
		assert.Equal(t, "/api/workouts/a%2Fb%20c", lastPath)
	})

	t.Run("create strips any client-side id", func(t *testing.T) {
		created, err := cl.CreateWorkout(ctx, workout.Workout{
			ID:       "stale",
			Date:     "2024-01-01",
			Exercise: "Run",
			Type:     workout.TypeCardio,
			Duration: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, "new-id", created.ID)
		assert.NotContains(t, string(lastBody), "stale")
	})

	t.Run("update", func(t *testing.T) {
		updated, err := cl.UpdateWorkout(ctx, "abc", workout.Workout{
			Date:     "2024-01-01",
			Exercise: "Run",
			Type:     workout.TypeCardio,
			Duration: 30,
		})
		require.NoError(t, err)
		assert.Equal(t, "PUT", lastMethod)
		assert.Equal(t, "/api/workouts/abc", lastPath)
		assert.Equal(t, "abc", updated.ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, cl.DeleteWorkout(ctx, "abc"))
		assert.Equal(t, "DELETE", lastMethod)
		assert.Equal(t, "/api/workouts/abc", lastPath)
	})
}
