package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"workoutlog/internal/app/client/config"
	"workoutlog/internal/domain/workout"
)

// APIError is a response the server did send: a non-2xx status with an
// optional JSON error body. Transport failures never produce an APIError.
type APIError struct {
	Status  int
	Message string
	Body    map[string]interface{}
}

func (e *APIError) Error() string {
	return e.Message
}

// API is the remote contract the session controller works against.
type API interface {
	ListWorkouts(ctx context.Context, page int) (*workout.Page, error)
	GetWorkout(ctx context.Context, id string) (*workout.Workout, error)
	CreateWorkout(ctx context.Context, w workout.Workout) (*workout.Workout, error)
	UpdateWorkout(ctx context.Context, id string, w workout.Workout) (*workout.Workout, error)
	DeleteWorkout(ctx context.Context, id string) error
}

type httpClient struct {
	client      *http.Client
	log         *slog.Logger
	baseURL     string
	fallbackURL string
	userAgent   string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	fallbackURL := ""
	if cfg.FallbackAddress != "" {
		fallbackURL = scheme + cfg.FallbackAddress
	}

	return &httpClient{
		client:      client,
		log:         log,
		baseURL:     scheme + cfg.ServerAddress,
		fallbackURL: fallbackURL,
		userAgent:   "WorkoutLog-Client/1.0",
	}
}

// ListWorkouts fetches one server-sorted page of records
func (h *httpClient) ListWorkouts(ctx context.Context, page int) (*workout.Page, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/workouts?page="+strconv.Itoa(page), nil)
	if err != nil {
		return nil, err
	}

	var p workout.Page
	if err := h.parseResponse(resp, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// GetWorkout fetches a single record by id
func (h *httpClient) GetWorkout(ctx context.Context, id string) (*workout.Workout, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/workouts/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var w workout.Workout
	if err := h.parseResponse(resp, &w); err != nil {
		return nil, err
	}

	return &w, nil
}

// CreateWorkout submits a new record and returns the server's copy
func (h *httpClient) CreateWorkout(ctx context.Context, w workout.Workout) (*workout.Workout, error) {
	w.ID = ""
	resp, err := h.doRequest(ctx, "POST", "/api/workouts", w)
	if err != nil {
		return nil, err
	}

	var created workout.Workout
	if err := h.parseResponse(resp, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateWorkout replaces the record with the given id
func (h *httpClient) UpdateWorkout(ctx context.Context, id string, w workout.Workout) (*workout.Workout, error) {
	resp, err := h.doRequest(ctx, "PUT", "/api/workouts/"+url.PathEscape(id), w)
	if err != nil {
		return nil, err
	}

	var updated workout.Workout
	if err := h.parseResponse(resp, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteWorkout removes the record with the given id
func (h *httpClient) DeleteWorkout(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, "DELETE", "/api/workouts/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// doRequest runs one request against the primary base address. When the
// transport fails before any response arrives (connection refused, DNS,
// reset) and a fallback address is configured, the identical request is
// retried there exactly once. HTTP error statuses never trigger the
// fallback, so a non-idempotent call is replayed only in the window where
// the primary could not be reached at all.
func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var jsonData []byte
	if body != nil {
		var err error
		jsonData, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
	}

	resp, err := h.send(ctx, method, h.baseURL+path, jsonData)
	if err == nil {
		return resp, nil
	}

	if h.fallbackURL == "" {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	h.log.Warn("primary address unreachable, retrying against fallback",
		"method", method,
		"path", path,
		"error", err,
	)

	resp, fbErr := h.send(ctx, method, h.fallbackURL+path, jsonData)
	if fbErr != nil {
		return nil, fmt.Errorf("request failed on both addresses: %w", fbErr)
	}

	return resp, nil
}

func (h *httpClient) send(ctx context.Context, method, rawURL string, jsonData []byte) (*http.Response, error) {
	var reqBody io.Reader
	if jsonData != nil {
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	return h.client.Do(req)
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	h.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return h.apiError(resp.StatusCode, body)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}

	return nil
}

// apiError extracts a human-readable message from an error body, preferring
// the joined `errors` list, then the single `error` field, then a generic
// status message.
func (h *httpClient) apiError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status:  status,
		Message: fmt.Sprintf("Request failed (%d)", status),
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return apiErr
	}
	apiErr.Body = parsed

	if raw, ok := parsed["errors"].([]interface{}); ok {
		var msgs []string
		for _, m := range raw {
			if s, ok := m.(string); ok {
				msgs = append(msgs, s)
			}
		}
		if len(msgs) > 0 {
			apiErr.Message = strings.Join(msgs, " ")
			return apiErr
		}
	}

	if msg, ok := parsed["error"].(string); ok && msg != "" {
		apiErr.Message = msg
	}

	return apiErr
}
