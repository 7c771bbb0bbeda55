package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/personacli/internal/client/models"
	"github.com/dmitrijs2005/personacli/internal/logging"
)

// envelope is the uniform JSON wrapper the backend puts around every
// response: {success, message?, errors?, data?}.
type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  []models.FieldError `json:"errors"`
	Data    json.RawMessage     `json:"data"`
}

// HTTPClient is the concrete Client over net/http. One instance is shared
// by the whole process; it is safe for concurrent use.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	log     logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:3000/api"). Every request carries the timeout
// and a fresh X-Request-Id so calls can be correlated in both logs.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	reqID := uuid.NewString()
	req.Header.Set("X-Request-Id", reqID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Warn(ctx, "undecodable response", "method", method, "path", path, "request_id", reqID, "status", resp.StatusCode, "error", err)
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}

	if !env.Success {
		c.log.Info(ctx, "request rejected", "method", method, "path", path, "request_id", reqID, "status", resp.StatusCode, "message", env.Message)
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: env.Message, Fields: env.Errors}
	}
	return env.Data, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg RegisterRequest) (string, error) {
	// The confirmation text rides on the envelope itself, not on data.
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reg); err != nil {
		return "", fmt.Errorf("encoding register body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/register", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("POST /auth/register: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return "", fmt.Errorf("POST /auth/register: %w", ErrUnavailable)
	}
	if !env.Success {
		return "", &RequestError{StatusCode: resp.StatusCode, Message: env.Message, Fields: env.Errors}
	}
	return env.Message, nil
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.Identity, error) {
	data, err := c.do(ctx, http.MethodPost, "/personas/login", nil, creds)
	if err != nil {
		return models.Identity{}, err
	}
	var payload struct {
		User models.Identity `json:"user"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return models.Identity{}, fmt.Errorf("decoding login payload: %w", err)
	}
	return payload.User, nil
}

func (c *HTTPClient) Verify(ctx context.Context, creds models.Credentials) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/verify", nil, creds)
	return err
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.Identity, error) {
	data, err := c.do(ctx, http.MethodGet, "/auth/users", nil, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Users []models.Identity `json:"users"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decoding users payload: %w", err)
	}
	return payload.Users, nil
}

func (c *HTTPClient) ListPersonas(ctx context.Context, search string) ([]models.PersonRecord, error) {
	var q url.Values
	if search != "" {
		q = url.Values{"search": {search}}
	}
	data, err := c.do(ctx, http.MethodGet, "/personas", q, nil)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Personas []models.PersonRecord `json:"personas"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decoding personas payload: %w", err)
	}
	return payload.Personas, nil
}

func (c *HTTPClient) GetPersona(ctx context.Context, id int64) (models.PersonRecord, error) {
	data, err := c.do(ctx, http.MethodGet, "/personas/"+strconv.FormatInt(id, 10), nil, nil)
	if err != nil {
		return models.PersonRecord{}, err
	}
	var rec models.PersonRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.PersonRecord{}, fmt.Errorf("decoding persona payload: %w", err)
	}
	return rec, nil
}

func (c *HTTPClient) CreatePersona(ctx context.Context, p PersonaRequest) (models.PersonRecord, error) {
	data, err := c.do(ctx, http.MethodPost, "/personas", nil, p)
	if err != nil {
		return models.PersonRecord{}, err
	}
	var rec models.PersonRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.PersonRecord{}, fmt.Errorf("decoding persona payload: %w", err)
	}
	return rec, nil
}

func (c *HTTPClient) UpdatePersona(ctx context.Context, id int64, p PersonaRequest) (models.PersonRecord, error) {
	data, err := c.do(ctx, http.MethodPut, "/personas/"+strconv.FormatInt(id, 10), nil, p)
	if err != nil {
		return models.PersonRecord{}, err
	}
	var rec models.PersonRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return models.PersonRecord{}, fmt.Errorf("decoding persona payload: %w", err)
	}
	return rec, nil
}

func (c *HTTPClient) DeletePersona(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, "/personas/"+strconv.FormatInt(id, 10), nil, nil)
	return err
}

func (c *HTTPClient) Stats(ctx context.Context) (models.Stats, error) {
	data, err := c.do(ctx, http.MethodGet, "/personas/stats", nil, nil)
	if err != nil {
		return models.Stats{}, err
	}
	var s models.Stats
	if err := json.Unmarshal(data, &s); err != nil {
		return models.Stats{}, fmt.Errorf("decoding stats payload: %w", err)
	}
	return s, nil
}

// Health hits GET /health, which answers {status, timestamp} instead of the
// usual envelope.
func (c *HTTPClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("GET /health: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	var payload struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("GET /health: %w", ErrUnavailable)
	}
	if payload.Status != "OK" && payload.Status != "ok" {
		return fmt.Errorf("GET /health: status %q: %w", payload.Status, ErrUnavailable)
	}
	return nil
}

// Close exists to satisfy Client; net/http needs no explicit teardown.
func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}
