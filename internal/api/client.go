package api

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
)

// Backend defines the operations the CarFinder REST API exposes. It is
// implemented by *Client and can be substituted in tests.
type Backend interface {
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	CreateVehicle(ctx context.Context, v Vehicle) (Vehicle, error)
	UpdateVehicle(ctx context.Context, id int64, v Vehicle) (Vehicle, error)
	DeleteVehicle(ctx context.Context, id int64) error
	GetIdentity(ctx context.Context) (Identity, error)
}

// Ensure Client implements Backend at compile time.
var _ Backend = (*Client)(nil)

// TokenSource supplies the opaque basic-auth token attached to every request.
type TokenSource interface {
	Token() string
}

// Client talks to the CarFinder HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	tokens    TokenSource
	userAgent string
}

const (
	defaultBaseURL   = "http://localhost:8080/api"
	defaultUserAgent = "carfind/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty baseURL falls
// back to the default local backend.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		tokens:    tokens,
		userAgent: defaultUserAgent,
	}, nil
}

// ListVehicles retrieves the full inventory in server order.
func (c *Client) ListVehicles(ctx context.Context) ([]Vehicle, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []wireVehicle
	if err := c.do(ctx, http.MethodGet, "/cars", nil, &payload); err != nil {
		return nil, err
	}
	vehicles := make([]Vehicle, len(payload))
	for i, w := range payload {
		vehicles[i] = fromWire(w)
	}
	return vehicles, nil
}

// CreateVehicle stores a new vehicle and returns the canonical record the
// backend created, including its assigned id.
func (c *Client) CreateVehicle(ctx context.Context, v Vehicle) (Vehicle, error) {
	if c == nil {
		return Vehicle{}, fmt.Errorf("client is nil")
	}
	var payload mutationResponse
	if err := c.do(ctx, http.MethodPost, "/cars", toWire(v), &payload); err != nil {
		return Vehicle{}, err
	}
	return fromWire(payload.Car), nil
}

// UpdateVehicle replaces the stored vehicle with the given id.
func (c *Client) UpdateVehicle(ctx context.Context, id int64, v Vehicle) (Vehicle, error) {
	if c == nil {
		return Vehicle{}, fmt.Errorf("client is nil")
	}
	var payload mutationResponse
	if err := c.do(ctx, http.MethodPut, "/cars/"+strconv.FormatInt(id, 10), toWire(v), &payload); err != nil {
		return Vehicle{}, err
	}
	return fromWire(payload.Car), nil
}

// DeleteVehicle removes the vehicle with the given id.
func (c *Client) DeleteVehicle(ctx context.Context, id int64) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodDelete, "/cars/"+strconv.FormatInt(id, 10), nil, nil)
}

// GetIdentity retrieves the authenticated user's name and roles.
func (c *Client) GetIdentity(ctx context.Context) (Identity, error) {
	if c == nil {
		return Identity{}, fmt.Errorf("client is nil")
	}
	var payload Identity
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &payload); err != nil {
		return Identity{}, err
	}
	return payload, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	reqURL := c.baseURL.JoinPath(strings.Split(strings.TrimPrefix(path, "/"), "/")...)

	var body io.Reader
	if in != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token := strings.TrimSpace(c.tokens.Token()); token != "" {
			req.Header.Set("Authorization", "Basic "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return decodeStatusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// wireError mirrors the backend's error envelope. Validation failures carry a
// per-field map keyed by wire field names.
type wireError struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func decodeStatusError(resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return se
	}
	var payload wireError
	if err := json.Unmarshal(raw, &payload); err != nil {
		return se
	}

	se.Message = strings.TrimSpace(payload.Message)
	if len(payload.Errors) > 0 {
		se.FieldErrors = make(map[string]string, len(payload.Errors))
		for field, msg := range payload.Errors {
			se.FieldErrors[uiFieldName(field)] = msg
		}
	}
	return se
}

// uiFieldName translates a wire field name to its UI spelling.
func uiFieldName(field string) string {
	if field == "subModel" {
		return "submodel"
	}
	return field
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", baseURL, err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
