// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/embryotech/console/lib/schema"
)

// Error is a non-success HTTP response from the platform API. The
// server's message travels verbatim to the error presentation; the
// status code lets login-style contexts pick their own wording.
type Error struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Message is the "message" field of the error body, empty when
	// the body had none (callers fall back to a generic message).
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// ClientConfig configures a platform API client.
type ClientConfig struct {
	// Server is the API base URL, e.g. "http://172.16.1.22:5001".
	Server string

	// Token is the bearer credential attached to every request.
	// Empty for an unauthenticated client (only Login works then).
	Token string

	// Timeout bounds each request. Zero means 30 seconds.
	Timeout time.Duration

	// Logger receives debug records for each request. Nil discards.
	Logger *slog.Logger
}

// Client talks to the Embryotech platform API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Client for the given server.
func NewClient(configuration ClientConfig) (*Client, error) {
	if configuration.Server == "" {
		return nil, fmt.Errorf("server URL is required")
	}
	if _, err := url.Parse(configuration.Server); err != nil {
		return nil, fmt.Errorf("invalid server URL %q: %w", configuration.Server, err)
	}
	timeout := configuration.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	logger := configuration.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL:    strings.TrimRight(configuration.Server, "/"),
		token:      configuration.Token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Login authenticates with a username and password and returns the
// bearer token. The only unauthenticated call.
func (client *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var response struct {
		Token string `json:"token"`
	}
	if err := client.call(ctx, http.MethodPost, "/login", nil, body, &response); err != nil {
		return "", err
	}
	if response.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return response.Token, nil
}

// Companies returns the unfiltered set of company names.
func (client *Client) Companies(ctx context.Context) ([]string, error) {
	var companies []string
	if err := client.call(ctx, http.MethodGet, "/empresas", nil, nil, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// Batches returns the lote labels, optionally scoped to one company.
// An empty empresa requests the unfiltered set.
func (client *Client) Batches(ctx context.Context, empresa string) ([]string, error) {
	query := url.Values{}
	if empresa != "" {
		query.Set("empresa", empresa)
	}
	var batches []string
	if err := client.call(ctx, http.MethodGet, "/lotes", query, nil, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

// Readings returns the reading collection, optionally scoped to one
// lote. The result arrives in server order; callers establish the
// canonical ordering via lib/reading.
func (client *Client) Readings(ctx context.Context, lote string) ([]schema.Reading, error) {
	query := url.Values{}
	if lote != "" {
		query.Set("lote", lote)
	}
	var readings []schema.Reading
	if err := client.call(ctx, http.MethodGet, "/leituras", query, nil, &readings); err != nil {
		return nil, err
	}
	return readings, nil
}

// FindParameters looks up the parameter record for a (empresa, lote)
// pair. The server replies with a sequence; exactly the first match
// is used. A successful lookup with zero records returns (nil, nil) —
// absence is not an error.
func (client *Client) FindParameters(ctx context.Context, empresa, lote string) (*schema.Parameter, error) {
	query := url.Values{}
	query.Set("empresa", empresa)
	query.Set("lote", lote)
	var records []schema.Parameter
	if err := client.call(ctx, http.MethodGet, "/parametros", query, nil, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

// CreateParameter saves a new parameter record.
func (client *Client) CreateParameter(ctx context.Context, record schema.Parameter) error {
	return client.call(ctx, http.MethodPost, "/parametros", nil, record, nil)
}

// UpdateParameter resubmits an existing record, addressed by its
// identity.
func (client *Client) UpdateParameter(ctx context.Context, record schema.Parameter) error {
	if !record.Saved() {
		return fmt.Errorf("update requires a record identity")
	}
	path := fmt.Sprintf("/parametros/%d", record.ID)
	return client.call(ctx, http.MethodPut, path, nil, record, nil)
}

// call performs one request/response cycle. requestBody and result
// may be nil. Non-2xx responses decode the error body into *Error.
func (client *Client) call(ctx context.Context, method, path string, query url.Values, requestBody, result any) error {
	endpoint := client.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, path, err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if client.token != "" {
		request.Header.Set("Authorization", "Bearer "+client.token)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	client.logger.Debug("api call", "method", method, "path", path, "status", response.StatusCode)

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return decodeError(response)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeError extracts the server's message from a non-success
// response body. Bodies that are not JSON, or carry no message field,
// produce an Error with an empty Message.
func decodeError(response *http.Response) error {
	apiError := &Error{StatusCode: response.StatusCode}
	body, err := io.ReadAll(io.LimitReader(response.Body, 64*1024))
	if err != nil {
		return apiError
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiError.Message = payload.Message
	}
	return apiError
}
