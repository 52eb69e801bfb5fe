/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/gorest-automation/users/pkg/openapi"
)

// Response is a completed HTTP exchange, returned as received.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	// Method and Path identify the request, Route is the path template
	// used for contract validation.
	Method string
	Path   string
	Route  string

	Request *http.Request
	TraceID string
}

// UserResponse is a Response whose body carries a single user.
type UserResponse struct {
	*Response

	Data openapi.User
}

type APIClient struct {
	baseURL   string
	client    *http.Client
	authToken string
	config    *TestConfig
	endpoints *Endpoints
	logger    logr.Logger
}

// Option customizes a client at construction time.
type Option func(*APIClient)

// WithLogger sets where request diagnostics go, e.g. GinkgoLogr in suites.
func WithLogger(logger logr.Logger) Option {
	return func(c *APIClient) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *APIClient) {
		c.client = client
	}
}

// requestOptions are applied to a single call.
type requestOptions struct {
	token string
}

// RequestOption customizes a single call.
type RequestOption func(*requestOptions)

// WithToken overrides the configured bearer token for one call only.
func WithToken(token string) RequestOption {
	return func(o *requestOptions) {
		o.token = token
	}
}

func NewAPIClient(config *TestConfig, options ...Option) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		authToken: config.AuthToken,
		config:    config,
		endpoints: NewEndpoints(),
		logger:    logr.Discard(),
	}

	for _, o := range options {
		o(c)
	}

	return c
}

// logError logs a transport failure with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceID string, err error, context string) {
	c.logger.Error(err, context, "method", method, "path", path, "duration", duration, "traceID", traceID)
}

// logUnexpectedStatus logs a non-2xx response.
func (c *APIClient) logUnexpectedStatus(method, path string, status int, body, traceID string) {
	c.logger.Info("unexpected status", "method", method, "path", path, "status", status, "body", body, "traceID", traceID)
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	id := make([]byte, 16)
	_, _ = rand.Read(id)

	return hex.EncodeToString(id)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	id := make([]byte, 8)
	_, _ = rand.Read(id)

	return hex.EncodeToString(id)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	traceID := generateTraceID()
	spanID := generateSpanID()

	return fmt.Sprintf("00-%s-%s-01", traceID, spanID)
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest performs exactly one HTTP exchange.  Anything other than a 2xx
// response is returned as an *HTTPError, no response at all as a
// *TransportError.
func (c *APIClient) doRequest(ctx context.Context, method, route, path string, body any, options ...RequestOption) (*Response, error) {
	opts := requestOptions{
		token: c.authToken,
	}

	for _, o := range options {
		o(&opts)
	}

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	traceID := extractTraceID(traceParent)

	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=gorest")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if opts.token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceID, err, "http request failed")

		return nil, &TransportError{
			Method:  method,
			Path:    path,
			TraceID: traceID,
			Err:     err,
		}
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logError(method, path, duration, traceID, err, "reading response body")

		return nil, &TransportError{
			Method:  method,
			Path:    path,
			TraceID: traceID,
			Err:     fmt.Errorf("reading response body: %w", err),
		}
	}

	if c.config.LogRequests {
		c.logger.Info("request completed", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceID", traceID)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		c.logger.Info("response body", "method", method, "path", path, "body", string(respBody))
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		Method:     method,
		Path:       path,
		Route:      route,
		Request:    req,
		TraceID:    traceID,
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logUnexpectedStatus(method, path, resp.StatusCode, string(respBody), traceID)

		return nil, &HTTPError{
			Response: response,
		}
	}

	return response, nil
}

// userResponse decodes the data member of a successful user response.
func userResponse(resp *Response) (*UserResponse, error) {
	var envelope openapi.UserEnvelope

	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshaling user response: %w", err)
	}

	return &UserResponse{
		Response: resp,
		Data:     envelope.Data,
	}, nil
}

// CreateUser creates a new user.
func (c *APIClient) CreateUser(ctx context.Context, user openapi.UserWrite, options ...RequestOption) (*UserResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, RouteUsers, c.endpoints.CreateUser(), user, options...)
	if err != nil {
		return nil, err
	}

	return userResponse(resp)
}

// GetUser retrieves a specific user, there is no caching so every call
// goes to the service.
func (c *APIClient) GetUser(ctx context.Context, userID int64, options ...RequestOption) (*UserResponse, error) {
	path, err := c.endpoints.GetUser(userID)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodGet, RouteUser, path, nil, options...)
	if err != nil {
		return nil, err
	}

	return userResponse(resp)
}

// UpdateUser applies a partial update.
func (c *APIClient) UpdateUser(ctx context.Context, userID int64, update openapi.UserUpdate, options ...RequestOption) (*UserResponse, error) {
	path, err := c.endpoints.UpdateUser(userID)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPut, RouteUser, path, update, options...)
	if err != nil {
		return nil, err
	}

	return userResponse(resp)
}

func (c *APIClient) DeleteUser(ctx context.Context, userID int64, options ...RequestOption) (*Response, error) {
	path, err := c.endpoints.DeleteUser(userID)
	if err != nil {
		return nil, err
	}

	return c.doRequest(ctx, http.MethodDelete, RouteUser, path, nil, options...)
}
