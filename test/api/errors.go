/*
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

package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorest-automation/users/pkg/openapi"
)

// TransportError is returned when no response was received at all, for
// example a refused connection, a timeout or a cancelled context.
type TransportError struct {
	Method  string
	Path    string
	TraceID string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: http request failed (trace ID: %s): %v", e.Method, e.Path, e.TraceID, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError is returned for any non-2xx response.  The response itself is
// available unmodified.
type HTTPError struct {
	*Response
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code %d, body: %s (trace ID: %s)", e.Method, e.Path, e.StatusCode, string(e.Body), e.TraceID)
}

// Message decodes the error body used for authentication and lookup failures.
func (e *HTTPError) Message() (string, error) {
	var envelope openapi.MessageEnvelope

	if err := json.Unmarshal(e.Body, &envelope); err != nil {
		return "", fmt.Errorf("unmarshaling error message: %w", err)
	}

	return envelope.Data.Message, nil
}

// FieldErrors decodes the error body used for validation failures.
func (e *HTTPError) FieldErrors() (openapi.FieldErrorList, error) {
	var envelope openapi.FieldErrorEnvelope

	if err := json.Unmarshal(e.Body, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshaling field errors: %w", err)
	}

	return envelope.Data, nil
}

// AsHTTPError returns the HTTP error in the chain, if any.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError

	if !errors.As(err, &httpErr) {
		return nil, false
	}

	return httpErr, true
}

// AsTransportError returns the transport error in the chain, if any.
func AsTransportError(err error) (*TransportError, bool) {
	var transportErr *TransportError

	if !errors.As(err, &transportErr) {
		return nil, false
	}

	return transportErr, true
}
