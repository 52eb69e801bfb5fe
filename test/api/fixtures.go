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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"net/http/httptest"

	"github.com/go-logr/logr"

	. "github.com/onsi/gomega"

	"github.com/gorest-automation/users/pkg/openapi"
	"github.com/gorest-automation/users/pkg/server"
)

// VerifyUserMatches verifies that a returned user carries the written fields
// and a server assigned identifier.
func VerifyUserMatches(user openapi.User, expected openapi.UserWrite) {
	Expect(user.Id).To(BeNumerically(">", 0), "Expected a positive numeric user ID")
	Expect(user.Name).To(Equal(expected.Name))
	Expect(user.Email).To(Equal(expected.Email))
	Expect(user.Gender).To(Equal(expected.Gender))
	Expect(user.Status).To(Equal(expected.Status))
}

// VerifyHTTPError verifies that the error came from a response with the
// expected status code and returns it for further inspection.
func VerifyHTTPError(err error, expectedStatus int) *HTTPError {
	Expect(err).To(HaveOccurred(), "Expected the API to respond with status %d", expectedStatus)

	httpErr, ok := AsHTTPError(err)
	Expect(ok).To(BeTrue(), "Expected an HTTP error response, got: %v", err)
	Expect(httpErr.StatusCode).To(Equal(expectedStatus), "Unexpected status, body: %s (trace ID: %s)", string(httpErr.Body), httpErr.TraceID)

	return httpErr
}

// VerifyErrorMessage verifies the message envelope used for 401 and 404.
func VerifyErrorMessage(httpErr *HTTPError, expectedMessage string) {
	message, err := httpErr.Message()
	Expect(err).NotTo(HaveOccurred(), "Expected a message error body, got: %s", string(httpErr.Body))
	Expect(message).To(Equal(expectedMessage))
}

// VerifyFieldError verifies the field error list used for 422.
func VerifyFieldError(httpErr *HTTPError, field, message string) {
	errs, err := httpErr.FieldErrors()
	Expect(err).NotTo(HaveOccurred(), "Expected a field error list body, got: %s", string(httpErr.Body))
	Expect(errs).To(ContainElement(openapi.FieldError{Field: field, Message: message}))
}

// StartLocalServer runs the users API stand-in and returns its base URL and
// a function that stops it.
func StartLocalServer(logger logr.Logger, tokens ...string) (string, func()) {
	handler := server.New(server.WithTokens(tokens...), server.WithLogger(logger)).Handler()

	srv := httptest.NewServer(handler)

	return srv.URL, srv.Close
}
