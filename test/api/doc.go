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

// Package api provides integration test utilities for the GoRest users API.
//
// # Client
//
// APIClient is a thin wrapper over net/http.  Every operation performs
// exactly one request against a fixed base URL with the headers
// Authorization, Content-Type and Accept set, plus W3C trace context so a
// failing request can be found in server logs.
//
// Successful responses are returned as received.  Failures are typed:
//   - *TransportError when no response arrived at all.
//   - *HTTPError for any non-2xx response, carrying the full Response.
//
// Nothing is retried or remapped, callers inspect the status and body.
//
// # Credentials
//
// The token is read once by LoadTestConfig and handed to the client at
// construction.  A different token for a single call is passed with
// WithToken, the client itself is never mutated.
package api
