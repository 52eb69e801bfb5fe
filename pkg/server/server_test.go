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

package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gorest-automation/users/pkg/openapi"
	"github.com/gorest-automation/users/pkg/server"
)

const token = "test-token"

func ada() openapi.UserWrite {
	return openapi.UserWrite{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Gender: openapi.GenderFemale,
		Status: openapi.StatusActive,
	}
}

func do(t *testing.T, h http.Handler, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer

	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func newHandler() http.Handler {
	return server.New(server.WithTokens(token)).Handler()
}

// TestCreateUser exercises the canonical create and read.
func TestCreateUser(t *testing.T) {
	t.Parallel()

	h := newHandler()

	w := do(t, h, http.MethodPost, "/users", token, ada())
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/json")

	created := decode[openapi.UserEnvelope](t, w).Data
	require.Positive(t, created.Id)
	require.Equal(t, "Ada Lovelace", created.Name)
	require.Equal(t, "ada@example.com", created.Email)
	require.Equal(t, openapi.GenderFemale, created.Gender)
	require.Equal(t, openapi.StatusActive, created.Status)

	w = do(t, h, http.MethodGet, "/users/"+itoa(created.Id), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, created, decode[openapi.UserEnvelope](t, w).Data)
}

// TestDuplicateEmail ensures the unique email index is enforced case insensitively.
func TestDuplicateEmail(t *testing.T) {
	t.Parallel()

	h := newHandler()

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/users", token, ada()).Code)

	duplicate := ada()
	duplicate.Email = "ADA@example.com"

	w := do(t, h, http.MethodPost, "/users", token, duplicate)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decode[openapi.FieldErrorEnvelope](t, w).Data
	require.True(t, errs.Contains("email", openapi.FieldMessageAlreadyTaken))
}

// TestValidation ensures every field is checked on create.
func TestValidation(t *testing.T) {
	t.Parallel()

	h := newHandler()

	w := do(t, h, http.MethodPost, "/users", token, openapi.UserWrite{Email: "not-an-email", Status: "unknown"})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	errs := decode[openapi.FieldErrorEnvelope](t, w).Data
	require.True(t, errs.Contains("name", openapi.FieldMessageBlank))
	require.True(t, errs.Contains("email", openapi.FieldMessageInvalid))
	require.True(t, errs.Contains("gender", openapi.FieldMessageGenderBlank))
	require.True(t, errs.Contains("status", openapi.FieldMessageInvalid))

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{"))
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// TestNotFound ensures unknown and malformed IDs yield the not found message.
func TestNotFound(t *testing.T) {
	t.Parallel()

	h := newHandler()

	for _, path := range []string{"/users/9999999999999", "/users/abc", "/users/0"} {
		w := do(t, h, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusNotFound, w.Code, path)
		require.Equal(t, openapi.MessageNotFound, decode[openapi.MessageEnvelope](t, w).Data.Message)
	}

	w := do(t, h, http.MethodPut, "/users/9999999999999", token, openapi.UserUpdate{})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodDelete, "/users/9999999999999", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// TestAuthentication covers invalid, malformed and absent credentials.
func TestAuthentication(t *testing.T) {
	t.Parallel()

	h := newHandler()

	w := do(t, h, http.MethodPost, "/users", "invalid_token_12345", ada())
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, openapi.MessageAuthenticationFailed, decode[openapi.MessageEnvelope](t, w).Data.Message)

	w = do(t, h, http.MethodPost, "/users", "", ada())
	require.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Reads may be anonymous.
	w = do(t, h, http.MethodGet, "/users/1", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

// TestUpdateAndDelete ensures partial updates leave other fields alone and
// deletion frees the email.
func TestUpdateAndDelete(t *testing.T) {
	t.Parallel()

	h := newHandler()

	created := decode[openapi.UserEnvelope](t, do(t, h, http.MethodPost, "/users", token, ada())).Data
	path := "/users/" + itoa(created.Id)

	name := "Augusta Ada King"
	email := "augusta@updated.com"

	w := do(t, h, http.MethodPut, path, token, openapi.UserUpdate{Name: &name, Email: &email})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decode[openapi.UserEnvelope](t, w).Data
	require.Equal(t, created.Id, updated.Id)
	require.Equal(t, name, updated.Name)
	require.Equal(t, email, updated.Email)
	require.Equal(t, created.Gender, updated.Gender)
	require.Equal(t, created.Status, updated.Status)

	w = do(t, h, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"data":null}`, w.Body.String())

	require.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, path, token, nil).Code)

	reuse := ada()
	reuse.Email = email
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/users", token, reuse).Code)
}

// TestUpdateEmailConflict ensures an update cannot steal another user's email.
func TestUpdateEmailConflict(t *testing.T) {
	t.Parallel()

	h := newHandler()

	first := decode[openapi.UserEnvelope](t, do(t, h, http.MethodPost, "/users", token, ada())).Data

	other := ada()
	other.Email = "other@example.com"
	second := decode[openapi.UserEnvelope](t, do(t, h, http.MethodPost, "/users", token, other)).Data

	w := do(t, h, http.MethodPut, "/users/"+itoa(second.Id), token, openapi.UserUpdate{Email: &first.Email})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Re-submitting your own address is fine.
	w = do(t, h, http.MethodPut, "/users/"+itoa(first.Id), token, openapi.UserUpdate{Email: &first.Email})
	require.Equal(t, http.StatusOK, w.Code)
}
