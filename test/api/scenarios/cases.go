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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package scenarios

import (
	"context"
	"fmt"
	"net/http"
	"time"

	. "github.com/onsi/gomega"

	"github.com/gorest-automation/users/pkg/openapi"
	"github.com/gorest-automation/users/test/api"
)

const (
	// InvalidAuthToken is never issued by the service.
	InvalidAuthToken = "invalid_token_12345"

	// MissingUserID is well beyond any identifier the service hands out.
	MissingUserID int64 = 9999999999999

	// DefaultCaseTimeout bounds a single case including its setup.
	DefaultCaseTimeout = 10 * time.Second

	UpdatedEmailDomain   = "updated.com"
	DuplicateEmailDomain = "duplicate.com"
)

// expectRejected fails the case when a request that should have been
// refused was accepted, reporting what the API answered instead.
func expectRejected(resp *api.Response, err error, expectedStatus int) *api.HTTPError {
	if err == nil {
		status := "no response"
		if resp != nil {
			status = fmt.Sprintf("status %d", resp.StatusCode)
		}

		Expect(err).To(HaveOccurred(), "expected the API to reject the request with status %d, got %s", expectedStatus, status)
	}

	return api.VerifyHTTPError(err, expectedStatus)
}

func responseOf(resp *api.UserResponse) *api.Response {
	if resp == nil {
		return nil
	}

	return resp.Response
}

func expectUserCreated(ctx context.Context, f *Fixture, payload openapi.UserWrite) openapi.User {
	resp, err := f.Client.CreateUser(ctx, payload)
	Expect(err).NotTo(HaveOccurred(), "creating user %s", payload.Email)
	Expect(resp.StatusCode).To(Equal(http.StatusOK))

	f.ExpectContract(ctx, resp.Response)
	api.VerifyUserMatches(resp.Data, payload)

	return resp.Data
}

func expectChainUser(f *Fixture) {
	Expect(f.User.Id).NotTo(BeZero(), "no user was created earlier in the chain")
}

// CreateUser creates a random user and hands it to the rest of the chain.
// Deletion is deferred until the end of the run in case the chain breaks.
func CreateUser(ctx context.Context, f *Fixture) {
	user := expectUserCreated(ctx, f, api.NewUserPayload().Build())

	f.User = user
	f.userDeleted = false

	f.DeferTeardown(func(ctx context.Context) {
		if f.userDeleted {
			return
		}

		f.deleteUser(ctx, user.Id)
	})

	f.Logger.Info("created user", "userID", user.Id, "email", user.Email)
}

// GetUser reads back the chain user and expects it verbatim.
func GetUser(ctx context.Context, f *Fixture) {
	expectChainUser(f)

	resp, err := f.Client.GetUser(ctx, f.User.Id)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK))

	f.ExpectContract(ctx, resp.Response)

	Expect(resp.Data).To(Equal(f.User))
}

// UpdateUser changes name and email, everything else must stay put.
func UpdateUser(ctx context.Context, f *Fixture) {
	expectChainUser(f)

	update := api.NewUserUpdate().WithRandomName().WithEmailDomain(UpdatedEmailDomain).Build()

	resp, err := f.Client.UpdateUser(ctx, f.User.Id, update)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK))

	f.ExpectContract(ctx, resp.Response)

	Expect(resp.Data.Id).To(Equal(f.User.Id))
	Expect(resp.Data.Name).To(Equal(*update.Name))
	Expect(resp.Data.Email).To(Equal(*update.Email))
	Expect(resp.Data.Gender).To(Equal(f.User.Gender), "gender changed without being asked to")
	Expect(resp.Data.Status).To(Equal(f.User.Status), "status changed without being asked to")

	f.User = resp.Data
}

func DeleteUser(ctx context.Context, f *Fixture) {
	expectChainUser(f)

	resp, err := f.Client.DeleteUser(ctx, f.User.Id)
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(http.StatusOK))

	f.userDeleted = true

	f.ExpectContract(ctx, resp)
}

// GetDeletedUser expects the chain user to be gone.
func GetDeletedUser(ctx context.Context, f *Fixture) {
	expectChainUser(f)

	resp, err := f.Client.GetUser(ctx, f.User.Id)

	httpErr := expectRejected(responseOf(resp), err, http.StatusNotFound)

	f.ExpectContract(ctx, httpErr.Response)
	api.VerifyErrorMessage(httpErr, openapi.MessageNotFound)
}

// DuplicateEmail expects a second user with an existing email to be refused.
func DuplicateEmail(ctx context.Context, f *Fixture) {
	payload := api.NewUserPayload().WithEmailDomain(DuplicateEmailDomain).Build()

	original := expectUserCreated(ctx, f, payload)
	f.DeleteUserLater(original.Id)

	duplicate := api.NewUserPayload().WithEmail(payload.Email).Build()

	resp, err := f.Client.CreateUser(ctx, duplicate)
	if err == nil && resp != nil {
		f.DeleteUserLater(resp.Data.Id)
	}

	httpErr := expectRejected(responseOf(resp), err, http.StatusUnprocessableEntity)

	f.ExpectContract(ctx, httpErr.Response)
	api.VerifyFieldError(httpErr, "email", openapi.FieldMessageAlreadyTaken)
}

func MissingUser(ctx context.Context, f *Fixture) {
	resp, err := f.Client.GetUser(ctx, MissingUserID)

	httpErr := expectRejected(responseOf(resp), err, http.StatusNotFound)

	f.ExpectContract(ctx, httpErr.Response)
	api.VerifyErrorMessage(httpErr, openapi.MessageNotFound)
}

// InvalidToken expects a create with a bogus credential to be refused.
// Only this call uses the bad token.
func InvalidToken(ctx context.Context, f *Fixture) {
	resp, err := f.Client.CreateUser(ctx, api.NewUserPayload().Build(), api.WithToken(InvalidAuthToken))
	if err == nil && resp != nil {
		f.DeleteUserLater(resp.Data.Id)
	}

	httpErr := expectRejected(responseOf(resp), err, http.StatusUnauthorized)

	f.ExpectContract(ctx, httpErr.Response)
	api.VerifyErrorMessage(httpErr, openapi.MessageAuthenticationFailed)
}
