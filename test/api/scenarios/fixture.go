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

//go:generate go tool mockgen -source=fixture.go -destination=mock/users.go -package=mock

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package scenarios

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-logr/logr"

	. "github.com/onsi/gomega"

	"github.com/gorest-automation/users/pkg/openapi"
	"github.com/gorest-automation/users/test/api"
)

// UsersAPI is the part of the client the scenarios drive.
type UsersAPI interface {
	CreateUser(ctx context.Context, user openapi.UserWrite, options ...api.RequestOption) (*api.UserResponse, error)
	GetUser(ctx context.Context, userID int64, options ...api.RequestOption) (*api.UserResponse, error)
	UpdateUser(ctx context.Context, userID int64, update openapi.UserUpdate, options ...api.RequestOption) (*api.UserResponse, error)
	DeleteUser(ctx context.Context, userID int64, options ...api.RequestOption) (*api.Response, error)
}

// ContractValidator checks a response against the API description.
type ContractValidator interface {
	ValidateResponse(ctx context.Context, req *http.Request, path string, status int, header http.Header, body []byte) error
}

// Fixture is shared by all cases of a run.  Chained cases hand the user
// they work on to each other through it.
type Fixture struct {
	Client    UsersAPI
	Validator ContractValidator
	Logger    logr.Logger

	// User is set by the create case and consumed by the rest of the chain.
	User openapi.User

	lock      sync.Mutex
	cleanups  []func(ctx context.Context)
	teardowns []func(ctx context.Context)

	// userDeleted is set once the chain has removed User itself.
	userDeleted bool
}

type FixtureOption func(*Fixture)

// WithValidator enables contract validation of every response.
func WithValidator(validator ContractValidator) FixtureOption {
	return func(f *Fixture) {
		f.Validator = validator
	}
}

func WithLogger(logger logr.Logger) FixtureOption {
	return func(f *Fixture) {
		f.Logger = logger
	}
}

func NewFixture(client UsersAPI, options ...FixtureOption) *Fixture {
	f := &Fixture{
		Client: client,
		Logger: logr.Discard(),
	}

	for _, o := range options {
		o(f)
	}

	return f
}

// DeferCleanup registers work to undo side effects of the current case.
func (f *Fixture) DeferCleanup(cleanup func(ctx context.Context)) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.cleanups = append(f.cleanups, cleanup)
}

// RunCleanups runs registered cleanups in reverse order and forgets them.
func (f *Fixture) RunCleanups(ctx context.Context) {
	f.lock.Lock()
	cleanups := f.cleanups
	f.cleanups = nil
	f.lock.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i](ctx)
	}
}

// DeferTeardown registers work that must outlive the current case, for
// example the user shared by a chain of cases.
func (f *Fixture) DeferTeardown(teardown func(ctx context.Context)) {
	f.lock.Lock()
	defer f.lock.Unlock()

	f.teardowns = append(f.teardowns, teardown)
}

// RunTeardowns runs registered teardowns in reverse order and forgets them.
func (f *Fixture) RunTeardowns(ctx context.Context) {
	f.lock.Lock()
	teardowns := f.teardowns
	f.teardowns = nil
	f.lock.Unlock()

	for i := len(teardowns) - 1; i >= 0; i-- {
		teardowns[i](ctx)
	}
}

// DeleteUserLater registers removal of a user created by a case.  Failures
// are logged only, the user may already be gone.
func (f *Fixture) DeleteUserLater(userID int64) {
	f.DeferCleanup(func(ctx context.Context) {
		f.deleteUser(ctx, userID)
	})
}

func (f *Fixture) deleteUser(ctx context.Context, userID int64) {
	if _, err := f.Client.DeleteUser(ctx, userID); err != nil {
		f.Logger.Info("cleanup failed", "userID", userID, "error", err.Error())
		return
	}

	f.Logger.V(1).Info("cleaned up user", "userID", userID)
}

// ExpectContract validates the response against the API description when
// a validator is configured.
func (f *Fixture) ExpectContract(ctx context.Context, resp *api.Response) {
	if f.Validator == nil || resp == nil {
		return
	}

	err := f.Validator.ValidateResponse(ctx, resp.Request, resp.Route, resp.StatusCode, resp.Header, resp.Body)
	Expect(err).NotTo(HaveOccurred(), "%s %s (%d) violates the API contract", resp.Method, resp.Path, resp.StatusCode)
}
