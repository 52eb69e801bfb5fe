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

package api

import (
	"fmt"

	"github.com/oapi-codegen/runtime"
)

// Path templates as they appear in the OpenAPI document.
const (
	RouteUsers = "/users"
	RouteUser  = "/users/{id}"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// User collection endpoints.
func (e *Endpoints) CreateUser() string {
	return RouteUsers
}

// User member endpoints.
func (e *Endpoints) GetUser(userID int64) (string, error) {
	return e.user(userID)
}

func (e *Endpoints) UpdateUser(userID int64) (string, error) {
	return e.user(userID)
}

func (e *Endpoints) DeleteUser(userID int64) (string, error) {
	return e.user(userID)
}

func (e *Endpoints) user(userID int64) (string, error) {
	pathParam, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, userID)
	if err != nil {
		return "", fmt.Errorf("rendering user id: %w", err)
	}

	return fmt.Sprintf("/users/%s", pathParam), nil
}
