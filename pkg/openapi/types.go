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

// Package openapi holds the wire types of the GoRest users API and the
// OpenAPI document that describes them.
package openapi

// Gender defines model for gender.
type Gender string

// Defines values for Gender.
const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// Status defines model for status.
type Status string

// Defines values for Status.
const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Messages returned by the remote service in error envelopes.
const (
	MessageAuthenticationFailed = "Authentication failed"
	MessageNotFound             = "Resource not found"

	FieldMessageBlank        = "can't be blank"
	FieldMessageInvalid      = "is invalid"
	FieldMessageGenderBlank  = "can't be blank, can be male of female"
	FieldMessageAlreadyTaken = "has already been taken"
)

// User is a user record as returned by the service.
type User struct {
	// Id is assigned by the service and never changes.
	Id     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender Gender `json:"gender"`
	Status Status `json:"status"`
}

// UserWrite is the request body for user creation.
type UserWrite struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Gender Gender `json:"gender"`
	Status Status `json:"status"`
}

// UserUpdate is the request body for user updates, unset fields are left
// untouched by the service.
type UserUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Gender *Gender `json:"gender,omitempty"`
	Status *Status `json:"status,omitempty"`
}

// UserEnvelope wraps a single user.
type UserEnvelope struct {
	Data User `json:"data"`
}

// EmptyEnvelope is returned on successful deletion.
type EmptyEnvelope struct {
	Data map[string]any `json:"data"`
}

// ErrorMessage is the error payload for authentication and lookup failures.
type ErrorMessage struct {
	Message string `json:"message"`
}

// MessageEnvelope wraps an ErrorMessage.
type MessageEnvelope struct {
	Data ErrorMessage `json:"data"`
}

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrorList defines model for fieldErrorList.
type FieldErrorList []FieldError

// FieldErrorEnvelope wraps a FieldErrorList.
type FieldErrorEnvelope struct {
	Data FieldErrorList `json:"data"`
}
