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

package openapi

import (
	"errors"
	"regexp"
	"slices"
)

var (
	ErrInvalidGender = errors.New("invalid gender: must be one of male or female")
	ErrInvalidStatus = errors.New("invalid status: must be one of active or inactive")
)

// emailValidationRegex is deliberately loose, the service is the authority.
var emailValidationRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Genders lists every accepted gender.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// Statuses lists every accepted status.
func Statuses() []Status {
	return []Status{StatusActive, StatusInactive}
}

func (g Gender) Validate() error {
	if !slices.Contains(Genders(), g) {
		return ErrInvalidGender
	}

	return nil
}

func (s Status) Validate() error {
	if !slices.Contains(Statuses(), s) {
		return ErrInvalidStatus
	}

	return nil
}

// ValidEmail reports whether the address has a plausible shape.
func ValidEmail(email string) bool {
	return emailValidationRegex.MatchString(email)
}

// Contains reports whether the list has an error for the field with the
// given message.
func (l FieldErrorList) Contains(field, message string) bool {
	return slices.Contains(l, FieldError{Field: field, Message: message})
}
