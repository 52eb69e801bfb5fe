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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/gorest-automation/users/pkg/openapi"

	"k8s.io/utils/ptr"
)

// DefaultEmailDomain is used when a builder is not told otherwise.
const DefaultEmailDomain = "example.com"

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// GenerateEmail returns an address in the domain that will not collide with
// earlier runs, the service keeps emails unique forever.
func GenerateEmail(domain string) string {
	local := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, gofakeit.FirstName())

	if local == "" {
		local = "user"
	}

	return fmt.Sprintf("%s@%s", generateRandomName(local), domain)
}

// UserPayloadBuilder builds user creation payloads for testing.
type UserPayloadBuilder struct {
	payload openapi.UserWrite
}

// NewUserPayload creates a builder populated with random but valid values.
func NewUserPayload() *UserPayloadBuilder {
	return &UserPayloadBuilder{
		payload: openapi.UserWrite{
			Name:   gofakeit.Name(),
			Email:  GenerateEmail(DefaultEmailDomain),
			Gender: openapi.Gender(gofakeit.RandomString([]string{string(openapi.GenderMale), string(openapi.GenderFemale)})),
			Status: openapi.Status(gofakeit.RandomString([]string{string(openapi.StatusActive), string(openapi.StatusInactive)})),
		},
	}
}

func (b *UserPayloadBuilder) WithName(name string) *UserPayloadBuilder {
	b.payload.Name = name
	return b
}

func (b *UserPayloadBuilder) WithEmail(email string) *UserPayloadBuilder {
	b.payload.Email = email
	return b
}

// WithEmailDomain regenerates the email in the given domain.
func (b *UserPayloadBuilder) WithEmailDomain(domain string) *UserPayloadBuilder {
	b.payload.Email = GenerateEmail(domain)
	return b
}

func (b *UserPayloadBuilder) WithGender(gender openapi.Gender) *UserPayloadBuilder {
	b.payload.Gender = gender
	return b
}

func (b *UserPayloadBuilder) WithStatus(status openapi.Status) *UserPayloadBuilder {
	b.payload.Status = status
	return b
}

// Build returns the completed user payload.
func (b *UserPayloadBuilder) Build() openapi.UserWrite {
	return b.payload
}

// UserUpdateBuilder builds partial update payloads, only fields that are
// explicitly set are sent.
type UserUpdateBuilder struct {
	update openapi.UserUpdate
}

func NewUserUpdate() *UserUpdateBuilder {
	return &UserUpdateBuilder{}
}

func (b *UserUpdateBuilder) WithName(name string) *UserUpdateBuilder {
	b.update.Name = ptr.To(name)
	return b
}

// WithRandomName sets a freshly generated name.
func (b *UserUpdateBuilder) WithRandomName() *UserUpdateBuilder {
	return b.WithName(gofakeit.Name())
}

func (b *UserUpdateBuilder) WithEmail(email string) *UserUpdateBuilder {
	b.update.Email = ptr.To(email)
	return b
}

// WithEmailDomain sets a freshly generated email in the given domain.
func (b *UserUpdateBuilder) WithEmailDomain(domain string) *UserUpdateBuilder {
	return b.WithEmail(GenerateEmail(domain))
}

func (b *UserUpdateBuilder) WithGender(gender openapi.Gender) *UserUpdateBuilder {
	b.update.Gender = ptr.To(gender)
	return b
}

func (b *UserUpdateBuilder) WithStatus(status openapi.Status) *UserUpdateBuilder {
	b.update.Status = ptr.To(status)
	return b
}

func (b *UserUpdateBuilder) Build() openapi.UserUpdate {
	return b.update
}

// Apply returns the user as it should look after the update.
func Apply(user openapi.User, update openapi.UserUpdate) openapi.User {
	user.Name = ptr.Deref(update.Name, user.Name)
	user.Email = ptr.Deref(update.Email, user.Email)
	user.Gender = ptr.Deref(update.Gender, user.Gender)
	user.Status = ptr.Deref(update.Status, user.Status)

	return user
}
