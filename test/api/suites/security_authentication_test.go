/*
Copyright 2025 the Unikorn Authors.
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

//nolint:testpackage,revive // test package in suites is standard for these tests
package suites

import (
	. "github.com/onsi/ginkgo/v2"

	"github.com/gorest-automation/users/test/api/scenarios"
)

var _ = Describe("Security and Authentication", func() {
	var f *scenarios.Fixture

	BeforeEach(func() {
		f = newFixture()
	})

	AfterEach(func(ctx SpecContext) {
		f.RunCleanups(ctx)
	})

	Context("When authenticating API requests", func() {
		Describe("Given an invalid token", func() {
			It("should reject user creation with 401 Unauthorized", func(ctx SpecContext) {
				scenarios.InvalidToken(ctx, f)
			}, SpecTimeout(config.TestTimeout))
		})
	})
})
