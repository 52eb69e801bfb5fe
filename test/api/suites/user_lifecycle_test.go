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

var _ = Describe("User Lifecycle", Ordered, func() {
	var f *scenarios.Fixture

	BeforeAll(func() {
		f = newFixture()
	})

	AfterEach(func(ctx SpecContext) {
		f.RunCleanups(ctx)
	})

	AfterAll(func(ctx SpecContext) {
		f.RunTeardowns(ctx)
	})

	Context("When managing a single user end to end", func() {
		It("should create a user with the requested attributes", func(ctx SpecContext) {
			scenarios.CreateUser(ctx, f)
			GinkgoWriter.Printf("Created user %d (%s)\n", f.User.Id, f.User.Email)
		}, SpecTimeout(config.TestTimeout))

		It("should return the created user unchanged", func(ctx SpecContext) {
			scenarios.GetUser(ctx, f)
		}, SpecTimeout(config.TestTimeout))

		It("should update name and email and leave gender and status alone", func(ctx SpecContext) {
			scenarios.UpdateUser(ctx, f)
			GinkgoWriter.Printf("Updated user %d to %s\n", f.User.Id, f.User.Email)
		}, SpecTimeout(config.TestTimeout))

		It("should delete the user", func(ctx SpecContext) {
			scenarios.DeleteUser(ctx, f)
		}, SpecTimeout(config.TestTimeout))

		It("should no longer find the deleted user", func(ctx SpecContext) {
			scenarios.GetDeletedUser(ctx, f)
		}, SpecTimeout(config.TestTimeout))
	})
})
