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
package scenarios_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"

	. "github.com/onsi/gomega"

	"github.com/gorest-automation/users/pkg/openapi"
	"github.com/gorest-automation/users/test/api"
	"github.com/gorest-automation/users/test/api/scenarios"
)

// Runner takes over Gomega's global fail handler, none of these tests run
// in parallel.

const token = "test-token"

// newStandInFixture points a real client at the in-process stand-in with
// contract validation enabled.
func newStandInFixture(t *testing.T) *scenarios.Fixture {
	t.Helper()

	baseURL, stop := api.StartLocalServer(logr.Discard(), token)
	t.Cleanup(stop)

	client := api.NewAPIClient(&api.TestConfig{
		BaseURL:        baseURL,
		AuthToken:      token,
		RequestTimeout: 5 * time.Second,
		TestTimeout:    10 * time.Second,
	})

	validator, err := openapi.NewValidator()
	require.NoError(t, err)

	return scenarios.NewFixture(client, scenarios.WithValidator(validator))
}

func requireOutcomes(t *testing.T, report *scenarios.Report, expected ...scenarios.Outcome) {
	t.Helper()

	require.Len(t, report.Results, len(expected))

	for i, result := range report.Results {
		require.Equal(t, expected[i], result.Outcome, "case %q: %v", result.Name, result.Err)
	}
}

// TestCatalog runs every case against the stand-in.
func TestCatalog(t *testing.T) {
	f := newStandInFixture(t)

	report := scenarios.NewRunner(scenarios.Catalog()).Run(t.Context(), f)

	require.Len(t, report.Results, 8)

	for _, result := range report.Results {
		require.Equal(t, scenarios.OutcomePassed, result.Outcome, "case %q: %v", result.Name, result.Err)
	}

	require.False(t, report.Failed())
	require.Equal(t, 8, report.Count(scenarios.OutcomePassed))

	names := make([]string, len(report.Results))
	for i := range report.Results {
		names[i] = report.Results[i].Name
	}

	require.Equal(t, []string{
		scenarios.CaseCreateUser,
		scenarios.CaseGetUser,
		scenarios.CaseUpdateUser,
		scenarios.CaseDeleteUser,
		scenarios.CaseGetDeletedUser,
		scenarios.CaseDuplicateEmail,
		scenarios.CaseMissingUser,
		scenarios.CaseInvalidToken,
	}, names)
}

// TestCatalogTwice ensures runs do not collide on generated data.
func TestCatalogTwice(t *testing.T) {
	f := newStandInFixture(t)

	for range 2 {
		report := scenarios.NewRunner(scenarios.Catalog()).Run(t.Context(), f)
		require.False(t, report.Failed())
	}
}

// TestChainSkip ensures a failing chained case skips the rest of the chain
// but not independent cases.
func TestChainSkip(t *testing.T) {
	var ran []string

	record := func(name string) scenarios.Func {
		return func(context.Context, *scenarios.Fixture) {
			ran = append(ran, name)
		}
	}

	cases := []scenarios.Case{
		{Name: "one", Chained: true, Run: record("one")},
		{Name: "two", Chained: true, Run: func(context.Context, *scenarios.Fixture) {
			Expect(1).To(Equal(2))
		}},
		{Name: "three", Chained: true, Run: record("three")},
		{Name: "four", Run: record("four")},
	}

	report := scenarios.NewRunner(cases).Run(t.Context(), scenarios.NewFixture(nil))

	requireOutcomes(t, report, scenarios.OutcomePassed, scenarios.OutcomeFailed, scenarios.OutcomeSkipped, scenarios.OutcomePassed)
	require.ErrorContains(t, report.Results[1].Err, "to equal")
	require.ErrorIs(t, report.Results[2].Err, scenarios.ErrChainBroken)
	require.Equal(t, []string{"one", "four"}, ran)
	require.True(t, report.Failed())
}

// TestPanic ensures a panicking case is contained.
func TestPanic(t *testing.T) {
	cases := []scenarios.Case{
		{Name: "panics", Run: func(context.Context, *scenarios.Fixture) {
			panic("boom")
		}},
		{Name: "fine", Run: func(context.Context, *scenarios.Fixture) {}},
	}

	report := scenarios.NewRunner(cases).Run(t.Context(), scenarios.NewFixture(nil))

	requireOutcomes(t, report, scenarios.OutcomeFailed, scenarios.OutcomePassed)
	require.ErrorIs(t, report.Results[0].Err, scenarios.ErrScenarioPanicked)
	require.ErrorContains(t, report.Results[0].Err, "boom")
}

// TestTimeout ensures each case gets its own deadline.
func TestTimeout(t *testing.T) {
	cases := []scenarios.Case{
		{Name: "slow", Run: func(ctx context.Context, _ *scenarios.Fixture) {
			<-ctx.Done()
			Expect(ctx.Err()).NotTo(HaveOccurred())
		}},
		{Name: "fast", Run: func(ctx context.Context, _ *scenarios.Fixture) {
			Expect(ctx.Err()).NotTo(HaveOccurred())
		}},
	}

	report := scenarios.NewRunner(cases, scenarios.WithCaseTimeout(50*time.Millisecond)).Run(t.Context(), scenarios.NewFixture(nil))

	requireOutcomes(t, report, scenarios.OutcomeFailed, scenarios.OutcomePassed)
	require.ErrorIs(t, report.Results[0].Err, scenarios.ErrCaseTimeout)
}

// TestCleanupsRunOnFailure ensures cleanups run after each case, newest
// first, whatever the outcome, and teardowns run once at the end.
func TestCleanupsRunOnFailure(t *testing.T) {
	var order []string

	cases := []scenarios.Case{
		{Name: "fails", Run: func(_ context.Context, f *scenarios.Fixture) {
			f.DeferTeardown(func(context.Context) { order = append(order, "teardown") })
			f.DeferCleanup(func(context.Context) { order = append(order, "first") })
			f.DeferCleanup(func(context.Context) { order = append(order, "second") })

			Expect(true).To(BeFalse())
		}},
		{Name: "passes", Run: func(_ context.Context, f *scenarios.Fixture) {
			f.DeferCleanup(func(context.Context) { order = append(order, "third") })
		}},
	}

	report := scenarios.NewRunner(cases).Run(t.Context(), scenarios.NewFixture(nil))

	requireOutcomes(t, report, scenarios.OutcomeFailed, scenarios.OutcomePassed)
	require.Equal(t, []string{"second", "first", "third", "teardown"}, order)
}

// TestFocus ensures only named cases run and unknown names are rejected.
func TestFocus(t *testing.T) {
	runner := scenarios.NewRunner(scenarios.Catalog())

	err := runner.Focus(scenarios.CaseMissingUser, "no such case", "another")
	require.ErrorIs(t, err, scenarios.ErrUnknownCase)
	require.ErrorContains(t, err, "another, no such case")

	require.NoError(t, runner.Focus(scenarios.CaseInvalidToken, scenarios.CaseMissingUser))

	report := runner.Run(t.Context(), newStandInFixture(t))

	require.Len(t, report.Results, 2)
	require.Equal(t, scenarios.CaseMissingUser, report.Results[0].Name)
	require.Equal(t, scenarios.CaseInvalidToken, report.Results[1].Name)
	require.False(t, report.Failed())
}

// TestCancelled ensures nothing runs once the run context is done.
func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	called := false

	cases := []scenarios.Case{
		{Name: "never", Run: func(context.Context, *scenarios.Fixture) { called = true }},
	}

	report := scenarios.NewRunner(cases).Run(ctx, scenarios.NewFixture(nil))

	requireOutcomes(t, report, scenarios.OutcomeSkipped)
	require.ErrorIs(t, report.Results[0].Err, context.Canceled)
	require.False(t, called)
}
