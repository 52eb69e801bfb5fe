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

package scenarios

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/onsi/gomega"
	"github.com/spjmurray/go-util/pkg/set"
)

var (
	ErrUnknownCase      = errors.New("unknown case")
	ErrChainBroken      = errors.New("an earlier chained case failed")
	ErrScenarioPanicked = errors.New("case panicked")
	ErrCaseTimeout      = errors.New("case timed out")
)

type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

// Result is the outcome of one case.
type Result struct {
	Name     string
	Outcome  Outcome
	Err      error
	Duration time.Duration
}

// Report collects results in execution order.
type Report struct {
	Results  []Result
	Duration time.Duration
}

// Count returns how many cases ended with the given outcome.
func (r *Report) Count(outcome Outcome) int {
	var n int

	for i := range r.Results {
		if r.Results[i].Outcome == outcome {
			n++
		}
	}

	return n
}

// Failed reports whether any case failed.
func (r *Report) Failed() bool {
	return r.Count(OutcomeFailed) > 0
}

// Runner executes cases one after the other.
type Runner struct {
	cases          []Case
	caseTimeout    time.Duration
	cleanupTimeout time.Duration
	logger         logr.Logger
}

type RunnerOption func(*Runner)

func WithCaseTimeout(timeout time.Duration) RunnerOption {
	return func(r *Runner) {
		r.caseTimeout = timeout
	}
}

func WithRunnerLogger(logger logr.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

func NewRunner(cases []Case, options ...RunnerOption) *Runner {
	r := &Runner{
		cases:          cases,
		caseTimeout:    DefaultCaseTimeout,
		cleanupTimeout: DefaultCaseTimeout,
		logger:         logr.Discard(),
	}

	for _, o := range options {
		o(r)
	}

	return r
}

// Focus restricts the run to the named cases, keeping catalog order.
func (r *Runner) Focus(names ...string) error {
	if len(names) == 0 {
		return nil
	}

	known := make([]string, len(r.cases))

	for i := range r.cases {
		known[i] = r.cases[i].Name
	}

	requested := set.New[string](names...)

	var unknown []string

	for name := range requested.Difference(set.New[string](known...)).All() {
		unknown = append(unknown, name)
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)

		return fmt.Errorf("%w: %s", ErrUnknownCase, strings.Join(unknown, ", "))
	}

	r.cases = slices.DeleteFunc(slices.Clone(r.cases), func(c Case) bool {
		return !slices.Contains(names, c.Name)
	})

	return nil
}

// Run executes every case.  It never stops early, failures are recorded
// and the next case is started.  Gomega's default fail handler is replaced
// for the lifetime of the process, so Run must not be used inside Ginkgo.
func (r *Runner) Run(ctx context.Context, f *Fixture) *Report {
	gomega.RegisterFailHandler(failHandler)

	report := &Report{}

	start := time.Now()

	defer func() {
		report.Duration = time.Since(start)
	}()

	// Teardowns may be needed even when the run is cancelled.
	defer r.cleanup(ctx, f.RunTeardowns)

	chainBroken := false

	for _, c := range r.cases {
		if ctx.Err() != nil {
			report.Results = append(report.Results, Result{Name: c.Name, Outcome: OutcomeSkipped, Err: ctx.Err()})
			continue
		}

		if c.Chained && chainBroken {
			r.logger.Info("skipping case", "case", c.Name, "reason", ErrChainBroken.Error())

			report.Results = append(report.Results, Result{Name: c.Name, Outcome: OutcomeSkipped, Err: ErrChainBroken})

			continue
		}

		result := r.runCase(ctx, f, c)

		if result.Outcome == OutcomeFailed && c.Chained {
			chainBroken = true
		}

		report.Results = append(report.Results, result)
	}

	return report
}

func (r *Runner) runCase(ctx context.Context, f *Fixture, c Case) Result {
	log := r.logger.WithValues("case", c.Name)

	log.V(1).Info("running case")

	caseCtx, cancel := context.WithTimeout(ctx, r.caseTimeout)
	defer cancel()

	start := time.Now()

	err := runIntercepted(caseCtx, f, c.Run)

	duration := time.Since(start)

	if err != nil && errors.Is(caseCtx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%w after %v: %w", ErrCaseTimeout, r.caseTimeout, err)
	}

	r.cleanup(ctx, f.RunCleanups)

	if err != nil {
		log.Info("case failed", "duration", duration, "error", err.Error())

		return Result{Name: c.Name, Outcome: OutcomeFailed, Err: err, Duration: duration}
	}

	log.Info("case passed", "duration", duration)

	return Result{Name: c.Name, Outcome: OutcomePassed, Duration: duration}
}

// cleanup runs outside the case deadline, which may already have expired.
func (r *Runner) cleanup(ctx context.Context, run func(context.Context)) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.cleanupTimeout)
	defer cancel()

	if err := runIntercepted(ctx, nil, func(ctx context.Context, _ *Fixture) { run(ctx) }); err != nil {
		r.logger.Info("cleanup failed", "error", err.Error())
	}
}

// assertionFailure carries a Gomega failure out of a case.
type assertionFailure struct {
	message string
}

func failHandler(message string, _ ...int) {
	panic(assertionFailure{message: message})
}

// runIntercepted turns Gomega failures and panics into errors.
func runIntercepted(ctx context.Context, f *Fixture, run Func) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if failure, ok := p.(assertionFailure); ok {
				err = errors.New(failure.message)
				return
			}

			err = fmt.Errorf("%w: %v", ErrScenarioPanicked, p)
		}
	}()

	run(ctx, f)

	return nil
}
