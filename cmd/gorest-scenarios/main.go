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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/gorest-automation/users/pkg/constants"
	"github.com/gorest-automation/users/pkg/openapi"
	"github.com/gorest-automation/users/pkg/options"
	"github.com/gorest-automation/users/test/api"
	"github.com/gorest-automation/users/test/api/scenarios"
)

type flags struct {
	logging      options.LoggingOptions
	baseURL      string
	caseTimeout  time.Duration
	local        bool
	skipContract bool
	focus        []string
	list         bool
}

func (f *flags) addFlags(set *pflag.FlagSet) {
	f.logging.AddFlags(set)

	set.StringVar(&f.baseURL, "base-url", "", "Override API_BASE_URL.")
	set.DurationVar(&f.caseTimeout, "case-timeout", 0, "Override TEST_TIMEOUT for each case.")
	set.BoolVar(&f.local, "local", false, "Run against an in-process stand-in of the API.")
	set.BoolVar(&f.skipContract, "skip-contract", false, "Do not validate responses against the OpenAPI document.")
	set.StringSliceVar(&f.focus, "focus", nil, "Only run the named cases.")
	set.BoolVar(&f.list, "list", false, "List cases and exit.")
}

func main() {
	var f flags

	f.addFlags(pflag.CommandLine)

	pflag.Parse()

	if f.list {
		for _, c := range scenarios.Catalog() {
			fmt.Println(c.Name)
		}

		return
	}

	os.Exit(run(&f))
}

func run(f *flags) int {
	config, err := api.LoadTestConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Flags take precedence over the environment.
	if f.baseURL != "" {
		config.BaseURL = f.baseURL
	}

	if f.caseTimeout > 0 {
		config.TestTimeout = f.caseTimeout
	}

	if f.skipContract {
		config.ValidateContract = false
	}

	if config.DebugLogging {
		f.logging.Debug = true
	}

	logger, err := f.logging.SetupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger.Info("scenarios starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	if f.local || config.LocalServer {
		baseURL, stop := api.StartLocalServer(logger.WithName("stand-in"), config.AuthToken)
		defer stop()

		config.BaseURL = baseURL
	}

	runner := scenarios.NewRunner(scenarios.Catalog(), scenarios.WithCaseTimeout(config.TestTimeout), scenarios.WithRunnerLogger(logger.WithName("runner")))

	if err := runner.Focus(f.focus...); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	client := api.NewAPIClient(config, api.WithLogger(logger.WithName("client")))

	fixtureOptions := []scenarios.FixtureOption{
		scenarios.WithLogger(logger.WithName("fixture")),
	}

	if config.ValidateContract {
		validator, err := openapi.NewValidator()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}

		fixtureOptions = append(fixtureOptions, scenarios.WithValidator(validator))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info("running scenarios", "baseURL", config.BaseURL, "caseTimeout", config.TestTimeout, "validateContract", config.ValidateContract)

	report := runner.Run(ctx, scenarios.NewFixture(client, fixtureOptions...))

	printReport(os.Stdout, report)

	if report.Failed() {
		return 1
	}

	return 0
}

func printReport(out io.Writer, report *scenarios.Report) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "CASE\tOUTCOME\tDURATION")

	for _, result := range report.Results {
		fmt.Fprintf(w, "%s\t%s\t%v\n", result.Name, strings.ToUpper(string(result.Outcome)), result.Duration.Round(time.Millisecond))
	}

	_ = w.Flush()

	for _, result := range report.Results {
		if result.Outcome != scenarios.OutcomeFailed {
			continue
		}

		fmt.Fprintf(out, "\n--- %s\n%v\n", result.Name, result.Err)
	}

	fmt.Fprintf(out, "\n%d passed, %d failed, %d skipped in %v\n",
		report.Count(scenarios.OutcomePassed), report.Count(scenarios.OutcomeFailed), report.Count(scenarios.OutcomeSkipped), report.Duration.Round(time.Millisecond))
}
