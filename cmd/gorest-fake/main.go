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
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/gorest-automation/users/pkg/constants"
	"github.com/gorest-automation/users/pkg/options"
	"github.com/gorest-automation/users/pkg/server"
)

func main() {
	var (
		logging options.LoggingOptions
		listen  string
		tokens  []string
		firstID int64
	)

	logging.AddFlags(pflag.CommandLine)

	pflag.StringVar(&listen, "listen", ":8080", "Address to serve on.")
	pflag.StringSliceVar(&tokens, "token", nil, "Bearer token to accept, may be repeated.  Defaults to GOREST_API_TOKEN.")
	pflag.Int64Var(&firstID, "first-id", server.DefaultFirstID, "First user identifier handed out.")

	pflag.Parse()

	logger, err := logging.SetupLogging()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	logger.Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	if len(tokens) == 0 {
		if token := os.Getenv("GOREST_API_TOKEN"); token != "" {
			tokens = []string{token}
		}
	}

	if len(tokens) == 0 {
		fmt.Println("at least one --token or GOREST_API_TOKEN is required")
		os.Exit(1)
	}

	s := server.New(server.WithTokens(tokens...), server.WithStore(server.NewStore(firstID)), server.WithLogger(logger.WithName("server")))

	httpServer := &http.Server{
		Addr:              listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "server shutdown failed")
		}
	}()

	logger.Info("listening", "address", listen)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(err, "server failed")
		os.Exit(1)
	}
}
