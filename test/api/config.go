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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the public GoRest API.
	DefaultBaseURL = "https://gorest.co.in/public-api"

	// TokenEnvVar holds the bearer token.
	TokenEnvVar = "GOREST_API_TOKEN"
)

var ErrMissingToken = errors.New(TokenEnvVar + " is not set")

type TestConfig struct {
	BaseURL          string
	AuthToken        string
	RequestTimeout   time.Duration
	TestTimeout      time.Duration
	SkipIntegration  bool
	LocalServer      bool
	ValidateContract bool
	DebugLogging     bool
	LogRequests      bool
	LogResponses     bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:          getStringWithDefault("API_BASE_URL", DefaultBaseURL),
		AuthToken:        os.Getenv(TokenEnvVar),
		RequestTimeout:   getDurationWithDefault("REQUEST_TIMEOUT", 10*time.Second),
		TestTimeout:      getDurationWithDefault("TEST_TIMEOUT", 10*time.Second),
		SkipIntegration:  getBoolWithDefault("SKIP_INTEGRATION", false),
		LocalServer:      getBoolWithDefault("GOREST_LOCAL", false),
		ValidateContract: getBoolWithDefault("VALIDATE_CONTRACT", true),
		DebugLogging:     getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:      getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:     getBoolWithDefault("LOG_RESPONSES", false),
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// SkipIntegration reports whether integration runs are disabled.  It is
// usable before LoadTestConfig, which fails without a token.
func SkipIntegration() bool {
	loadEnvFile()

	return getBoolWithDefault("SKIP_INTEGRATION", false)
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		".env",          // From the repository root
		"../../../.env", // From test/api/suites directory
	}

	var envPath string
	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing variables win over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	if config.AuthToken == "" {
		return fmt.Errorf("%w: please ensure your .env file exists and contains %s=\"YOUR_TOKEN_HERE\", or export it", ErrMissingToken, TokenEnvVar)
	}

	var invalid []string

	if !strings.HasPrefix(config.BaseURL, "http://") && !strings.HasPrefix(config.BaseURL, "https://") {
		invalid = append(invalid, "API_BASE_URL")
	}

	if config.RequestTimeout <= 0 {
		invalid = append(invalid, "REQUEST_TIMEOUT")
	}

	if config.TestTimeout <= 0 {
		invalid = append(invalid, "TEST_TIMEOUT")
	}

	if len(invalid) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(invalid, ", "))
	}

	return nil
}
