/*
Copyright 2026 the PetFriends QA Authors.

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
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// Credentials of the stand-in service when no live service is configured.
	standInEmail    = "tester@petfriends.local"
	standInPassword = "secret"

	defaultInvalidEmail    = "allert@com"
	defaultInvalidPassword = "123"
)

// Credentials is an email and password pair.
type Credentials struct {
	Email    string
	Password string
}

type TestConfig struct {
	BaseURL            string
	ValidCredentials   Credentials
	InvalidCredentials Credentials
	ImagesDir          string
	RequestTimeout     time.Duration
	ValidateContract   bool
	LogRequests        bool
	LogResponses       bool
}

// UseStandIn is true when no live service is configured and the suites
// should run against the in process stand-in.
func (c *TestConfig) UseStandIn() bool {
	return c.BaseURL == ""
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL: os.Getenv("API_BASE_URL"),
		ValidCredentials: Credentials{
			Email:    os.Getenv("PETFRIENDS_EMAIL"),
			Password: os.Getenv("PETFRIENDS_PASSWORD"),
		},
		InvalidCredentials: Credentials{
			Email:    getStringWithDefault("INVALID_EMAIL", defaultInvalidEmail),
			Password: getStringWithDefault("INVALID_PASSWORD", defaultInvalidPassword),
		},
		ImagesDir:        getStringWithDefault("IMAGES_DIR", "images"),
		RequestTimeout:   getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		ValidateContract: getBoolWithDefault("VALIDATE_CONTRACT", true),
		LogRequests:      getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:     getBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.UseStandIn() {
		if config.ValidCredentials.Email == "" {
			config.ValidCredentials.Email = standInEmail
		}

		if config.ValidCredentials.Password == "" {
			config.ValidCredentials.Password = standInPassword
		}
	}

	// Validate required fields
	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
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
		os.Getenv("ENV_FILE"),
		"../../.env",    // From test/api/suites directory
		"../../../.env", // Repository root
	}

	var envPath string

	for _, path := range envPaths {
		if path == "" {
			continue
		}

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

	// Existing environment variables win over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"PETFRIENDS_EMAIL":    config.ValidCredentials.Email,
		"PETFRIENDS_PASSWORD": config.ValidCredentials.Password,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)

		return fmt.Errorf("missing required configuration: %s. Please set these environment variables or add them to a .env file", strings.Join(missing, ", "))
	}

	return nil
}
