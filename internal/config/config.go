// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-bug-triage service. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token parameters, version and
	// log level.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Classifier holds the severity classifier endpoint and its retry policy.
	Classifier Classifier `envPrefix:"CLASSIFIER_"`

	// Queue selects the audit queue backend.
	Queue Queue `envPrefix:"QUEUE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the read/write phases of a single inbound request.
	// It has to exceed the worst-case classification time.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins accepted by the CORS middleware.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: "postgres://..." or "postgresql://..." opens
	// pgx, "file:..." or a plain path opens sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// ConnectAttempts is how many times the startup ping is retried.
	// Env: STORAGE_DB_CONNECT_ATTEMPTS
	ConnectAttempts int `env:"CONNECT_ATTEMPTS"`

	// ConnectInterval is the pause between startup ping attempts.
	// Env: STORAGE_DB_CONNECT_INTERVAL
	ConnectInterval time.Duration `env:"CONNECT_INTERVAL"`
}

// Classifier configures the severity classifier client.
type Classifier struct {
	// Endpoint is the full URL of the classify operation.
	// Env: CLASSIFIER_URL
	Endpoint string `env:"URL"`

	// MaxAttempts bounds the number of classification attempts per bug.
	// Env: CLASSIFIER_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// PerAttemptTimeout bounds a single classification request.
	// Env: CLASSIFIER_ATTEMPT_TIMEOUT
	PerAttemptTimeout time.Duration `env:"ATTEMPT_TIMEOUT"`

	// RetryInterval is the wait after a retryable failure.
	// Env: CLASSIFIER_RETRY_INTERVAL
	RetryInterval time.Duration `env:"RETRY_INTERVAL"`

	// RateLimitRetryInterval is the wait after an HTTP 429 answer.
	// Env: CLASSIFIER_RATE_LIMIT_RETRY_INTERVAL
	RateLimitRetryInterval time.Duration `env:"RATE_LIMIT_RETRY_INTERVAL"`

	// DefaultSeverity is assigned whenever classification cannot produce
	// a usable label.
	// Env: CLASSIFIER_DEFAULT_SEVERITY
	DefaultSeverity string `env:"DEFAULT_SEVERITY"`
}

// Queue selects the backend of the audit queue. An empty RedisURL keeps the
// queue in process.
type Queue struct {
	// RedisURL is a redis:// URL. Env: QUEUE_REDIS_URL
	RedisURL string `env:"REDIS_URL"`

	// Key is the Redis list holding pending activities. Env: QUEUE_KEY
	Key string `env:"KEY"`

	// Size is the capacity of the in-process queue. Env: QUEUE_SIZE
	Size int `env:"SIZE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// AuditMaxDeliveries is how many times a failed activity append is
	// attempted before the entry is dropped.
	// Env: WORKERS_AUDIT_MAX_DELIVERIES
	AuditMaxDeliveries int `env:"AUDIT_MAX_DELIVERIES"`

	// AuditPollTimeout bounds a single blocking pop from the queue.
	// Env: WORKERS_AUDIT_POLL_TIMEOUT
	AuditPollTimeout time.Duration `env:"AUDIT_POLL_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
