// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for datakeeper.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//
// All environment lookups additionally carry the global DATAKEEPER_ prefix.
type StructuredConfig struct {
	// Platform identifies the open-data platform instance and the default
	// dataset operated on.
	Platform Platform `envPrefix:"PLATFORM_"`

	// Auth holds the basic-auth credential pair. Environment only.
	Auth Auth `envPrefix:"AUTH_"`

	// Adapter holds outbound HTTP client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Publish holds polling settings for asynchronous publish jobs.
	Publish Publish `envPrefix:"PUBLISH_"`

	// Storage holds settings for the local revision journal.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from the environment.
	// Env: DATAKEEPER_CONFIG, or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Platform identifies the hosted open-data platform and the dataset the
// current run operates on.
type Platform struct {
	// Domain is the platform hostname, e.g. "data.example.gov".
	// Env: DATAKEEPER_PLATFORM_DOMAIN
	Domain string `env:"DOMAIN"`

	// FourFour is the default dataset identifier ("4x4") used when a command
	// does not override it with its --fourfour flag.
	// Env: DATAKEEPER_PLATFORM_FOURFOUR
	FourFour string `env:"FOURFOUR"`
}

// Auth holds the basic-auth credential pair for the platform API.
// Both values are read from the environment only; they are never accepted
// via flags or the JSON file.
type Auth struct {
	// KeyID is the credential identifier.
	// Env: DATAKEEPER_AUTH_KEY_ID
	KeyID string `env:"KEY_ID"`

	// KeySecret is the credential secret. Must be kept confidential.
	// Env: DATAKEEPER_AUTH_KEY_SECRET
	KeySecret string `env:"KEY_SECRET"`
}

// Adapter holds settings for the outbound HTTP client.
type Adapter struct {
	// RequestTimeout is the maximum duration of a single HTTP request
	// (e.g. "30s", "2m"). Blob uploads count against it too, so it should
	// accommodate the largest file routinely published.
	// Env: DATAKEEPER_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Publish holds polling settings for asynchronous publish jobs.
type Publish struct {
	// PollInterval is the delay between consecutive job status polls.
	// Env: DATAKEEPER_PUBLISH_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// PollTimeout bounds the total time spent waiting for a job to reach a
	// terminal status. When exceeded the wait aborts; the job keeps running
	// server-side.
	// Env: DATAKEEPER_PUBLISH_POLL_TIMEOUT
	PollTimeout time.Duration `env:"POLL_TIMEOUT"`
}

// Storage groups the configuration for local persistence.
type Storage struct {
	// Journal holds the revision journal database settings.
	Journal Journal `envPrefix:"JOURNAL_"`
}

// Journal holds connection settings for the local revision journal.
type Journal struct {
	// DSN is the SQLite file path (or ":memory:") backing the journal.
	// Env: DATAKEEPER_STORAGE_JOURNAL_DSN
	DSN string `env:"DSN"`
}

// Defaults applied after merging when the corresponding field is unset.
const (
	DefaultRequestTimeout = 2 * time.Minute
	DefaultPollInterval   = 5 * time.Second
	DefaultPollTimeout    = 10 * time.Minute
	DefaultJournalDSN     = "datakeeper.db"
)

// GetConfig loads, merges, and validates the datakeeper configuration.
// jsonFilePath, when non-empty, overrides the DATAKEEPER_CONFIG environment
// variable as the location of the JSON config file.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig(jsonFilePath string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSONPath(jsonFilePath).
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Publish.PollInterval <= 0 {
		cfg.Publish.PollInterval = DefaultPollInterval
	}
	if cfg.Publish.PollTimeout <= 0 {
		cfg.Publish.PollTimeout = DefaultPollTimeout
	}
	if cfg.Storage.Journal.DSN == "" {
		cfg.Storage.Journal.DSN = DefaultJournalDSN
	}
}
