// SPDX-License-Identifier: Apache-2.0

package config

// validate checks structural invariants that hold for every command,
// including purely local ones. Platform and credential checks are deferred to
// [StructuredConfig.ValidatePlatform] because local commands (the export
// filter, journal listing) legitimately run without them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Publish.PollInterval <= 0 || cfg.Publish.PollTimeout <= 0 {
		return ErrInvalidTimeouts
	}
	if cfg.Publish.PollInterval >= cfg.Publish.PollTimeout {
		return ErrInvalidTimeouts
	}

	return nil
}

// ValidatePlatform checks the settings every network-facing command needs:
// a platform domain and a complete credential pair. Commands call it before
// constructing the adapter so misconfiguration fails fast with a clear error
// instead of an HTTP 401 mid-flow.
func (cfg *StructuredConfig) ValidatePlatform() error {
	if cfg.Platform.Domain == "" {
		return ErrInvalidPlatformConfigs
	}

	if cfg.Auth.KeyID == "" || cfg.Auth.KeySecret == "" {
		return ErrMissingCredentials
	}

	return nil
}
