// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidPlatformConfigs indicates missing platform settings
	// (for example, an empty domain).
	ErrInvalidPlatformConfigs = errors.New("invalid platform configuration: domain is required")
	// ErrMissingCredentials indicates an incomplete basic-auth credential
	// pair (DATAKEEPER_AUTH_KEY_ID / DATAKEEPER_AUTH_KEY_SECRET).
	ErrMissingCredentials = errors.New("missing credentials: key id and key secret are required")
	// ErrInvalidTimeouts indicates non-positive or inconsistent timeout
	// settings (for example, a poll interval exceeding the poll timeout).
	ErrInvalidTimeouts = errors.New("invalid timeout configuration")
)
