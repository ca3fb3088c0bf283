// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

// Sentinel errors mapped from platform responses. Wrapped with context by
// the methods that return them; match with [errors.Is].
var (
	// ErrUnauthorized indicates a bad credential pair (HTTP 401).
	ErrUnauthorized = errors.New("platform rejected credentials")
	// ErrForbidden indicates valid credentials without access to the
	// resource (HTTP 403).
	ErrForbidden = errors.New("access to resource forbidden")
	// ErrNotFound indicates an unknown or inaccessible dataset or revision
	// (HTTP 404).
	ErrNotFound = errors.New("resource not found")
	// ErrValidation indicates a payload the server refused, e.g. applying a
	// revision that has no source (HTTP 400/422).
	ErrValidation = errors.New("platform rejected payload")
	// ErrConflict indicates a revision state conflict (HTTP 409).
	ErrConflict = errors.New("revision state conflict")
	// ErrInternalServerError indicates a 5xx platform failure.
	ErrInternalServerError = errors.New("platform internal error")
	// ErrTransientNetwork marks connection-level failures that never reached
	// the platform. Only this class is safe to retry: a publish that was
	// received but not acknowledged must not be re-sent.
	ErrTransientNetwork = errors.New("transient network failure")
)
