// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

var (
	// ErrEntryNotFound indicates an update aimed at a journal id that does
	// not exist.
	ErrEntryNotFound = errors.New("journal entry not found")
)
