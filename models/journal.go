// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// JournalEntry is the local record of one revision opened by this tool.
//
// The platform keeps partially-applied state (an open, unpublished revision)
// on the server when a run aborts mid-flow. The journal gives operators the
// list of revisions this client opened and how each one ended, so leftover
// drafts can be reconciled by hand.
type JournalEntry struct {
	// ID is the local auto-increment identifier.
	ID int64 `json:"id"`

	// FourFour is the dataset the revision belongs to.
	FourFour string `json:"fourfour"`

	// Seq is the revision sequence number on the platform.
	Seq int64 `json:"revision_seq"`

	// Action is the revision kind that was opened (replace, update).
	Action RevisionType `json:"action"`

	// JobStatus is the last observed publish job status, empty while the
	// revision has not been applied.
	JobStatus JobStatus `json:"job_status,omitempty"`

	// OpenedAt is when this client opened the revision.
	OpenedAt time.Time `json:"opened_at"`

	// AppliedAt is when apply was called, nil for revisions that were never
	// applied (the ones that need manual reconciliation).
	AppliedAt *time.Time `json:"applied_at,omitempty"`

	// UpdatedAt is the timestamp of the last journal write for this entry.
	UpdatedAt time.Time `json:"updated_at"`
}

// Open reports whether the revision was never applied and may still be
// pending on the server.
func (e JournalEntry) Open() bool {
	return e.AppliedAt == nil
}
