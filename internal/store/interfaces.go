// SPDX-License-Identifier: Apache-2.0

// Package store implements the local revision journal.
//
// The journal is a small SQLite database recording every revision this tool
// opens on the platform and the last observed outcome of its publish job.
// The platform keeps abandoned drafts server-side indefinitely; the journal
// is the operator's record for finding and reconciling them.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-data-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/revision_journal_mock.go -package=mock

// JournalFilter narrows a journal listing.
type JournalFilter struct {
	// FourFour restricts entries to one dataset when non-empty.
	FourFour string

	// OpenOnly keeps only revisions that were never applied — the ones that
	// may still be pending on the server.
	OpenOnly bool
}

// RevisionJournal records revision lifecycle events locally. All methods are
// safe for sequential CLI use; the journal makes no concurrency guarantees
// beyond SQLite's own locking.
type RevisionJournal interface {
	// RecordOpened inserts a new entry for a freshly opened revision and
	// returns its local id.
	RecordOpened(ctx context.Context, entry models.JournalEntry) (int64, error)

	// RecordApplied marks the entry as applied at appliedAt with the job
	// status observed at apply time. Returns [ErrEntryNotFound] for an
	// unknown id.
	RecordApplied(ctx context.Context, id int64, appliedAt time.Time, status models.JobStatus) error

	// UpdateJobStatus records the latest observed publish job status.
	// Returns [ErrEntryNotFound] for an unknown id.
	UpdateJobStatus(ctx context.Context, id int64, status models.JobStatus) error

	// List returns journal entries matching filter, most recently opened
	// first.
	List(ctx context.Context, filter JournalFilter) ([]models.JournalEntry, error)

	// Close releases the underlying database handle.
	Close() error
}
