// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/internal/store"
	"github.com/MKhiriev/go-data-keeper/models"
)

// journalRecorder writes revision lifecycle events to the local journal.
// All writes are best-effort: a journal failure is logged as a warning and
// never fails the publish flow it observes. journal may be nil, in which
// case every method is a no-op.
type journalRecorder struct {
	journal store.RevisionJournal
	logger  *logger.Logger
}

func newJournalRecorder(journal store.RevisionJournal, log *logger.Logger) *journalRecorder {
	return &journalRecorder{journal: journal, logger: log}
}

// opened records a freshly opened revision and returns the journal entry id,
// or 0 when journaling is disabled or failed.
func (r *journalRecorder) opened(ctx context.Context, rev models.Revision) int64 {
	if r.journal == nil {
		return 0
	}

	id, err := r.journal.RecordOpened(ctx, models.JournalEntry{
		FourFour: rev.FourFour,
		Seq:      rev.Seq,
		Action:   rev.Action.Type,
		OpenedAt: time.Now().UTC(),
	})
	if err != nil {
		r.logger.Warn().Err(err).Str("fourfour", rev.FourFour).Int64("revision_seq", rev.Seq).Msg("journal: record opened revision failed")
		return 0
	}
	return id
}

// applied records that apply was called on the journaled revision.
func (r *journalRecorder) applied(ctx context.Context, entryID int64, status models.JobStatus) {
	if r.journal == nil || entryID == 0 {
		return
	}

	if err := r.journal.RecordApplied(ctx, entryID, time.Now().UTC(), status); err != nil {
		r.logger.Warn().Err(err).Int64("journal_id", entryID).Msg("journal: record apply failed")
	}
}

// status records the latest observed publish job status.
func (r *journalRecorder) status(ctx context.Context, entryID int64, status models.JobStatus) {
	if r.journal == nil || entryID == 0 || status == "" {
		return
	}

	if err := r.journal.UpdateJobStatus(ctx, entryID, status); err != nil {
		r.logger.Warn().Err(err).Int64("journal_id", entryID).Msg("journal: update job status failed")
	}
}
