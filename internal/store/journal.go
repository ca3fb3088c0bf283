// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-data-keeper/internal/config"
	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/models"
)

const journalTable = "revision_journal"

var journalColumns = []string{
	"id", "fourfour", "revision_seq", "action",
	"job_status", "opened_at", "applied_at", "updated_at",
}

type revisionJournal struct {
	db     *DB
	sq     squirrel.StatementBuilderType
	logger *logger.Logger
}

// NewRevisionJournal opens the journal database and returns the journal
// repository over it.
func NewRevisionJournal(ctx context.Context, cfg config.Journal, log *logger.Logger) (RevisionJournal, error) {
	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return newRevisionJournal(db, log), nil
}

func newRevisionJournal(db *DB, log *logger.Logger) *revisionJournal {
	return &revisionJournal{
		db:     db,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		logger: log,
	}
}

// RecordOpened implements [RevisionJournal].
func (j *revisionJournal) RecordOpened(ctx context.Context, entry models.JournalEntry) (int64, error) {
	now := time.Now().UTC()
	if entry.OpenedAt.IsZero() {
		entry.OpenedAt = now
	}

	query, args, err := j.sq.
		Insert(journalTable).
		Columns("fourfour", "revision_seq", "action", "job_status", "opened_at", "updated_at").
		Values(entry.FourFour, entry.Seq, string(entry.Action), string(entry.JobStatus), entry.OpenedAt, now).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build journal insert: %w", err)
	}

	res, err := j.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert journal entry: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("journal entry id: %w", err)
	}
	return id, nil
}

// RecordApplied implements [RevisionJournal].
func (j *revisionJournal) RecordApplied(ctx context.Context, id int64, appliedAt time.Time, status models.JobStatus) error {
	query, args, err := j.sq.
		Update(journalTable).
		Set("applied_at", appliedAt).
		Set("job_status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build journal apply update: %w", err)
	}

	return j.exec(ctx, query, args, id)
}

// UpdateJobStatus implements [RevisionJournal].
func (j *revisionJournal) UpdateJobStatus(ctx context.Context, id int64, status models.JobStatus) error {
	query, args, err := j.sq.
		Update(journalTable).
		Set("job_status", string(status)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build journal status update: %w", err)
	}

	return j.exec(ctx, query, args, id)
}

func (j *revisionJournal) exec(ctx context.Context, query string, args []any, id int64) error {
	res, err := j.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update journal entry %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update journal entry %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("journal entry %d: %w", id, ErrEntryNotFound)
	}
	return nil
}

// List implements [RevisionJournal].
func (j *revisionJournal) List(ctx context.Context, filter JournalFilter) ([]models.JournalEntry, error) {
	builder := j.sq.
		Select(journalColumns...).
		From(journalTable).
		OrderBy("opened_at DESC", "id DESC")

	if filter.FourFour != "" {
		builder = builder.Where(squirrel.Eq{"fourfour": filter.FourFour})
	}
	if filter.OpenOnly {
		builder = builder.Where("applied_at IS NULL")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build journal select: %w", err)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		var (
			entry     models.JournalEntry
			action    string
			jobStatus string
			appliedAt sql.NullTime
		)
		if err = rows.Scan(&entry.ID, &entry.FourFour, &entry.Seq, &action, &jobStatus, &entry.OpenedAt, &appliedAt, &entry.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entry.Action = models.RevisionType(action)
		entry.JobStatus = models.JobStatus(jobStatus)
		if appliedAt.Valid {
			t := appliedAt.Time
			entry.AppliedAt = &t
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}

	return entries, nil
}

// Close implements [RevisionJournal].
func (j *revisionJournal) Close() error {
	return j.db.Close()
}
