// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) (*revisionJournal, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	l := logger.Nop()
	j := newRevisionJournal(&DB{DB: db, logger: l}, l)
	return j, mock, db
}

func TestRecordOpened_Success(t *testing.T) {
	j, mock, db := newTestJournal(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO revision_journal").
		WithArgs("j88g-nmjt", int64(3), "replace", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := j.RecordOpened(context.Background(), models.JournalEntry{
		FourFour: "j88g-nmjt",
		Seq:      3,
		Action:   models.RevisionTypeReplace,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordOpened_ExecError(t *testing.T) {
	j, mock, db := newTestJournal(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO revision_journal").
		WillReturnError(errors.New("disk full"))

	_, err := j.RecordOpened(context.Background(), models.JournalEntry{FourFour: "j88g-nmjt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert journal entry")
}

func TestRecordApplied_Success(t *testing.T) {
	j, mock, db := newTestJournal(t)
	defer db.Close()

	appliedAt := time.Now().UTC()
	mock.ExpectExec("UPDATE revision_journal").
		WithArgs(appliedAt, "pending", sqlmock.AnyArg(), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := j.RecordApplied(context.Background(), 42, appliedAt, models.JobStatusPending)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordApplied_UnknownID(t *testing.T) {
	j, mock, db := newTestJournal(t)
	defer db.Close()

	mock.ExpectExec("UPDATE revision_journal").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := j.RecordApplied(context.Background(), 999, time.Now(), models.JobStatusPending)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestUpdateJobStatus_Success(t *testing.T) {
	j, mock, db := newTestJournal(t)
	defer db.Close()

	mock.ExpectExec("UPDATE revision_journal").
		WithArgs("successful", sqlmock.AnyArg(), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := j.UpdateJobStatus(context.Background(), 42, models.JobStatusSuccessful)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_ParsesRows(t *testing.T) {
	j, mock, db := newTestJournal(t)
	defer db.Close()

	opened := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	applied := opened.Add(time.Minute)

	rows := sqlmock.NewRows(journalColumns).
		AddRow(int64(2), "j88g-nmjt", int64(4), "replace", "", opened.Add(time.Hour), nil, opened.Add(time.Hour)).
		AddRow(int64(1), "j88g-nmjt", int64(3), "replace", "successful", opened, applied, applied)

	mock.ExpectQuery("SELECT (.+) FROM revision_journal").
		WillReturnRows(rows)

	entries, err := j.List(context.Background(), JournalFilter{FourFour: "j88g-nmjt"})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// entry 2 was never applied: still open, no job status
	assert.True(t, entries[0].Open())
	assert.Empty(t, entries[0].JobStatus)

	// entry 1 went through a full publish
	assert.False(t, entries[1].Open())
	assert.Equal(t, models.JobStatusSuccessful, entries[1].JobStatus)
	require.NotNil(t, entries[1].AppliedAt)
	assert.Equal(t, applied, entries[1].AppliedAt.UTC())
}

func TestList_QueryError(t *testing.T) {
	j, mock, db := newTestJournal(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM revision_journal").
		WillReturnError(errors.New("database locked"))

	_, err := j.List(context.Background(), JournalFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list journal entries")
}
