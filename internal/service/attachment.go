// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-data-keeper/internal/adapter"
	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/internal/store"
	"github.com/MKhiriev/go-data-keeper/models"
)

type attachmentService struct {
	platform adapter.PlatformAdapter
	publish  PublishService
	recorder *journalRecorder

	logger *logger.Logger
}

func NewAttachmentService(platform adapter.PlatformAdapter, publish PublishService, journal store.RevisionJournal, log *logger.Logger) AttachmentService {
	return &attachmentService{
		platform: platform,
		publish:  publish,
		recorder: newJournalRecorder(journal, log),
		logger:   log,
	}
}

// AddAttachment implements [AttachmentService].
//
// The upload happens before any list mutation, so a failed POST leaves the
// revision's attachment list exactly as it was. On success the descriptor is
// appended to a copy of the current list and the complete list is resent:
// the platform replaces the attribute wholesale, so a partial list would
// silently drop published attachments.
func (s *attachmentService) AddAttachment(ctx context.Context, rev models.Revision, content AttachmentContent) (models.Revision, error) {
	name, body, err := content.open()
	if err != nil {
		return models.Revision{}, err
	}

	upload, err := s.platform.UploadAttachment(ctx, rev, name, body)
	if err != nil {
		return models.Revision{}, fmt.Errorf("upload attachment %q: %w", name, err)
	}

	attachments := append(slices.Clone(rev.Attachments), upload.Descriptor(name))
	updated, err := s.platform.UpdateRevision(ctx, rev, models.RevisionUpdate{Attachments: &attachments})
	if err != nil {
		return models.Revision{}, fmt.Errorf("update revision attachments: %w", err)
	}
	if len(updated.Attachments) == 0 {
		updated.Attachments = attachments
	}

	s.logger.Info().
		Str("fourfour", rev.FourFour).
		Int64("revision_seq", rev.Seq).
		Str("name", name).
		Str("asset_id", upload.FileID).
		Int("attachments", len(updated.Attachments)).
		Msg("attachment appended")

	return updated, nil
}

// AttachFiles implements [AttachmentService]. Attachments are added strictly
// in argument order; the platform stores them as an ordered list, so the
// call sequence is the final display order.
func (s *attachmentService) AttachFiles(ctx context.Context, fourfour string, visibility models.Visibility, contents ...AttachmentContent) (models.Job, error) {
	if len(contents) == 0 {
		return models.Job{}, ErrAttachmentContent
	}

	rev, err := s.platform.OpenRevision(ctx, fourfour, models.RevisionTypeReplace, visibility)
	if err != nil {
		return models.Job{}, fmt.Errorf("open replace revision: %w", err)
	}
	entryID := s.recorder.opened(ctx, rev)

	for _, content := range contents {
		rev, err = s.AddAttachment(ctx, rev, content)
		if err != nil {
			return models.Job{}, err
		}
	}

	job, err := s.platform.ApplyRevision(ctx, rev)
	if err != nil {
		return models.Job{}, fmt.Errorf("apply revision: %w", err)
	}
	s.recorder.applied(ctx, entryID, job.Status)

	job, err = s.publish.WaitForJob(ctx, rev, nil)
	s.recorder.status(ctx, entryID, job.Status)
	return job, err
}
