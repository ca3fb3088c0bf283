// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-data-keeper/internal/adapter"
	"github.com/MKhiriev/go-data-keeper/internal/config"
	"github.com/MKhiriev/go-data-keeper/internal/logger"
	"github.com/MKhiriev/go-data-keeper/internal/store"
	"github.com/MKhiriev/go-data-keeper/models"
	"github.com/sethvargo/go-retry"
)

// errJobNotTerminal drives the poll loop; never returned to callers.
var errJobNotTerminal = errors.New("publish job not in terminal status")

type publishService struct {
	platform adapter.PlatformAdapter
	recorder *journalRecorder

	publishCfg config.Publish
	logger     *logger.Logger
}

func NewPublishService(platform adapter.PlatformAdapter, journal store.RevisionJournal, publishCfg config.Publish, log *logger.Logger) PublishService {
	return &publishService{
		platform:   platform,
		recorder:   newJournalRecorder(journal, log),
		publishCfg: publishCfg,
		logger:     log,
	}
}

// ReplaceBlob implements [PublishService]. The file is read fully into
// memory and released before any network call; no transformation is applied
// to its bytes. No local pre-validation happens either: if the server
// rejects any step (unknown dataset, revision without source), its error is
// propagated unchanged.
func (s *publishService) ReplaceBlob(ctx context.Context, fourfour, filePath string, visibility models.Visibility) (models.Job, error) {
	payload, err := os.ReadFile(filePath)
	if err != nil {
		return models.Job{}, fmt.Errorf("read blob file: %w", err)
	}

	dataset, err := s.platform.LookupDataset(ctx, fourfour)
	if err != nil {
		return models.Job{}, fmt.Errorf("lookup dataset %s: %w", fourfour, err)
	}
	if !dataset.IsBlob() {
		s.logger.Warn().Str("fourfour", dataset.FourFour).Str("display_type", dataset.DisplayType).Msg("dataset is not a blob dataset; replacing anyway")
	}

	rev, err := s.platform.OpenRevision(ctx, dataset.FourFour, models.RevisionTypeReplace, visibility)
	if err != nil {
		return models.Job{}, fmt.Errorf("open replace revision: %w", err)
	}
	entryID := s.recorder.opened(ctx, rev)

	if _, err = s.platform.UploadSource(ctx, rev, filepath.Base(filePath), bytes.NewReader(payload)); err != nil {
		return models.Job{}, fmt.Errorf("upload source: %w", err)
	}

	job, err := s.platform.ApplyRevision(ctx, rev)
	if err != nil {
		return models.Job{}, fmt.Errorf("apply revision: %w", err)
	}
	s.recorder.applied(ctx, entryID, job.Status)

	job, err = s.WaitForJob(ctx, rev, nil)
	s.recorder.status(ctx, entryID, job.Status)
	if err != nil {
		return job, err
	}

	s.logger.Info().Str("fourfour", rev.FourFour).Int64("revision_seq", rev.Seq).Str("file", filePath).Msg("blob replaced and published")
	return job, nil
}

// WaitForJob implements [PublishService]. Polling is bounded (constant
// interval with jitter, capped by the configured poll timeout) and
// cancellable through ctx. Connection-level poll failures are retried;
// anything the platform answered with is final.
func (s *publishService) WaitForJob(ctx context.Context, rev models.Revision, onPoll func(models.Job)) (models.Job, error) {
	var last models.Job
	seen := models.JobStatus("")

	backoff := retry.NewConstant(s.publishCfg.PollInterval)
	backoff = retry.WithJitter(s.publishCfg.PollInterval/10, backoff)
	backoff = retry.WithMaxDuration(s.publishCfg.PollTimeout, backoff)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		job, err := s.platform.GetJob(ctx, rev)
		if err != nil {
			if errors.Is(err, adapter.ErrTransientNetwork) {
				return retry.RetryableError(err)
			}
			return err
		}

		last = job
		if onPoll != nil {
			onPoll(job)
		}
		if job.Status != seen {
			seen = job.Status
			s.logger.Info().Str("fourfour", rev.FourFour).Int64("revision_seq", rev.Seq).Str("status", string(job.Status)).Msg("publish job status")
		}

		if !job.Status.Terminal() {
			return retry.RetryableError(errJobNotTerminal)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errJobNotTerminal) || errors.Is(err, context.DeadlineExceeded) {
			return last, fmt.Errorf("%w after %s (last status %q)", ErrPublishTimeout, s.publishCfg.PollTimeout, last.Status)
		}
		return last, fmt.Errorf("poll publish job: %w", err)
	}

	if !last.Status.Succeeded() {
		return last, fmt.Errorf("%w: status %q: %s", ErrPublishFailed, last.Status, last.Log)
	}

	return last, nil
}
